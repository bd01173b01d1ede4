package usecase

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/fractui/internal/domain/entity"
	"github.com/bnema/fractui/internal/domain/fractal"
	"github.com/bnema/fractui/internal/logging"
)

// Minimum sample grid size along either axis.
const minDensity = 10

// Sub-cell resolution of the braille surface.
const (
	samplesPerCellX = 2
	samplesPerCellY = 4
)

// SampleFractalUseCase turns a math window into palette-indexed point batches.
type SampleFractalUseCase struct {
	workers int
}

// NewSampleFractalUseCase creates a sampler. workers <= 0 uses one worker per CPU.
func NewSampleFractalUseCase(workers int) *SampleFractalUseCase {
	uc := &SampleFractalUseCase{}
	uc.SetWorkers(workers)
	return uc
}

// SetWorkers changes the worker count. workers <= 0 uses one worker per CPU.
func (uc *SampleFractalUseCase) SetWorkers(workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	uc.workers = workers
}

// Workers returns the configured worker count.
func (uc *SampleFractalUseCase) Workers() int {
	return uc.workers
}

// Density returns the sample grid size for a cell rectangle.
func Density(area entity.Rect) (w, h int) {
	return max(area.W*samplesPerCellX, minDensity), max(area.H*samplesPerCellY, minDensity)
}

// SampleInput is an immutable snapshot of one pane's sampling job.
type SampleInput struct {
	Bounds      entity.Bounds
	Area        entity.Rect
	PaletteSize int
	Params      fractal.Params
}

// Sample evaluates the kernel over the density grid of in.Area. Columns are
// split across workers; each worker fills private buckets which are
// concatenated once all workers are done. The result has one batch per
// palette slot, in slot order, and never contains interior points.
func (uc *SampleFractalUseCase) Sample(ctx context.Context, in SampleInput) ([]entity.PointBatch, error) {
	if in.PaletteSize <= 0 {
		return nil, fmt.Errorf("palette size must be positive, got %d", in.PaletteSize)
	}
	if in.Params.MaxIterations < 1 {
		return nil, fmt.Errorf("iteration cap must be positive, got %d", in.Params.MaxIterations)
	}

	cols, rows := Density(in.Area)
	workers := min(uc.workers, cols)

	partial := make([][][]entity.Point, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w // per-iteration copy (go directive is below 1.22)
		start := w * cols / workers
		end := (w + 1) * cols / workers
		g.Go(func() error {
			partial[w] = sampleColumns(in, cols, rows, start, end)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	batches := make([]entity.PointBatch, in.PaletteSize)
	total := 0
	for i := range batches {
		batches[i].PaletteIndex = i
		n := 0
		for _, buckets := range partial {
			n += len(buckets[i])
		}
		if n == 0 {
			continue
		}
		points := make([]entity.Point, 0, n)
		for _, buckets := range partial {
			points = append(points, buckets[i]...)
		}
		batches[i].Points = points
		total += n
	}

	logging.FromContext(ctx).Debug().
		Int("grid_w", cols).
		Int("grid_h", rows).
		Int("workers", workers).
		Int("escaped", total).
		Msg("sampled fractal")

	return batches, nil
}

// sampleColumns evaluates grid columns [start, end) into fresh buckets.
func sampleColumns(in SampleInput, cols, rows, start, end int) [][]entity.Point {
	buckets := make([][]entity.Point, in.PaletteSize)
	width := in.Bounds.Width()
	height := in.Bounds.Height()
	maxIter := in.Params.MaxIterations

	for i := start; i < end; i++ {
		x := in.Bounds.Left + float64(i)/float64(cols)*width
		for j := 0; j < rows; j++ {
			y := in.Bounds.Bottom + float64(j)/float64(rows)*height
			k := fractal.Bucket(in.Params.Escape(x, y), maxIter, in.PaletteSize)
			if k < 0 {
				continue
			}
			buckets[k] = append(buckets[k], entity.Point{X: x, Y: y})
		}
	}
	return buckets
}
