package usecase_test

import (
	"testing"

	"github.com/bnema/fractui/internal/application/usecase"
	"github.com/bnema/fractui/internal/domain/entity"
	"github.com/bnema/fractui/internal/domain/fractal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDensity(t *testing.T) {
	tests := []struct {
		area  entity.Rect
		wantW int
		wantH int
	}{
		{entity.Rect{W: 40, H: 20}, 80, 80},
		{entity.Rect{W: 3, H: 2}, 10, 10},
		{entity.Rect{W: 0, H: 0}, 10, 10},
		{entity.Rect{W: 5, H: 1}, 10, 10},
		{entity.Rect{W: 6, H: 3}, 12, 12},
	}

	for _, tt := range tests {
		w, h := usecase.Density(tt.area)
		assert.Equal(t, tt.wantW, w, "%+v", tt.area)
		assert.Equal(t, tt.wantH, h, "%+v", tt.area)
	}
}

func defaultSampleInput(paletteSize, maxIter int) usecase.SampleInput {
	p := entity.NewPane(0, entity.DefaultPaneDefaults())
	p.MaxIterations = maxIter
	area := entity.Rect{W: 30, H: 12}
	return usecase.SampleInput{
		Bounds:      p.BoundsIn(area),
		Area:        area,
		PaletteSize: paletteSize,
		Params:      fractal.ParamsFor(p),
	}
}

func TestSampleFractalUseCase_BucketAssignment(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewSampleFractalUseCase(4)
	in := defaultSampleInput(8, 60)

	batches, err := uc.Sample(ctx, in)
	require.NoError(t, err)
	require.Len(t, batches, 8)

	total := 0
	for i, b := range batches {
		assert.Equal(t, i, b.PaletteIndex)
		for _, pt := range b.Points {
			k := in.Params.Escape(pt.X, pt.Y)
			require.Less(t, k, in.Params.MaxIterations, "interior point in bucket %d", i)
			require.Equal(t, i, k%8)
		}
		total += len(b.Points)
	}
	assert.Positive(t, total)

	w, h := usecase.Density(in.Area)
	assert.Less(t, total, w*h, "the default view contains interior points")
}

func TestSampleFractalUseCase_WorkerCountDoesNotChangeResult(t *testing.T) {
	ctx := testContext()
	in := defaultSampleInput(18, 80)

	single, err := usecase.NewSampleFractalUseCase(1).Sample(ctx, in)
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 7, 64, 1000} {
		many, err := usecase.NewSampleFractalUseCase(workers).Sample(ctx, in)
		require.NoError(t, err)
		require.Len(t, many, len(single))
		for i := range single {
			assert.ElementsMatch(t, single[i].Points, many[i].Points, "workers=%d bucket=%d", workers, i)
		}
	}
}

func TestSampleFractalUseCase_GridCoordinates(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewSampleFractalUseCase(2)
	// Far from the set, every sample escapes on the first step.
	in := usecase.SampleInput{
		Bounds:      entity.Bounds{Left: 10, Right: 20, Bottom: 10, Top: 20},
		Area:        entity.Rect{W: 1, H: 1},
		PaletteSize: 4,
		Params:      fractal.Params{Type: entity.FractalMandelbrot, MaxIterations: 5},
	}

	batches, err := uc.Sample(ctx, in)
	require.NoError(t, err)

	assert.Empty(t, batches[0].Points)
	require.Len(t, batches[1].Points, 100)
	assert.Empty(t, batches[2].Points)
	assert.Empty(t, batches[3].Points)
	assert.Contains(t, batches[1].Points, entity.Point{X: 10, Y: 10})
	assert.Contains(t, batches[1].Points, entity.Point{X: 19, Y: 19})
	assert.NotContains(t, batches[1].Points, entity.Point{X: 20, Y: 20})
}

func TestSampleFractalUseCase_AllInterior(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewSampleFractalUseCase(3)
	// A tiny window around the origin lies inside the main cardioid.
	in := usecase.SampleInput{
		Bounds:      entity.Bounds{Left: -0.01, Right: 0.01, Bottom: -0.01, Top: 0.01},
		Area:        entity.Rect{W: 4, H: 4},
		PaletteSize: 3,
		Params:      fractal.Params{Type: entity.FractalMandelbrot, MaxIterations: 50},
	}

	batches, err := uc.Sample(ctx, in)
	require.NoError(t, err)
	require.Len(t, batches, 3)
	for _, b := range batches {
		assert.Empty(t, b.Points)
	}
}

func TestSampleFractalUseCase_Validation(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewSampleFractalUseCase(2)

	_, err := uc.Sample(ctx, defaultSampleInput(0, 100))
	assert.Error(t, err)

	_, err = uc.Sample(ctx, defaultSampleInput(8, 0))
	assert.Error(t, err)
}

func TestSampleFractalUseCase_DefaultWorkers(t *testing.T) {
	uc := usecase.NewSampleFractalUseCase(0)
	assert.Positive(t, uc.Workers())

	uc.SetWorkers(5)
	assert.Equal(t, 5, uc.Workers())
}
