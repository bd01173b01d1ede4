package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/bnema/fractui/internal/cli/styles"
)

var (
	logsFollow   bool
	logsLines    int
	logsClearAll bool
)

const defaultLogsLines = 50

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View explorer logs",
	Long: `Show the end of the explorer log file.

The explorer owns the terminal while it runs, so it logs to a file instead
(see 'fractui config path'). Enable it with logging.enable_file_log.

Examples:
  fractui logs              # Last 50 lines
  fractui logs -n 200       # Last 200 lines
  fractui logs -f           # Follow new lines from another terminal`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove rotated log files",
	Long: `Remove the rotated backups of the log file (fractui.log.1, fractui.log.2, ...).
With --all the current log file is emptied too.`,
	Args: cobra.NoArgs,
	RunE: runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "also empty the current log file")
}

func runLogs(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if app.LogFile == "" {
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("File logging is disabled (logging.enable_file_log)"))
		return nil
	}

	out := cmd.OutOrStdout()
	lines, err := lastLines(app.LogFile, logsLines)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintln(out, colorizeLogLine(line, app.Theme))
	}

	if !logsFollow {
		return nil
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	fmt.Fprintln(out, app.Theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	return followLog(ctx, app.LogFile, out, app.Theme)
}

// lastLines returns up to n trailing lines of the file at path.
func lastLines(path string, n int) (lines []string, retErr error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if n > 0 && len(lines) > n {
			lines = lines[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	if n <= 0 {
		return nil, nil
	}
	return lines, nil
}

// followLog prints lines appended to path until ctx is done. A rotation
// (the file shrinking) restarts reading from the beginning.
func followLog(ctx context.Context, path string, out io.Writer, theme *styles.Theme) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory so rotations (rename + create) are seen.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch log dir: %w", err)
	}

	offset, err := fileSize(path)
	if err != nil {
		return err
	}
	pending := ""

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-watcher.Errors:
			return fmt.Errorf("watch log file: %w", err)
		case ev := <-watcher.Events:
			if filepath.Clean(ev.Name) != filepath.Clean(path) || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			size, err := fileSize(path)
			if err != nil {
				return err
			}
			if size < offset {
				offset, pending = 0, ""
			}
			chunk, err := readFrom(path, offset)
			if err != nil {
				return err
			}
			offset += int64(len(chunk))
			pending += chunk

			for {
				idx := strings.IndexByte(pending, '\n')
				if idx == -1 {
					break
				}
				fmt.Fprintln(out, colorizeLogLine(pending[:idx], theme))
				pending = pending[idx+1:]
			}
		}
	}
}

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("stat log file: %w", err)
	}
	return info.Size(), nil
}

func readFrom(path string, offset int64) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return "", fmt.Errorf("seek log file: %w", err)
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read log file: %w", err)
	}
	return string(data), nil
}

type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
	PaneID    *int   `json:"pane_id"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil && entry.Level != "" {
		return formatJSONLogLine(entry, theme)
	}

	// Console format: "15:04:05 INF message key=value"
	switch {
	case strings.Contains(line, " ERR ") || strings.Contains(line, " PNC "):
		return theme.ErrorStyle.Render(line)
	case strings.Contains(line, " WRN "):
		return theme.WarningStyle.Render(line)
	case strings.Contains(line, " DBG ") || strings.Contains(line, " TRC "):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var level string
	switch entry.Level {
	case "panic", "fatal", "error":
		level = theme.ErrorStyle.Render("ERR")
	case "warn":
		level = theme.WarningStyle.Render("WRN")
	case "info":
		level = theme.Highlight.Render("INF")
	case "debug":
		level = theme.Subtle.Render("DBG")
	case "trace":
		level = theme.Subtle.Render("TRC")
	default:
		level = entry.Level
	}

	msg := entry.Message
	if entry.Component != "" {
		msg = theme.Subtle.Render(entry.Component+":") + " " + msg
	}
	if entry.PaneID != nil {
		msg += theme.Subtle.Render(fmt.Sprintf(" pane=%d", *entry.PaneID))
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), level, msg)
}

// rotatedLogs returns the numbered backups of path, oldest last.
func rotatedLogs(path string) ([]string, error) {
	matches, err := filepath.Glob(path + ".*")
	if err != nil {
		return nil, fmt.Errorf("list rotated logs: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}

func runLogsClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if app.LogFile == "" {
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("File logging is disabled (logging.enable_file_log)"))
		return nil
	}

	out := cmd.OutOrStdout()
	removed, err := clearLogs(app.LogFile, logsClearAll)
	for _, name := range removed {
		fmt.Fprintf(out, "%s %s\n", app.Theme.SuccessStyle.Render("✓"), name)
	}
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render("No logs to clear"))
	}
	return nil
}

// clearLogs removes the rotated backups of path and, with all, empties
// path itself. It returns the base names of the files it touched.
func clearLogs(path string, all bool) ([]string, error) {
	backups, err := rotatedLogs(path)
	if err != nil {
		return nil, err
	}

	var touched []string
	for _, b := range backups {
		if err := os.Remove(b); err != nil {
			return touched, fmt.Errorf("remove %s: %w", filepath.Base(b), err)
		}
		touched = append(touched, filepath.Base(b))
	}

	if all {
		if err := os.Truncate(path, 0); err != nil && !errors.Is(err, os.ErrNotExist) {
			return touched, fmt.Errorf("truncate log file: %w", err)
		} else if err == nil {
			touched = append(touched, filepath.Base(path))
		}
	}
	return touched, nil
}
