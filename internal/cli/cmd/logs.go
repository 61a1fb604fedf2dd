package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/tessera/internal/bootstrap"
	"github.com/bnema/tessera/internal/cli/styles"
	"github.com/bnema/tessera/internal/logging"
)

var (
	logsFollow   bool
	logsLines    int
	logsList     bool
	logsClearAll bool
)

const (
	defaultLogsLines = 50
	followInterval   = 200 * time.Millisecond
)

var logsCmd = &cobra.Command{
	Use:   "logs [run]",
	Short: "View application logs",
	Long: `View tessera's log file.

Every run tags its lines with a run_id. With a run ID (or part of one) only
that run's lines are shown, searched across rotated files too.

Examples:
  tessera logs                # Last 50 lines
  tessera logs a7b3           # Lines of the run ending in 'a7b3'
  tessera logs -f             # Follow logs in real-time
  tessera logs -n 200         # Show last 200 lines
  tessera logs --list         # List log files`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogs,
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove rotated log files",
	Long:  `Remove rotated log files. With --all the current log file is emptied too.`,
	RunE:  runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	logsCmd.Flags().BoolVar(&logsList, "list", false, "list log files")
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "also empty the current log file")
}

// logFile is the current log or one of its rotated backups.
type logFile struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
	Current bool
}

func runLogs(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	logDir, err := bootstrap.LogDir(app.Config.Snapshot().Logging)
	if err != nil {
		return fmt.Errorf("resolve log directory: %w", err)
	}
	files, err := listLogFiles(logDir)
	if err != nil {
		return err
	}

	if logsList {
		renderLogFiles(out, files, app.Theme)
		return nil
	}
	if len(files) == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render("No logs found in "+logDir))
		return nil
	}

	run := ""
	if len(args) == 1 {
		run = strings.TrimSpace(args[0])
	}

	if logsFollow {
		return followLog(cmd.Context(), out, filepath.Join(logDir, bootstrap.LogFileName), run, app.Theme)
	}

	// Oldest first so lines come out in write order.
	paths := make([]string, 0, len(files))
	for i := len(files) - 1; i >= 0; i-- {
		if run == "" && !files[i].Current {
			continue
		}
		paths = append(paths, files[i].Path)
	}

	lines, err := tailLines(paths, run, logsLines)
	if err != nil {
		return err
	}
	if len(lines) == 0 && run != "" {
		return fmt.Errorf("no log lines for run '%s'", run)
	}
	for _, line := range lines {
		fmt.Fprintln(out, colorizeLogLine(line, app.Theme))
	}
	return nil
}

// listLogFiles returns the log files in logDir, newest first.
func listLogFiles(logDir string) ([]logFile, error) {
	entries, err := os.ReadDir(logDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	var files []logFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (name != bootstrap.LogFileName && !strings.HasPrefix(name, bootstrap.LogFileName+".")) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, logFile{
			Name:    name,
			Path:    filepath.Join(logDir, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Current: name == bootstrap.LogFileName,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Current != files[j].Current {
			return files[i].Current
		}
		// Backup suffixes are timestamps, so names sort by age.
		return files[i].Name > files[j].Name
	})
	return files, nil
}

func renderLogFiles(out io.Writer, files []logFile, theme *styles.Theme) {
	if len(files) == 0 {
		fmt.Fprintln(out, theme.Subtle.Render("No log files yet. Set logging.enable_file_log = true to create them."))
		return
	}
	fmt.Fprintln(out, theme.Title.Render("Log files (newest first):"))
	fmt.Fprintln(out)
	for _, f := range files {
		name := theme.Normal.Render(f.Name)
		if f.Current {
			name = theme.Highlight.Render(f.Name)
		}
		fmt.Fprintf(out, "  %s  %s  %s\n",
			name,
			theme.Subtle.Render(f.ModTime.Format("2006-01-02 15:04:05")),
			theme.Subtle.Render("("+formatSize(f.Size)+")"),
		)
	}
}

// tailLines returns the last n lines of paths read in order, keeping only
// lines of run when it is set.
func tailLines(paths []string, run string, n int) ([]string, error) {
	if n <= 0 {
		n = defaultLogsLines
	}
	var lines []string
	for _, path := range paths {
		if err := scanLines(path, func(line string) {
			if !matchesRun(line, run) {
				return
			}
			lines = append(lines, line)
			if len(lines) > n {
				lines = lines[1:]
			}
		}); err != nil {
			return nil, err
		}
	}
	return lines, nil
}

func scanLines(path string, fn func(string)) (retErr error) {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}
	return nil
}

// matchesRun reports whether line belongs to a run whose ID contains run.
func matchesRun(line, run string) bool {
	if run == "" {
		return true
	}
	id, ok := logging.RunIDFromLine(line)
	return ok && strings.Contains(strings.ToLower(id), strings.ToLower(run))
}

// followLog prints lines appended to path until ctx is done.
func followLog(ctx context.Context, out io.Writer, path, run string, theme *styles.Theme) error {
	if ctx == nil {
		ctx = context.Background()
	}
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	fmt.Fprintln(out, theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Fprintln(out)

	reader := bufio.NewReader(file)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		pending += chunk
		if errors.Is(err, io.EOF) {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(followInterval):
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("read log file: %w", err)
		}

		line := strings.TrimSuffix(pending, "\n")
		pending = ""
		if matchesRun(line, run) {
			fmt.Fprintln(out, colorizeLogLine(line, theme))
		}
	}
}

// logEntry is the subset of a JSON log line that gets displayed.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if strings.HasPrefix(line, "{") && json.Unmarshal([]byte(line), &entry) == nil {
		return formatJSONLogLine(entry, theme)
	}

	switch {
	case containsAny(line, " ERR ", " FTL "):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, " WRN "):
		return theme.WarningStyle.Render(line)
	case containsAny(line, " DBG ", " TRC "):
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
	case "error", "fatal", "panic":
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
		msg = theme.Subtle.Render("["+entry.Component+"]") + " " + msg
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), level, msg)
}

func containsAny(s string, substrs ...string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

func runLogsClear(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	theme := app.Theme

	logDir, err := bootstrap.LogDir(app.Config.Snapshot().Logging)
	if err != nil {
		return fmt.Errorf("resolve log directory: %w", err)
	}
	removed, err := clearLogs(logDir, logsClearAll)
	for _, name := range removed {
		fmt.Fprintf(out, "%s %s\n", theme.SuccessStyle.Render(styles.IconCheck), name)
	}
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		fmt.Fprintln(out, theme.Subtle.Render("No logs to clear"))
		return nil
	}
	fmt.Fprintf(out, "\n%s\n", theme.SuccessStyle.Render(fmt.Sprintf("Cleared %d file(s)", len(removed))))
	return nil
}

// clearLogs deletes rotated backups and, with all, truncates the current
// file, which a running instance may still hold open.
func clearLogs(logDir string, all bool) ([]string, error) {
	files, err := listLogFiles(logDir)
	if err != nil {
		return nil, err
	}

	var removed []string
	var errs []error
	for _, f := range files {
		switch {
		case !f.Current:
			err = os.Remove(f.Path)
		case all:
			err = os.Truncate(f.Path, 0)
		default:
			continue
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		removed = append(removed, f.Name)
	}
	return removed, errors.Join(errs...)
}
