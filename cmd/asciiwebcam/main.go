package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmittmann/tint"

	"github.com/The-Focus-AI/asciiwebcam/internal/camera"
	"github.com/The-Focus-AI/asciiwebcam/internal/cli"
	"github.com/The-Focus-AI/asciiwebcam/internal/config"
	"github.com/The-Focus-AI/asciiwebcam/internal/pipeline"
	"github.com/The-Focus-AI/asciiwebcam/internal/term"
	"github.com/The-Focus-AI/asciiwebcam/internal/ui"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

var CLI struct {
	Camera      string  `short:"d" help:"Video capture device" placeholder:"path"`
	Preset      string  `short:"p" help:"Starting character palette" placeholder:"name"`
	Scheme      string  `short:"c" help:"Starting color scheme" placeholder:"name"`
	CellAspect  float64 `help:"Terminal cell height/width ratio" placeholder:"ratio"`
	Config      string  `help:"Config file path" placeholder:"path" type:"path"`
	LogFile     string  `help:"Append diagnostics to a log file" placeholder:"path" type:"path"`
	HideStatus  bool    `help:"Start with the status bar hidden"`
	Demo        bool    `help:"Render a synthetic test pattern instead of the camera"`
	ListPresets bool    `help:"List palettes and color schemes, then exit"`
	Version     bool    `help:"Show version information"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("asciiwebcam"),
		kong.Description("Watch your webcam as live colored ASCII art, right in the terminal."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if CLI.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	if CLI.ListPresets {
		cli.PrintBanner()
		cli.PrintPresets()
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	log, logClose, err := newLogger(cfg.LogFile)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
	defer logClose()

	if err := run(cfg, log); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}

// loadConfig layers the built-in defaults, the optional YAML config file,
// and command-line flags, in that order.
func loadConfig() (config.Config, error) {
	path := CLI.Config
	if path == "" {
		path = config.DefaultPath()
	}

	fileCfg, err := config.LoadFile(path)
	if err != nil {
		return config.Config{}, err
	}

	flagCfg := config.Config{
		Device:     CLI.Camera,
		Preset:     CLI.Preset,
		Scheme:     CLI.Scheme,
		CellAspect: CLI.CellAspect,
		HideStatus: CLI.HideStatus,
		LogFile:    CLI.LogFile,
	}

	cfg := config.Merge(config.Merge(config.Default(), fileCfg), flagCfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds a tinted slog logger appending to the given file, or a
// discard logger when no log file is configured. Logging to the terminal
// itself would scribble over the video.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	log := slog.New(tint.NewHandler(f, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}))
	return log, func() { f.Close() }, nil
}

func run(cfg config.Config, log *slog.Logger) error {
	terminal := term.New(os.Stdout)
	if !terminal.IsTTY() {
		return fmt.Errorf("stdout is not a terminal")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		cam   camera.Source
		label string
	)
	if CLI.Demo {
		if CLI.Camera != "" {
			cli.PrintWarning(fmt.Sprintf("--demo ignores --camera %s", CLI.Camera))
		}
		cam = camera.NewPattern(cfg.CaptureWidth, cfg.CaptureHeight)
		label = "demo"
	} else {
		cam = camera.NewReconnecting(camera.FFmpegConfig{
			Device:      cfg.Device,
			InputFormat: cfg.InputFormat,
			Width:       cfg.CaptureWidth,
			Height:      cfg.CaptureHeight,
			FPS:         cfg.CaptureFPS,
		}, log)
		label = cfg.Device
	}
	if err := cam.Start(ctx); err != nil {
		return fmt.Errorf("starting camera: %w", err)
	}
	defer cam.Close()

	sched := pipeline.NewScheduler(cfg.FastInterval, cfg.SlowInterval)
	app, err := ui.NewApp(ui.Config{
		Camera:      cam,
		Terminal:    terminal,
		Scheduler:   sched,
		Palette:     cfg.Preset,
		Scheme:      cfg.Scheme,
		CellAspect:  cfg.CellAspect,
		HideStatus:  cfg.HideStatus,
		SourceLabel: label,
		Log:         log,
	})
	if err != nil {
		return err
	}

	if err := terminal.Enter(); err != nil {
		return fmt.Errorf("entering alternate screen: %w", err)
	}

	log.Info("starting live view",
		"source", label,
		"preset", cfg.Preset,
		"scheme", cfg.Scheme)

	// The model draws directly through the differential renderer, so
	// Bubbletea only supplies input, resize and lifecycle events.
	start := time.Now()
	prog := tea.NewProgram(app, tea.WithoutRenderer())
	_, runErr := prog.Run()
	terminal.Leave()
	if runErr != nil {
		return fmt.Errorf("running UI: %w", runErr)
	}

	cli.PrintSuccess(fmt.Sprintf("Session ended after %s", cli.FormatDuration(time.Since(start))))
	cli.PrintInfo("Rate", fmt.Sprintf("%.1f fps (%s)", sched.Rate(), sched.Mode()))
	cli.PrintInfo("Frame time", cli.FormatDuration(sched.LastDuration()))
	cli.PrintInfo("Skipped cycles", fmt.Sprintf("%d", sched.Skipped()))
	return nil
}
