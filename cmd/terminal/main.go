package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zappabad/tapetrader/internal/audit"
	"github.com/zappabad/tapetrader/internal/config"
	"github.com/zappabad/tapetrader/internal/series"
	"github.com/zappabad/tapetrader/internal/sim"
	"github.com/zappabad/tapetrader/tui"
)

func main() {
	// Optional .env for local overrides.
	_ = godotenv.Load()

	cfgPath := "config.yaml"
	if v := os.Getenv("TAPETRADER_CONFIG"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config validation: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns stdout, so diagnostics go to a file.
	logger, err := buildLogger(cfg.Logging.Path, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Price data is mandatory: any load failure aborts startup.
	assets := make([]*series.Asset, 0, len(cfg.Assets))
	for _, entry := range cfg.Assets {
		kind, err := series.ParseKind(entry.Kind)
		if err != nil {
			fatal(logger, fmt.Sprintf("bad asset kind for %s", entry.Symbol), err)
		}
		a, err := series.Load(entry.Symbol, kind, entry.Path)
		if err != nil {
			fatal(logger, fmt.Sprintf("load price series for %s", entry.Symbol), err)
		}
		logger.Info("loaded price series",
			zap.String("symbol", entry.Symbol),
			zap.Stringer("kind", kind),
			zap.Int("days", len(a.Days)),
		)
		assets = append(assets, a)
	}

	sink, err := buildAuditSink(cfg)
	if err != nil {
		fatal(logger, "init audit sink", err)
	}
	defer sink.Close()

	simCfg := sim.DefaultConfig()
	simCfg.StartBalance = cfg.Session.StartingBalance
	simCfg.StateFile = cfg.Session.StateFile

	session, err := sim.NewSession(assets, sink, logger, simCfg)
	if err != nil {
		fatal(logger, "init session", err)
	}
	if err := session.Restore(); err != nil {
		fatal(logger, "restore session state", err)
	}

	model := tui.NewModel(session, logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("tui exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error running tui: %v\n", err)
		os.Exit(1)
	}
}

// fatal reports a startup failure on stderr as well as the log file.
// The TUI hasn't taken over the terminal yet, so the echo is visible;
// without it a bad archive path would look like a silent exit.
func fatal(logger *zap.Logger, msg string, err error) {
	fmt.Fprintln(os.Stderr, fatalLine(msg, err))
	logger.Fatal(msg, zap.Error(err))
}

func fatalLine(msg string, err error) string {
	return fmt.Sprintf("%s: %v", msg, err)
}

func buildLogger(path, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	return zcfg.Build()
}

func buildAuditSink(cfg *config.Config) (audit.Sink, error) {
	sinks := make([]audit.Sink, 0, 2)

	if cfg.Audit.LogPath != "" {
		js, err := audit.NewJSONLSink(cfg.Audit.LogPath)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, js)
	}
	if cfg.Audit.SQLitePath != "" {
		ss, err := audit.NewSQLiteSink(cfg.Audit.SQLitePath)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, ss)
	}

	switch len(sinks) {
	case 0:
		return audit.NewNoopSink(), nil
	case 1:
		return sinks[0], nil
	default:
		return audit.NewMultiSink(sinks...), nil
	}
}
