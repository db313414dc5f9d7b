package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oakwood-commons/pagingmenu/internal/config"
	"github.com/oakwood-commons/pagingmenu/internal/limiter"
	"github.com/oakwood-commons/pagingmenu/pkg/logger"
	"github.com/oakwood-commons/pagingmenu/pkg/settings"
	"github.com/oakwood-commons/pagingmenu/pkg/tui"
)

var (
	sourceKind     string
	itemCount      int
	selectRef      string
	inputFile      string
	filterExpr     string
	headingLevel   int
	windowRadius   int
	configFile     string
	snapshotWidth  int
	snapshotHeight int
	renderSnapshot bool
	startKeys      []string
	debug          bool
	logFile        string
	noColor        bool
	limitRecords   int
	offsetRecords  int
	tailRecords    int
)

var (
	stdoutIsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

	rootCtx = context.Background()
	logSink io.Closer
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName,
	Short: "Page through items with a scrolling menu strip",
	Long: `pagingmenu shows one page per item under a horizontal menu strip.
Items come from an integer index, a calendar, the sections of a markdown
document or a JSON/YAML/TOML/NDJSON item file.`,
	Example: "\n  pagingmenu\n  pagingmenu --source calendar\n  pagingmenu --source markdown --file README.md --heading-level 3\n  pagingmenu --source file --file items.yaml --filter 'item.title.startsWith(\"A\")'\n  pagingmenu --count 20 --snapshot --press '<right><right>'\n",
	Args:  cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		run := settings.NewCliParams()
		run.NoColor = noColor
		run.LogFile = logFile
		run.Snapshot = renderSnapshot || !stdoutIsTerminal()
		if debug {
			run.MinLogLevel = -1
		}

		lgr, err := initLogger(run)
		if err != nil {
			return err
		}
		lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())
		rootCtx = settings.IntoContext(logger.WithLogger(cmd.Context(), lgr), run)
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		logger.Sync()
		if logSink != nil {
			_ = logSink.Close()
			logSink = nil
		}
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		lim := limiter.Config{Limit: limitRecords, Offset: offsetRecords, Tail: tailRecords}
		if err := lim.Validate(); err != nil {
			return fmt.Errorf("record limiting error: %w", err)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		lgr := logger.FromContext(rootCtx)
		provider, err := buildProvider(cfg, sourceRequest{
			File:   inputFile,
			Filter: filterExpr,
			Limit:  lim,
		})
		if err != nil {
			return err
		}
		lgr.V(1).Info("source ready", logger.SourceKey, cfg.Source.Kind, "kind", provider.Kind().String())

		tcfg := tui.Config{
			File:      &cfg,
			Provider:  provider,
			Select:    selectRef,
			Width:     snapshotWidth,
			Height:    snapshotHeight,
			NoColor:   noColor,
			StartKeys: startKeys,
			Logger:    *lgr,
		}

		run, _ := settings.FromContext(rootCtx)
		if run != nil && !run.Interactive() {
			out, err := tui.RenderSnapshot(tcfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}
		return tui.Run(rootCtx, tcfg)
	},
	SilenceUsage: true,
}

// initLogger points the global logger at the log file, or away from the
// terminal while the TUI owns it.
func initLogger(run *settings.Run) (*logr.Logger, error) {
	if run.LogFile != "" {
		f, err := logger.OpenFile(run.LogFile)
		if err != nil {
			return nil, err
		}
		logSink = f
		return logger.GetWithOutput(run.MinLogLevel, f), nil
	}
	if run.Interactive() {
		return logger.GetNoopLogger(), nil
	}
	return logger.Get(run.MinLogLevel), nil
}

// loadConfig reads the configuration file and lays the flags that were set
// on top of it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source.Kind = sourceKind
	}
	if flags.Changed("count") {
		cfg.Source.Count = itemCount
	}
	if flags.Changed("heading-level") {
		cfg.Source.HeadingLevel = headingLevel
	}
	if flags.Changed("radius") {
		cfg.Menu.WindowRadius = windowRadius
	}
	if noColor {
		cfg.UI.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func init() { //nolint:gochecknoinits
	rootCmd.Flags().StringVarP(&sourceKind, "source", "s", "index", "item source: index|calendar|markdown|file (default from config)")
	rootCmd.Flags().IntVarP(&itemCount, "count", "n", 0, "number of index items (0 = unbounded)")
	rootCmd.Flags().StringVar(&selectRef, "select", "", "item to show first: an id, a title, an index or a date")
	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "markdown document or item file for --source markdown|file")
	rootCmd.Flags().StringVar(&filterExpr, "filter", "", "CEL expression over item.id, item.order and item.title. Example: 'item.order % 2 == 0'")
	rootCmd.Flags().IntVar(&headingLevel, "heading-level", 2, "deepest heading that starts a markdown page (1-6)")
	rootCmd.Flags().IntVar(&windowRadius, "radius", 0, "items kept on each side of the selection (0 = fill the menu width)")
	rootCmd.Flags().IntVar(&limitRecords, "limit", 0, "keep only the first N items")
	rootCmd.Flags().IntVar(&offsetRecords, "offset", 0, "skip the first N items")
	rootCmd.Flags().IntVar(&tailRecords, "tail", 0, "keep only the last N items (mutually exclusive with --limit; ignores --offset)")
	rootCmd.Flags().BoolVar(&renderSnapshot, "snapshot", false, "render a single frame and exit; honors --width/--height")
	rootCmd.Flags().StringArrayVar(&startKeys, "press", nil, "simulate keys on startup. Use <Key> for special keys (e.g. <right>, <enter>, <esc>). Example: --press '<right>' --press '/gam' --press '<enter>'")
	rootCmd.Flags().IntVar(&snapshotWidth, "width", 0, "width in columns (default: terminal width)")
	rootCmd.Flags().IntVar(&snapshotHeight, "height", 0, "height in rows (default: terminal height)")

	rootCmd.PersistentFlags().StringVar(&configFile, "config-file", "", "path to a YAML or TOML config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append JSON log lines to this file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")

	rootCmd.AddCommand(versionCmd)
	configCmd.Flags().StringVarP(&configOutput, "output", "o", "yaml", "output format: yaml|toml")
	rootCmd.AddCommand(configCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
