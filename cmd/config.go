package cmd

import (
	"fmt"
	"runtime"
	rdebug "runtime/debug"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/oakwood-commons/pagingmenu/internal/config"
	"github.com/oakwood-commons/pagingmenu/pkg/settings"
)

var configOutput string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print pagingmenu version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), cliVersionString())
		return nil
	},
}

// configCmd prints the defaults merged with --config-file.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show merged configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if noColor {
			cfg.UI.NoColor = true
		}
		out, err := renderConfig(cfg, configOutput)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func renderConfig(cfg config.Config, format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "yaml", "yml":
		data, err := config.Marshal(cfg)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return "", fmt.Errorf("encode config: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("invalid --output %q (expected yaml or toml)", format)
	}
}

func cliVersionString() string {
	v := settings.VersionInformation
	goVersion := runtime.Version()
	if info, ok := rdebug.ReadBuildInfo(); ok && info.GoVersion != "" {
		goVersion = info.GoVersion
	}
	return fmt.Sprintf("%s %s (commit %s, built %s, %s)",
		settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime, goVersion)
}
