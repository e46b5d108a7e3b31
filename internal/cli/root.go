package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ccw-labs/skillhub/internal/branding"
	"github.com/ccw-labs/skillhub/internal/config"
	"github.com/ccw-labs/skillhub/internal/logger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Persistent flags.
var (
	rootDir   string
	verbose   bool
	logLevel  string
	logFormat string
	noColor   bool
)

// settings is resolved once per invocation by the root pre-run hook.
var settings *config.Settings

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` keeps a skill hub's registry and README in step with its skill units.

Each unit is a directory holding a SKILL.md whose frontmatter describes it.
The index command scans the units and writes the registry file; the readme
command renders the README from that registry.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootDir, "root", ".", "Skill hub root directory")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Show per-skill details (same as --log-level=debug)")
	pf.StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "", "Log format: text or json")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// setup loads the hub configuration and applies logging and color settings.
func setup(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}
	if cmd.Name() == "version" {
		return nil
	}

	if err := config.Load(rootDir); err != nil {
		return err
	}
	s, err := config.Current()
	if err != nil {
		return err
	}

	level := s.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if verbose {
		level = "debug"
	}
	if err := logger.SetLogLevel(level); err != nil {
		return err
	}
	format := s.LogFormat
	if logFormat != "" {
		format = logFormat
	}
	logger.SetLogFormat(format)

	settings = s
	logger.G(cmd.Context()).WithField("root", s.Root).Debug("Loaded settings")
	return nil
}

// displayPath shows p relative to the hub root when possible.
func displayPath(p string) string {
	if settings == nil {
		return p
	}
	rel, err := filepath.Rel(settings.Root, p)
	if err != nil {
		return p
	}
	return rel
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.ExecuteContext(logger.WithLogger(context.Background(), logger.L))
}

func commandHint(sub string) string {
	return fmt.Sprintf("`%s %s`", branding.CLIName(), sub)
}
