// Package genremix holds the gen-remix command surface.
package genremix

import (
	"fmt"
	"io"

	"github.com/arthur-debert/gen-remix/internal/version"
	"github.com/arthur-debert/gen-remix/pkg/clock"
	"github.com/arthur-debert/gen-remix/pkg/config"
	"github.com/arthur-debert/gen-remix/pkg/errors"
	"github.com/arthur-debert/gen-remix/pkg/filesystem"
	"github.com/arthur-debert/gen-remix/pkg/generate"
	"github.com/arthur-debert/gen-remix/pkg/logging"
	"github.com/arthur-debert/gen-remix/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Replaced in tests
var (
	newFileSystem = filesystem.NewOS
	newClock      = func() clock.Clock { return &clock.RealClock{} }
)

// rootOptions holds the root command's flag values
type rootOptions struct {
	verbosity   int
	configPath  string
	output      string
	packages    []string
	nodeModules string
	dryRun      bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "gen-remix [packages...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", config.DefaultPath, MsgFlagConfig)
	flags.StringVarP(&opts.output, "output", "o", "./app/remix.ts", MsgFlagOutput)
	flags.StringSliceVarP(&opts.packages, "packages", "p", nil, MsgFlagPackages)
	flags.StringVar(&opts.nodeModules, "node-modules", "node_modules", MsgFlagNodeModules)
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, MsgFlagDryRun)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func runGenerate(cmd *cobra.Command, opts *rootOptions, args []string) error {
	logger := logging.GetLogger("cmd")

	fsys := newFileSystem()
	cfg, err := config.Load(fsys, config.LoadOptions{
		Path:     opts.configPath,
		Packages: append(append([]string{}, opts.packages...), args...),
		Flags:    changedFlags(cmd, opts),
	})
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	if cfg.IsEmpty() {
		logger.Info().Str("config", opts.configPath).Msg("No configuration file and no packages")
		_, _ = fmt.Fprint(stdout, style.RenderMarkdown(stdout, MsgUsage))
		return nil
	}

	// Progress goes to stderr when stdout carries the generated module
	progressOut := stdout
	if opts.dryRun {
		progressOut = cmd.ErrOrStderr()
	}

	_, err = generate.Run(cfg, generate.Options{
		FS:       fsys,
		Clock:    newClock(),
		Progress: style.NewReporter(progressOut),
		DryRun:   opts.dryRun,
		Stdout:   stdout,
	})
	return err
}

// changedFlags returns the configuration keys of flags set on the command
// line. Defaults are left to the configuration layers.
func changedFlags(cmd *cobra.Command, opts *rootOptions) map[string]interface{} {
	flags := map[string]interface{}{}
	if cmd.Flags().Changed("output") {
		flags[config.KeyOutput] = opts.output
	}
	if cmd.Flags().Changed("node-modules") {
		flags[config.KeyNodeModules] = opts.nodeModules
	}
	return flags
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// PrintError writes err to w in the error style. Configuration errors are
// followed by the location they were found at, when known.
func PrintError(w io.Writer, err error) {
	styles := style.NewStyles(w)
	_, _ = fmt.Fprintln(w, styles.Error.Render(fmt.Sprintf(MsgErrorFormat, err)))

	if !errors.IsErrorCode(err, errors.ErrConfigParse) && !errors.IsErrorCode(err, errors.ErrConfigValid) {
		return
	}
	details := errors.GetErrorDetails(err)
	path, ok := details["path"].(string)
	if !ok {
		return
	}
	if line, ok := details["line"].(int); ok && line > 0 {
		path = fmt.Sprintf("%s:%d", path, line)
	}
	_, _ = fmt.Fprintf(w, MsgErrorLocation, styles.Path.Render(path))
}
