package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"ifacegen/internal"
	"ifacegen/internal/app"
	"ifacegen/internal/config"
	"ifacegen/internal/logging"
	"ifacegen/internal/resource"
)

type options struct {
	configPath string
	input      string
	template   string
	output     string
	marker     string
	messages   string
	strict     bool
	verbose    bool
}

// NewRootCmd builds the command tree working on given filesystem.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "ifacegen",
		Short: "Generate ScintillaImpl forwarding methods from Scintilla.iface",
		Long: `Generate C++ forwarding methods from a Scintilla interface description.

Every fun, get and set declaration before the Deprecated category becomes one
method calling Call, CallString or CallPointer with its Message identifier.
The sorted methods replace the marker in the template.

Examples:
  ifacegen                                   # Paths from ifacegen.toml or the defaults
  ifacegen --input https://example.org/Scintilla.iface
  ifacegen --messages scintilla/messages.go  # Also write Go message constants
  ifacegen check                             # Fail if ScintillaImpl.hpp is stale`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			generator, err := opts.newApp(cmd, fs)
			if err != nil {
				return err
			}

			if _, err := generator.Generate(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Done!")
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (default: ifacegen.toml when present)")
	flags.StringVarP(&opts.input, "input", "i", "", "Interface description path or URL")
	flags.StringVarP(&opts.template, "template", "t", "", "Template path or URL")
	flags.StringVarP(&opts.output, "output", "o", "", "Generated file path")
	flags.StringVar(&opts.marker, "marker", "", "Marker replaced in the template")
	flags.StringVar(&opts.messages, "messages", "", "Also write Go message constants to this path")
	flags.BoolVar(&opts.strict, "strict", false, "Fail when the template has no marker")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging")

	internal.PanicOnError(root.MarkPersistentFlagFilename("config", "toml"))
	internal.PanicOnError(root.MarkPersistentFlagFilename("output"))

	root.AddCommand(newCheckCmd(opts, fs))

	return root
}

func newCheckCmd(opts *options, fs afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check if generated files are up to date",
		Long: `Render the output in memory and compare it with the files on disk.

Nothing is written. A unified diff is printed for every stale file and the
command fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			generator, err := opts.newApp(cmd, fs)
			if err != nil {
				return err
			}

			diffs, err := generator.Check(cmd.Context())
			if errors.Is(err, app.ErrStale) {
				for _, diff := range diffs {
					fmt.Fprint(cmd.OutOrStdout(), diff.Diff)
				}
				return errors.WithHint(err, "run ifacegen to regenerate")
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Up to date")
			return nil
		},
	}
}

func (opts *options) loadConfig(cmd *cobra.Command, fs afero.Fs) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.Load(fs, opts.configPath)
	} else {
		cfg, err = config.LoadOrDefault(fs, config.DefaultPath)
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = opts.input
	}
	if flags.Changed("template") {
		cfg.Template = opts.template
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("marker") {
		cfg.Marker = opts.marker
	}
	if flags.Changed("messages") {
		cfg.MessagesOutput = opts.messages
	}
	if flags.Changed("strict") {
		cfg.Strict = opts.strict
	}

	return cfg, nil
}

func (opts *options) newApp(cmd *cobra.Command, fs afero.Fs) (*app.App, error) {
	cfg, err := opts.loadConfig(cmd, fs)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cmd.ErrOrStderr(), opts.verbose)
	loader := resource.NewLoader(fs, cfg.HTTPTimeout, logger)

	return app.New(cfg, loader, logger), nil
}
