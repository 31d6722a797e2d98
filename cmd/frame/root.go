package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"function-frame/internal/config"
	"function-frame/internal/diagnostic"
	"function-frame/internal/gen"
	"function-frame/internal/logger"
	"function-frame/internal/source"
)

// app carries the state shared by all commands.
type app struct {
	// cfgFile allows specifying a custom config file
	cfgFile string
	// marker overrides the directive marker from the config file
	marker string
	// verbose enables debug logging
	verbose bool

	fs     afero.Fs
	cfg    *config.Config
	logger *log.Logger
}

func newApp() *app {
	return &app{fs: afero.NewOsFs()}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "frame",
		Short: "Wrap annotated Go functions in printed header and footer banners",
		Long: `frame rewrites Go functions annotated with a directive such as

  //frame:wrap title = "Simple Example", sep = "-", width = 25
  func voidFunc() { ... }

so that they print a header banner before their body and a footer banner
after it. Arguments ending in .go are files; anything else is a package
pattern (default ".").

Examples:
  frame gen main.go          Print the rewritten file to stdout
  frame gen -w ./...         Rewrite every package in place
  frame check ./...          Report directive errors without writing
  frame list .               Show every directive and its options`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	// Global flags
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./"+config.DefaultFile+" when present)")
	root.PersistentFlags().StringVar(&a.marker, "marker", "", "directive marker (default \"frame:wrap\")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	// Add subcommands
	root.AddCommand(newGenCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newListCmd(a))

	return root
}

// init loads the configuration and sets up logging.
func (a *app) init(cmd *cobra.Command) error {
	path, optional := a.cfgFile, false
	if path == "" {
		path, optional = config.DefaultFile, true
	}

	cfg, err := config.LoadFile(a.fs, path, optional)
	if err != nil {
		return err
	}

	if a.marker != "" {
		cfg.Marker = a.marker
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}

	if a.verbose {
		level = log.DebugLevel
	}

	lc := logger.DefaultConfig()
	lc.Level = level
	lc.Output = cmd.ErrOrStderr()
	lc.JSON = cfg.LogFormat == config.LogFormatJSON

	a.cfg = cfg
	a.logger = logger.New(lc)
	a.logger.Debug("configuration loaded", "file", path, "marker", cfg.Marker, "exclude", cfg.Exclude)

	return nil
}

// load reads the inputs named by args: .go files directly, everything
// else as package patterns.
func (a *app) load(args []string) ([]*source.File, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	var (
		files    []*source.File
		patterns []string
	)

	for _, arg := range args {
		if filepath.Ext(arg) != ".go" {
			patterns = append(patterns, arg)
			continue
		}

		f, err := source.ParseFile(a.fs, arg)
		if err != nil {
			return nil, err
		}

		files = append(files, f)
	}

	if len(patterns) > 0 {
		pkgFiles, err := source.LoadPackages(".", patterns...)
		if err != nil {
			return nil, err
		}

		files = append(files, pkgFiles...)
	}

	a.logger.Debug("inputs loaded", "files", len(files), "patterns", patterns)

	return files, nil
}

// generate runs the generator over the inputs named by args.
func (a *app) generate(args []string) (*gen.Result, error) {
	files, err := a.load(args)
	if err != nil {
		return nil, err
	}

	g := gen.NewGenerator(gen.GeneratorConfig{
		Marker:   a.cfg.Marker,
		DebugDir: a.cfg.Output,
		Skip:     a.excluded,
	}, gen.WithLogger(a.logger), gen.WithFs(a.fs))

	return g.Generate(files)
}

// excluded matches path against the exclude globs, relative to the
// working directory when possible.
func (a *app) excluded(path string) bool {
	if filepath.IsAbs(path) {
		if wd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(wd, path); err == nil {
				path = rel
			}
		}
	}

	return a.cfg.Excluded(path)
}

// report prints every diagnostic of a run.
func report(cmd *cobra.Command, d diagnostic.Diagnostics) {
	out := cmd.ErrOrStderr()

	for _, group := range [][]diagnostic.Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			fmt.Fprintf(out, "%s: %s\n", diag.Severity, diag)
		}
	}
}
