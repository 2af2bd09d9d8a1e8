//go:build !lambda

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"memoria-parser/internal/app"
	"memoria-parser/internal/catalog"
	"memoria-parser/internal/config"
)

type cli struct {
	memoriaPath string
	orderPath   string
	logLevel    string

	cfg    *config.Config
	logger *zap.Logger
}

// setup loads configuration and applies flag overrides on top of it.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("memoria") {
		cfg.Catalog.MemoriaPath = c.memoriaPath
	}
	if flags.Changed("order") {
		cfg.Catalog.OrderPath = c.orderPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = c.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	c.cfg = cfg

	c.logger, err = app.NewLogger(cfg.Log)
	return err
}

func (c *cli) load() (*catalog.Catalog, error) {
	return catalog.LoadFiles(c.cfg.Catalog.MemoriaPath, c.cfg.Catalog.OrderPath, catalog.WithLogger(c.logger))
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "memoria",
		Short: "Parse and query memoria skill effects",
		Long: `memoria parses the Japanese skill texts of the memoria catalog into
structured effects. Every record must parse; a single failure rejects the
whole catalog and all problems are reported together.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&c.memoriaPath, "memoria", "", "memoria catalog JSON (default: embedded)")
	pf.StringVar(&c.orderPath, "order", "", "order catalog JSON (default: embedded)")
	pf.StringVar(&c.logLevel, "log-level", "info", "debug, info, warn or error")

	root.AddCommand(newCheckCmd(c, stdout), newDumpCmd(c, stdout), newSearchCmd(c, stdout))
	return root
}

func newCheckCmd(c *cli, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Parse the whole catalog and report every failure",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cat, err := c.load()
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "ok: %d memoria, %d orders\n", len(cat.Memoria()), len(cat.Orders()))
			return nil
		},
	}
}

func newDumpCmd(c *cli, stdout io.Writer) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the parsed catalog",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cat, err := c.load()
			if err != nil {
				return err
			}
			return writeFormat(stdout, format, newDumpDoc(cat))
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "json or yaml")
	return cmd
}

var filterKeys = []string{"element", "kind", "effect", "status", "trigger", "name"}

func newSearchCmd(c *cli, stdout io.Writer) *cobra.Command {
	var jsonOut bool
	values := make(map[string]*string, len(filterKeys))
	cmd := &cobra.Command{
		Use:   "search",
		Short: "List memoria matching the given filters",
		Example: `  memoria search --element Fire --effect StatusChange --status ATK
  memoria search --trigger Assist --json`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			params := make(map[string]string, len(values))
			for k, v := range values {
				params[k] = *v
			}
			f, err := catalog.NewFilter(params)
			if err != nil {
				return err
			}
			cat, err := c.load()
			if err != nil {
				return err
			}
			ms := cat.Filter(f)
			if jsonOut {
				return writeJSON(stdout, ms)
			}
			writeTable(stdout, ms)
			return nil
		},
	}
	for _, k := range filterKeys {
		values[k] = cmd.Flags().String(k, "", "filter by "+k)
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output results as JSON")
	return cmd
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
