package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"controlling_microwave/internal/conformance"
	"controlling_microwave/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errConformanceFailed makes the process exit non-zero once the report is printed.
var errConformanceFailed = errors.New("conformance failed")

type conformanceOptions struct {
	impls   []string
	scripts []string
	depth   int
}

func newConformanceCommand() *cobra.Command {
	opts := &conformanceOptions{}

	cmd := &cobra.Command{
		Use:   "conformance",
		Short: "Run the oven conformance suite against registered implementations",
		Long: `Run the built-in conformance suite, any YAML scripts given with --script,
and an exhaustive exploration up to --explore-depth against each implementation.

Exit codes:
  0 - every implementation passed
  1 - at least one implementation failed, or a script could not be loaded`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("explore-depth") {
				opts.depth = viper.GetInt("conformance.depth")
			}
			log := logger.Get(viper.GetString("log.level"))
			return runConformance(cmd.OutOrStdout(), opts, log)
		},
	}

	cmd.Flags().StringSliceVar(&opts.impls, "impl", nil, "implementations to check (default all): "+strings.Join(conformance.Implementations(), ", "))
	cmd.Flags().StringSliceVar(&opts.scripts, "script", nil, "extra YAML conformance scripts")
	cmd.Flags().IntVar(&opts.depth, "explore-depth", 2, "exhaustive exploration depth (0 disables)")

	return cmd
}

func runConformance(out io.Writer, opts *conformanceOptions, log *logger.Logger) error {
	suites := []conformance.Suite{conformance.Default()}
	for _, path := range opts.scripts {
		s, err := conformance.LoadScriptFile(path)
		if err != nil {
			return err
		}
		suites = append(suites, s)
	}

	impls := opts.impls
	if len(impls) == 0 {
		impls = conformance.Implementations()
	}

	failed := 0
	for _, name := range impls {
		factory, err := conformance.Lookup(strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			return err
		}
		if err := checkImplementation(out, name, factory, suites, opts.depth, log); err != nil {
			failed++
			fmt.Fprintf(out, "FAIL  %s\n%v\n", name, err)
			continue
		}
		fmt.Fprintf(out, "ok    %s\n", name)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d implementations", errConformanceFailed, failed, len(impls))
	}
	return nil
}

func checkImplementation(out io.Writer, name string, factory conformance.Factory, suites []conformance.Suite, depth int, log *logger.Logger) error {
	for _, s := range suites {
		rep, err := conformance.Run(factory(), s, conformance.WithLogger(log))
		if err != nil {
			return fmt.Errorf("suite %q: %w", s.Name, err)
		}
		fmt.Fprintf(out, "      %s/%s: %d groups, %d steps, %d assertions\n", name, rep.Suite, rep.Groups, rep.Steps, rep.Assertions)
	}
	if depth <= 0 {
		return nil
	}
	exp, err := conformance.Explore(factory, conformance.ExploreConfig{Depth: depth}, conformance.WithLogger(log))
	if err != nil {
		return fmt.Errorf("explore depth %d: %w", depth, err)
	}
	fmt.Fprintf(out, "      %s/explore: %d sequences, %d operations\n", name, exp.Sequences, exp.Operations)
	return nil
}
