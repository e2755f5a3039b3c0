package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"strandkin/domain/moves"
	"strandkin/internal/config"
	"strandkin/internal/container"
	"strandkin/internal/errors"
	"strandkin/internal/logging"
	"strandkin/internal/tally"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "strandkin",
		Short:         "Inspect kinetic parameters and move classification",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(logging.ParseLevel(logLevel), "text", cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newOptionsCmd(),
		newProfileCmd(),
		newCombineCmd(),
		newDecodeCmd(),
		newTallyCmd(),
	)
	return rootCmd
}

// loadContainer builds the parameter provider selected by the STRANDKIN_* environment
func loadContainer() (*container.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return container.New(cfg)
}

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Print the active kinetic parameter set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadContainer()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, c.Energy.String())
			file, err := c.Energy.ParameterFile(nil)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "parameter file: %s\n", file)
			return nil
		},
	}
}

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Summarise the prefactor table and pairwise rates as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadContainer()
			if err != nil {
				return err
			}
			profile, err := c.RateProfiler.Profile(c.Energy)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(profile)
		},
	}
}

func newCombineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "combine LEFT RIGHT",
		Short: "Classify the move flanked by two contexts",
		Long: `Classify the move type for a pair of quarter contexts.

Example: strandkin combine stack loop`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, ok := moves.ParseQuartContext(args[0])
			if !ok {
				return errors.InvalidInput(fmt.Sprintf("unknown context %q", args[0]))
			}
			right, ok := moves.ParseQuartContext(args[1])
			if !ok {
				return errors.InvalidInput(fmt.Sprintf("unknown context %q", args[1]))
			}
			m := moves.Combine(left, right)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (prime %d)\n", m, m.Prime())
			return nil
		},
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode PRODUCT",
		Short: "Recover the move pair encoded as a product of primes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.InvalidInputf(err, "product %q", args[0])
			}
			left, right, ok := moves.DecodeTypeMult(product)
			if !ok {
				return errors.NotFound(fmt.Sprintf("move pair for product %d", product))
			}
			fmt.Fprintln(cmd.OutOrStdout(), moves.NewJoinCriteria(left, right))
			return nil
		},
	}
}

func newTallyCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "tally OBSERVATION...",
		Short: "Tally exposed bases given as left:base:right",
		Long: `Tally exposed bases by their flanking contexts. Each argument is one
exposed region; observations within a region are comma separated.

Example: strandkin tally stack:A:loop,stack:C:loop end:T:end`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			regions, err := parseRegions(args)
			if err != nil {
				return err
			}
			info, err := tally.Parallel(context.Background(), regions, workers)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, info)
			summary := info.Composition()
			fmt.Fprintf(out, "Entropy = %.4f nats\n", summary.Entropy)
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "Tally goroutines (0 = GOMAXPROCS)")
	return cmd
}

func parseRegions(args []string) ([]tally.Region, error) {
	regions := make([]tally.Region, 0, len(args))
	for _, arg := range args {
		var region tally.Region
		for _, field := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' }) {
			obs, err := tally.ParseObservation(field)
			if err != nil {
				return nil, err
			}
			region = append(region, obs)
		}
		regions = append(regions, region)
	}
	return regions, nil
}
