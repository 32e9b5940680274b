package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/milk9111/mahjong/autoplay"
	"github.com/milk9111/mahjong/config"
	"github.com/milk9111/mahjong/game"
	"github.com/milk9111/mahjong/tui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type rootOptions struct {
	configPath string
	seed       int64
	verbose    bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "solitaire",
		Short:         "Mahjong Solitaire in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a yaml config file")
	rootCmd.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "random seed, 0 picks one from the clock")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log session events to stderr")

	rootCmd.AddCommand(newTUICmd(opts))
	rootCmd.AddCommand(newBenchCmd(opts))
	rootCmd.AddCommand(newDealCmd(opts))
	return rootCmd
}

// load reads the config and builds a game from it and the flags.
func (o *rootOptions) load() (config.Config, *game.Game, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if o.seed != 0 {
		cfg.Seed = o.seed
	}
	gc := game.Config{Seed: cfg.Seed}
	if o.verbose {
		gc.Log = log.New(os.Stderr, "", log.LstdFlags)
	}
	g, err := game.New(gc)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, g, nil
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, g, err := opts.load()
			if err != nil {
				return err
			}
			policy, err := autoplay.LoadPolicy(cfg.AutoplayScript)
			if err != nil {
				return err
			}
			m := tui.New(g, policy, cfg.Timing.Hint())
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}
}

func newBenchCmd(opts *rootOptions) *cobra.Command {
	var (
		games         int
		policyName    string
		maxReshuffles int
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Autoplay many deals and report the win rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			if games < 1 {
				return fmt.Errorf("bench: -n must be at least 1, got %d", games)
			}
			cfg, g, err := opts.load()
			if err != nil {
				return err
			}
			if policyName == "" {
				policyName = cfg.AutoplayScript
			}
			policy, err := autoplay.LoadPolicy(policyName)
			if err != nil {
				return err
			}
			stats, err := autoplay.Bench(cmd.Context(), g, policy, games, maxReshuffles)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "policy=%s %s\n", policy.Name(), stats)
			return nil
		},
	}
	cmd.Flags().IntVarP(&games, "games", "n", 100, "number of deals to play")
	cmd.Flags().StringVar(&policyName, "policy", "", "autoplay script path or bundled name (first, upper)")
	cmd.Flags().IntVar(&maxReshuffles, "max-reshuffles", autoplay.DefaultMaxReshuffles, "reshuffles allowed per stuck deal")
	return cmd
}

func newDealCmd(opts *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Print a fresh deal",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := opts.load()
			if err != nil {
				return err
			}
			snap := g.NewGame()
			out := cmd.OutOrStdout()
			switch format {
			case "text":
				fmt.Fprint(out, snap.String())
			case "yaml":
				data, err := yaml.Marshal(snap)
				if err != nil {
					return fmt.Errorf("deal: marshal: %w", err)
				}
				_, err = out.Write(data)
				return err
			default:
				return fmt.Errorf("deal: unknown format %q, want text or yaml", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or yaml")
	return cmd
}
