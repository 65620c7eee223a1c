package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"StockAnalyzer/internal/model"
	"StockAnalyzer/internal/notifier"
)

var instrument string

var fundamentalCmd = &cobra.Command{
	Use:   "fundamental [instrument]",
	Short: "Show solvency, P/E and P/S of one instrument",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			name, err := selected(a, args)
			if err != nil {
				return err
			}
			return a.show(a.service.FundamentalDialog(cmd.Context(), name))
		})
	},
}

var technicalCmd = &cobra.Command{
	Use:   "technical [instrument]",
	Short: "Show return, beta and price range of one instrument",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			name, err := selected(a, args)
			if err != nil {
				return err
			}
			return a.show(a.service.TechnicalDialog(cmd.Context(), name))
		})
	},
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank all instruments by beta, highest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			return a.show(a.service.RankDialog(cmd.Context()))
		})
	},
}

var instrumentsCmd = &cobra.Command{
	Use:   "instruments",
	Short: "List the configured instruments and tickers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			lines := make([]string, 0, len(a.cfg.Instruments))
			for _, in := range a.cfg.Instruments {
				lines = append(lines, fmt.Sprintf("%s (%s)", in.Name, in.Ticker))
			}
			return a.out.Show("Instruments", strings.Join(lines, "\n"))
		})
	},
}

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently recorded technical analyses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			rows, err := a.service.History(historyLimit)
			if err != nil {
				a.showError(err.Error())
				return err
			}
			return a.out.Show("History", notifier.FormatHistory(rows))
		})
	},
}

// selected returns the chosen instrument from the flag or the argument,
// defaulting to the first catalogue entry.
func selected(a *app, args []string) (string, error) {
	name := instrument
	if len(args) == 1 {
		name = args[0]
	}
	if name == "" {
		return a.cfg.Instruments[0].Name, nil
	}
	if _, ok := a.cfg.Instrument(name); !ok {
		msg := fmt.Sprintf("Unknown instrument %q. Choose one of: %s", name, strings.Join(a.cfg.InstrumentNames(), ", "))
		a.showError(msg)
		return "", fmt.Errorf("%w: %q", model.ErrUnknownInstrument, name)
	}
	return name, nil
}

func init() {
	for _, c := range []*cobra.Command{fundamentalCmd, technicalCmd} {
		c.Flags().StringVarP(&instrument, "instrument", "i", "", "instrument name (default: first configured)")
	}
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of entries")

	rootCmd.AddCommand(fundamentalCmd, technicalCmd, rankCmd, instrumentsCmd, historyCmd)
}
