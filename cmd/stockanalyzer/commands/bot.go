package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"StockAnalyzer/internal/notifier"
	"StockAnalyzer/internal/scheduler"
)

var runOnStart bool

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Answer Telegram commands and push the scheduled ranking report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			if err := a.cfg.ValidateTelegram(); err != nil {
				a.showError(err.Error())
				return fmt.Errorf("config validation: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			tn := notifier.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.cfg.Proxy,
				a.log.With().Str("component", "telegram").Logger())

			sched := scheduler.NewScheduler(ctx, a.service, tn, a.log)
			if err := sched.RegisterRankReport(a.cfg.Schedule.RankCron); err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			if runOnStart {
				a.log.Info().Msg("run-on-start enabled, sending rank report now")
				go sched.RunRankNow()
			}

			a.log.Info().Str("rank_cron", a.cfg.Schedule.RankCron).Msg("bot running, press Ctrl+C to stop")
			tn.StartPolling(ctx, sched.HandleCommand)
			a.log.Info().Msg("bot stopped")
			return nil
		})
	},
}

func init() {
	botCmd.Flags().BoolVar(&runOnStart, "run-now", os.Getenv("RUN_ON_START") == "true", "send the rank report immediately")
	rootCmd.AddCommand(botCmd)
}
