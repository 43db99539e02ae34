package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll status and summary statistics in a loop",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := apiClient()

		if watchInterval <= 0 {
			watchInterval = 10 * time.Second
		}

		// One poll per interval, no bursting even right after startup.
		limiter := rate.NewLimiter(rate.Every(watchInterval), 1)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		for {
			if err := limiter.Wait(ctx); err != nil {
				return nil // interrupted
			}

			status, err := c.Status()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			report, err := c.Metrics()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}

			now := time.Now().Format("15:04:05")
			if report.NoData {
				fmt.Printf("[%s] auto-trade=%s  (no trade data)\n", now, status)
				continue
			}
			fmt.Printf("[%s] auto-trade=%s  avg=%.2f%%  total=%s KRW  win/fail=%d/%d\n",
				now, status,
				report.AvgProfitRatio*100,
				report.TotalProfitKRW.StringFixed(0),
				report.SuccessCount, report.FailCount)
		}
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 10*time.Second, "poll interval")
	rootCmd.AddCommand(watchCmd)
}
