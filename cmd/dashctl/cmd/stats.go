package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print summary statistics from the trade log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := apiClient().Metrics()
		if err != nil {
			return err
		}
		if report.NoData {
			fmt.Println("no trade data recorded yet")
			return nil
		}
		fmt.Printf("avg profit ratio:  %.2f%%\n", report.AvgProfitRatio*100)
		fmt.Printf("total profit:      %s KRW\n", report.TotalProfitKRW.StringFixed(0))
		fmt.Printf("success / fail:    %d / %d\n", report.SuccessCount, report.FailCount)
		if report.DroppedCount > 0 {
			fmt.Printf("dropped records:   %d\n", report.DroppedCount)
		}
		return nil
	},
}

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "Print the trade detail table (requires credentials)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := apiClient().Trades()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATETIME\tTITLE\tTICKER\tBUY\tSALE\tFEE\tRATIO\tPROFIT")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%.4f\t%s\n",
				r.Datetime.Format("2006-01-02 15:04:05"),
				r.Title, r.Ticker,
				r.BuyValue.StringFixed(0), r.SaleValue.StringFixed(0), r.Fee.StringFixed(0),
				r.ProfitRatio, r.ProfitKRW.StringFixed(0))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(tradesCmd)
}
