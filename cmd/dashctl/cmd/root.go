package cmd

import (
	"github.com/spf13/cobra"

	"trading-dashboard/internal/client"
)

var (
	addr     string
	username string
	password string
)

var rootCmd = &cobra.Command{
	Use:   "dashctl",
	Short: "Operator CLI for the trading dashboard",
	Long: `dashctl talks to the trading dashboard's JSON API.

It can read and flip the auto-trade switch, print summary statistics
computed from the trade log, and poll both in a loop. Status writes and
the trade table require operator credentials (--username/--password).`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&addr, "addr", "http://localhost:8080", "dashboard server base URL")
	rootCmd.PersistentFlags().StringVarP(&username, "username", "u", "", "operator username")
	rootCmd.PersistentFlags().StringVarP(&password, "password", "p", "", "operator password")
}

func apiClient() *client.Client {
	return client.New(addr, username, password)
}
