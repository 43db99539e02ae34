package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current auto-trade status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := apiClient().Status()
		if err != nil {
			return err
		}
		fmt.Println(status)
		return nil
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle on|off",
	Short: "Flip the auto-trade switch (requires credentials)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := apiClient()
		if err := c.SetStatus(args[0]); err != nil {
			return err
		}
		fmt.Printf("auto-trade is now %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(toggleCmd)
}
