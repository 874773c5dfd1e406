package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shotbridge/shotbridge/internal/client"
	"github.com/shotbridge/shotbridge/internal/dashboard"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Live dashboard for a running bridge",
	Long: `Shows the active backend, idle time and recent captures of a running
bridge, refreshed once per second.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client.Connect()
		if err != nil {
			return err
		}
		defer c.Close()
		return dashboard.Run(c)
	},
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}
