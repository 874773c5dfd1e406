package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shotbridge/shotbridge/internal/client"
)

var idletimeCmd = &cobra.Command{
	Use:   "idletime",
	Short: "Query idle time from a running bridge",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client.Connect()
		if err != nil {
			return err
		}
		defer c.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		ms, err := c.Idletime(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d ms (%s)\n", ms, time.Duration(ms*uint64(time.Millisecond)).Round(time.Millisecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(idletimeCmd)
}
