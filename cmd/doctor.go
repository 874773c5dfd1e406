package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/shotbridge/shotbridge/internal/backend"
	"github.com/shotbridge/shotbridge/internal/client"
)

var (
	okMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("✓")
	failMark = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("✗")
	dimText  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check which capture tools and helpers are installed",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := backend.ExecRunner{}

		fmt.Println("screenshot backends (priority order):")
		anyBackend := false
		for _, b := range backend.All(runner) {
			mark := failMark
			if b.Available() {
				mark = okMark
				anyBackend = true
			}
			fmt.Printf("  %s %s\n", mark, b.Name())
		}

		fmt.Println("helpers:")
		for _, tool := range []string{"swayidle", "notify-send"} {
			mark := failMark
			if _, err := runner.LookPath(tool); err == nil {
				mark = okMark
			}
			fmt.Printf("  %s %s\n", mark, tool)
		}

		if selected := backend.Detect(flagBackend, runner); selected != nil {
			fmt.Printf("selected backend: %s\n", selected.Name())
		} else {
			fmt.Println("selected backend: none — the bridge will not start")
		}

		// Best-effort: is a bridge already serving?
		probeRunningBridge()

		if !anyBackend {
			return fmt.Errorf("no screenshot backend available (install spectacle, grim or gnome-screenshot)")
		}
		return nil
	},
}

func probeRunningBridge() {
	c, err := client.Connect()
	if err != nil {
		fmt.Println(dimText.Render("session bus unreachable: " + err.Error()))
		return
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	name, uptimeMs, monitoring, err := c.Status(ctx)
	if err != nil {
		fmt.Println(dimText.Render("no running bridge found on the session bus"))
		return
	}
	uptime := time.Duration(uptimeMs * uint64(time.Millisecond)).Round(time.Second)
	fmt.Printf("running bridge: backend=%s uptime=%s idle_monitoring=%v\n", name, uptime, monitoring)
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
