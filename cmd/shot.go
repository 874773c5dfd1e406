package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/shotbridge/shotbridge/internal/client"
)

var (
	flagShotWindow bool
	flagShotArea   string
	flagShotCursor bool
	flagShotFrame  bool
	flagShotFlash  bool
)

var shotCmd = &cobra.Command{
	Use:   "shot [filename]",
	Short: "Take a screenshot through a running bridge",
	Long: `Calls the org.gnome.Shell.Screenshot interface on the session bus the
same way a GNOME client would. Works against a running shotbridge or
against the real GNOME Shell.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := defaultShotFilename()
		if len(args) == 1 {
			filename = args[0]
		}

		c, err := client.Connect()
		if err != nil {
			return err
		}
		defer c.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var ok bool
		var path string
		switch {
		case flagShotWindow && flagShotArea != "":
			return fmt.Errorf("--window and --area are mutually exclusive")
		case flagShotWindow:
			ok, path, err = c.ScreenshotWindow(ctx, flagShotFrame, flagShotCursor, flagShotFlash, filename)
		case flagShotArea != "":
			var x, y, w, h int32
			if _, perr := fmt.Sscanf(flagShotArea, "%d,%d %dx%d", &x, &y, &w, &h); perr != nil {
				return fmt.Errorf("invalid area %q, want \"x,y WxH\" (e.g. \"10,20 300x200\")", flagShotArea)
			}
			ok, path, err = c.ScreenshotArea(ctx, x, y, w, h, flagShotFlash, filename)
		default:
			ok, path, err = c.Screenshot(ctx, flagShotCursor, flagShotFlash, filename)
		}
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("capture failed (see the bridge's log for the cause)")
		}
		fmt.Println(path)
		return nil
	},
}

func defaultShotFilename() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		dir = os.TempDir()
	}
	name := fmt.Sprintf("screenshot-%s.png", time.Now().Format("20060102-150405"))
	return filepath.Join(dir, name)
}

func init() {
	shotCmd.Flags().BoolVar(&flagShotWindow, "window", false, "capture the focused window")
	shotCmd.Flags().StringVar(&flagShotArea, "area", "", "capture a rectangle: \"x,y WxH\"")
	shotCmd.Flags().BoolVar(&flagShotCursor, "cursor", false, "include the cursor")
	shotCmd.Flags().BoolVar(&flagShotFrame, "frame", true, "include window decorations (with --window)")
	shotCmd.Flags().BoolVar(&flagShotFlash, "flash", false, "request a flash effect (accepted, unused by the bridge)")
	rootCmd.AddCommand(shotCmd)
}
