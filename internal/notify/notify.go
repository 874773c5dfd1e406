// Package notify sends best-effort desktop notifications via notify-send.
package notify

import (
	"context"
	"log/slog"

	"github.com/shotbridge/shotbridge/internal/backend"
)

// Notifier shows desktop notifications before captures. Failures are
// logged and otherwise ignored: a missing notify-send must never block a
// screenshot.
type Notifier struct {
	run backend.Runner
}

func New(r backend.Runner) *Notifier {
	return &Notifier{run: r}
}

// Warn shows a short "screenshot incoming" notification.
func (n *Notifier) Warn(ctx context.Context) {
	err := n.run.Run(ctx, "notify-send",
		"-u", "normal", "-t", "2000",
		"Screenshot", "A screenshot will be taken...")
	if err != nil {
		slog.Debug("pre-capture notification failed", "error", err)
	}
}
