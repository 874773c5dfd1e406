// Package dashboard implements the live monitor TUI. It polls a running
// bridge over the session bus once per second and renders backend status,
// idle time and recent captures.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shotbridge/shotbridge/internal/bridge"
	"github.com/shotbridge/shotbridge/internal/client"
)

// Styles
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const pollInterval = time.Second

// messages
type tickMsg struct{}

type statusMsg struct {
	backend    string
	uptimeMs   uint64
	monitoring bool
	idleMs     uint64
	captures   []bridge.CaptureRecord
	err        error
}

type model struct {
	client *client.Client

	spin   spinner.Model
	loaded bool
	status statusMsg
	width  int
	height int
}

// Run starts the dashboard and blocks until the user quits.
func Run(c *client.Client) error {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	m := model{client: c, spin: sp}

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.poll())
}

// poll queries the bridge off the UI goroutine.
func (m model) poll() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		var msg statusMsg
		msg.backend, msg.uptimeMs, msg.monitoring, msg.err = c.Status(ctx)
		if msg.err != nil {
			return msg
		}
		if msg.idleMs, msg.err = c.Idletime(ctx); msg.err != nil {
			// Idle tracking may be disabled; show the rest anyway.
			msg.idleMs = 0
			msg.err = nil
		}
		msg.captures, msg.err = c.RecentCaptures(ctx)
		return msg
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.poll()
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case statusMsg:
		m.status = msg
		m.loaded = true
		return m, tea.Tick(pollInterval, func(time.Time) tea.Msg { return tickMsg{} })

	case tickMsg:
		return m, m.poll()
	}

	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("shotbridge monitor") + "\n\n")

	if !m.loaded {
		b.WriteString(m.spin.View() + " connecting to bridge...\n")
		return b.String()
	}
	if m.status.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("bridge unreachable: %v", m.status.err)) + "\n")
		b.WriteString(dimStyle.Render("is `shotbridge serve` running?") + "\n")
		return b.String()
	}

	b.WriteString(headerStyle.Render("backend:  ") + okStyle.Render(m.status.backend) + "\n")
	b.WriteString(headerStyle.Render("uptime:   ") + formatMillis(m.status.uptimeMs) + "\n")

	idleLine := formatMillis(m.status.idleMs)
	if !m.status.monitoring {
		idleLine += " " + warnStyle.Render("(helper not running, time since bridge start)")
	}
	b.WriteString(headerStyle.Render("idle:     ") + idleLine + "\n\n")

	b.WriteString(headerStyle.Render("recent captures") + "\n")
	if len(m.status.captures) == 0 {
		b.WriteString(dimStyle.Render("  none yet") + "\n")
	}
	shown := m.status.captures
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for _, c := range shown {
		ts := time.UnixMilli(int64(c.UnixMs)).Format("15:04:05")
		line := fmt.Sprintf("  %s  %-6s  %s", ts, c.Kind, c.Path)
		switch {
		case !c.Success:
			line += errorStyle.Render("  failed")
		case c.Degraded:
			line += warnStyle.Render("  degraded to full")
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("q quit · r refresh") + "\n")
	return b.String()
}

func formatMillis(ms uint64) string {
	return time.Duration(ms * uint64(time.Millisecond)).Round(time.Second).String()
}
