// Package client calls a running shotbridge (or the real GNOME services)
// over the session bus. It is the client half of the wire contract served
// by internal/bridge, used by the shot, idletime and monitor commands.
package client

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/shotbridge/shotbridge/internal/bridge"
)

type Client struct {
	conn *dbus.Conn
}

// Connect opens a private session bus connection.
func Connect() (*Client, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connecting to session bus: %w", err)
	}
	return &Client{conn: conn}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// Screenshot requests a full-screen capture to filename.
func (c *Client) Screenshot(ctx context.Context, cursor, flash bool, filename string) (bool, string, error) {
	obj := c.conn.Object(bridge.ScreenshotBusName, bridge.ScreenshotPath)
	var ok bool
	var path string
	err := obj.CallWithContext(ctx, bridge.ScreenshotInterface+".Screenshot", 0,
		cursor, flash, filename).Store(&ok, &path)
	if err != nil {
		return false, filename, fmt.Errorf("Screenshot call: %w", err)
	}
	return ok, path, nil
}

// ScreenshotWindow requests a capture of the focused window.
func (c *Client) ScreenshotWindow(ctx context.Context, frame, cursor, flash bool, filename string) (bool, string, error) {
	obj := c.conn.Object(bridge.ScreenshotBusName, bridge.ScreenshotPath)
	var ok bool
	var path string
	err := obj.CallWithContext(ctx, bridge.ScreenshotInterface+".ScreenshotWindow", 0,
		frame, cursor, flash, filename).Store(&ok, &path)
	if err != nil {
		return false, filename, fmt.Errorf("ScreenshotWindow call: %w", err)
	}
	return ok, path, nil
}

// ScreenshotArea requests a capture of the given pixel rectangle.
func (c *Client) ScreenshotArea(ctx context.Context, x, y, width, height int32, flash bool, filename string) (bool, string, error) {
	obj := c.conn.Object(bridge.ScreenshotBusName, bridge.ScreenshotPath)
	var ok bool
	var path string
	err := obj.CallWithContext(ctx, bridge.ScreenshotInterface+".ScreenshotArea", 0,
		x, y, width, height, flash, filename).Store(&ok, &path)
	if err != nil {
		return false, filename, fmt.Errorf("ScreenshotArea call: %w", err)
	}
	return ok, path, nil
}

// Idletime returns milliseconds since the last user activity.
func (c *Client) Idletime(ctx context.Context) (uint64, error) {
	obj := c.conn.Object(bridge.IdleMonitorBusName, bridge.IdleMonitorPath)
	var ms uint64
	err := obj.CallWithContext(ctx, bridge.IdleMonitorInterface+".GetIdletime", 0).Store(&ms)
	if err != nil {
		return 0, fmt.Errorf("GetIdletime call: %w", err)
	}
	return ms, nil
}

// Status queries shotbridge's own status object. Fails against the real
// GNOME services, which do not carry it.
func (c *Client) Status(ctx context.Context) (backendName string, uptimeMs uint64, monitoring bool, err error) {
	obj := c.conn.Object(bridge.ScreenshotBusName, bridge.StatusPath)
	err = obj.CallWithContext(ctx, bridge.StatusInterface+".Status", 0).
		Store(&backendName, &uptimeMs, &monitoring)
	if err != nil {
		err = fmt.Errorf("Status call: %w", err)
	}
	return backendName, uptimeMs, monitoring, err
}

// RecentCaptures returns the bridge's retained capture history.
func (c *Client) RecentCaptures(ctx context.Context) ([]bridge.CaptureRecord, error) {
	obj := c.conn.Object(bridge.ScreenshotBusName, bridge.StatusPath)
	var records []bridge.CaptureRecord
	err := obj.CallWithContext(ctx, bridge.StatusInterface+".RecentCaptures", 0).Store(&records)
	if err != nil {
		return nil, fmt.Errorf("RecentCaptures call: %w", err)
	}
	return records, nil
}
