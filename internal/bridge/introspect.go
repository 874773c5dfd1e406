package bridge

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
)

// Introspection data for the exported objects. Some clients (and
// busctl/d-feet) introspect before calling; serving the XML makes the
// bridge indistinguishable from the real services for them.

func screenshotNode() *introspect.Node {
	return &introspect.Node{
		Name: ScreenshotPath,
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			{
				Name: ScreenshotInterface,
				Methods: []introspect.Method{
					{
						Name: "Screenshot",
						Args: []introspect.Arg{
							{Name: "include_cursor", Type: "b", Direction: "in"},
							{Name: "flash", Type: "b", Direction: "in"},
							{Name: "filename", Type: "s", Direction: "in"},
							{Name: "success", Type: "b", Direction: "out"},
							{Name: "filename_used", Type: "s", Direction: "out"},
						},
					},
					{
						Name: "ScreenshotWindow",
						Args: []introspect.Arg{
							{Name: "include_frame", Type: "b", Direction: "in"},
							{Name: "include_cursor", Type: "b", Direction: "in"},
							{Name: "flash", Type: "b", Direction: "in"},
							{Name: "filename", Type: "s", Direction: "in"},
							{Name: "success", Type: "b", Direction: "out"},
							{Name: "filename_used", Type: "s", Direction: "out"},
						},
					},
					{
						Name: "ScreenshotArea",
						Args: []introspect.Arg{
							{Name: "x", Type: "i", Direction: "in"},
							{Name: "y", Type: "i", Direction: "in"},
							{Name: "width", Type: "i", Direction: "in"},
							{Name: "height", Type: "i", Direction: "in"},
							{Name: "flash", Type: "b", Direction: "in"},
							{Name: "filename", Type: "s", Direction: "in"},
							{Name: "success", Type: "b", Direction: "out"},
							{Name: "filename_used", Type: "s", Direction: "out"},
						},
					},
				},
			},
		},
	}
}

func idleMonitorNode() *introspect.Node {
	return &introspect.Node{
		Name: IdleMonitorPath,
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			{
				Name: IdleMonitorInterface,
				Methods: []introspect.Method{
					{
						Name: "GetIdletime",
						Args: []introspect.Arg{
							{Name: "idletime", Type: "t", Direction: "out"},
						},
					},
				},
			},
		},
	}
}

func statusNode() *introspect.Node {
	return &introspect.Node{
		Name: StatusPath,
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			{
				Name: StatusInterface,
				Methods: []introspect.Method{
					{
						Name: "Status",
						Args: []introspect.Arg{
							{Name: "backend", Type: "s", Direction: "out"},
							{Name: "uptime_ms", Type: "t", Direction: "out"},
							{Name: "idle_monitoring", Type: "b", Direction: "out"},
						},
					},
					{
						Name: "RecentCaptures",
						Args: []introspect.Arg{
							{Name: "captures", Type: "a(tssbb)", Direction: "out"},
						},
					},
				},
			},
		},
	}
}

func exportIntrospection(conn *dbus.Conn, path dbus.ObjectPath, node *introspect.Node) error {
	err := conn.Export(introspect.NewIntrospectable(node), path, "org.freedesktop.DBus.Introspectable")
	if err != nil {
		return fmt.Errorf("exporting introspection for %s: %w", path, err)
	}
	return nil
}
