package backend

import "testing"

func TestDetectPriorityOrder(t *testing.T) {
	tests := []struct {
		name      string
		installed map[string]bool
		want      string
	}{
		{
			name:      "all installed picks spectacle",
			installed: map[string]bool{"spectacle": true, "grim": true, "gnome-screenshot": true},
			want:      "spectacle",
		},
		{
			name:      "grim before gnome-screenshot",
			installed: map[string]bool{"grim": true, "gnome-screenshot": true},
			want:      "grim",
		},
		{
			name:      "gnome-screenshot as last resort",
			installed: map[string]bool{"gnome-screenshot": true},
			want:      "gnome-screenshot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Detect("", &fakeRunner{installed: tt.installed})
			if b == nil {
				t.Fatal("Detect: got nil, want a backend")
			}
			if b.Name() != tt.want {
				t.Errorf("Detect: got %q, want %q", b.Name(), tt.want)
			}
		})
	}
}

func TestDetectNoneAvailable(t *testing.T) {
	if b := Detect("", &fakeRunner{}); b != nil {
		t.Errorf("Detect: got %q, want nil", b.Name())
	}
}

func TestDetectPreferredAvailableWinsOverOrder(t *testing.T) {
	r := &fakeRunner{installed: map[string]bool{"spectacle": true, "gnome-screenshot": true}}

	b := Detect("gnome-screenshot", r)
	if b == nil {
		t.Fatal("Detect: got nil, want a backend")
	}
	if b.Name() != "gnome-screenshot" {
		t.Errorf("Detect: got %q, want preferred %q", b.Name(), "gnome-screenshot")
	}
}

func TestDetectPreferredUnavailableFallsBack(t *testing.T) {
	r := &fakeRunner{installed: map[string]bool{"grim": true}}

	b := Detect("spectacle", r)
	if b == nil {
		t.Fatal("Detect: got nil, want a backend")
	}
	if b.Name() != "grim" {
		t.Errorf("Detect: got %q, want auto-detected %q", b.Name(), "grim")
	}
}

func TestDetectUnknownPreferredFallsThroughSilently(t *testing.T) {
	r := &fakeRunner{installed: map[string]bool{"grim": true}}

	b := Detect("flameshot", r)
	if b == nil {
		t.Fatal("Detect: got nil, want a backend")
	}
	if b.Name() != "grim" {
		t.Errorf("Detect: got %q, want %q", b.Name(), "grim")
	}
}
