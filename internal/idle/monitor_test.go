package idle

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestIdletimeSeededAtConstruction(t *testing.T) {
	m := NewMonitor()

	if got := m.Idletime(); got >= 50 {
		t.Errorf("Idletime right after construction: got %dms, want < 50ms", got)
	}
}

func TestIdletimeMonotonicWithoutResume(t *testing.T) {
	m := NewMonitor()

	first := m.Idletime()
	time.Sleep(20 * time.Millisecond)
	second := m.Idletime()

	if second < first {
		t.Errorf("Idletime went backwards: %dms then %dms", first, second)
	}
}

func TestConsumeResumeResetsTimestamp(t *testing.T) {
	m := NewMonitor()
	seeded := m.LastActivity()

	time.Sleep(10 * time.Millisecond)
	m.consume(strings.NewReader("resume\n"))

	if !m.LastActivity().After(seeded) {
		t.Error("resume event did not advance the last-activity timestamp")
	}
}

func TestConsumeTimeoutDoesNotResetTimestamp(t *testing.T) {
	m := NewMonitor()
	seeded := m.LastActivity()

	time.Sleep(10 * time.Millisecond)
	m.consume(strings.NewReader("timeout\ntimeout\nsomething else\n"))

	if !m.LastActivity().Equal(seeded) {
		t.Error("non-resume events must not move the last-activity timestamp")
	}
}

func TestConsumeMixedStream(t *testing.T) {
	m := NewMonitor()
	seeded := m.LastActivity()

	time.Sleep(10 * time.Millisecond)
	m.consume(strings.NewReader("timeout\nresume\ntimeout\n"))

	if !m.LastActivity().After(seeded) {
		t.Error("resume in a mixed stream did not advance the timestamp")
	}
}

func TestStopBeforeStartIsNoOp(t *testing.T) {
	m := NewMonitor()
	m.Stop()
	m.Stop()

	if m.Monitoring() {
		t.Error("Monitoring: got true on a never-started monitor")
	}
}

func TestStartMissingHelperDegrades(t *testing.T) {
	m := NewMonitor()
	m.helper = []string{"definitely-not-a-real-idle-helper"}

	if err := m.Start(context.Background()); err == nil {
		t.Fatal("Start: expected error for a missing helper")
	}
	if m.Monitoring() {
		t.Error("Monitoring: got true after failed Start")
	}
	// The query must keep working.
	if got := m.Idletime(); got >= 1000 {
		t.Errorf("Idletime after failed Start: got %dms, want elapsed-since-construction", got)
	}
}

func TestStartAndStopHelper(t *testing.T) {
	m := NewMonitor()
	m.helper = []string{"sh", "-c", "echo resume; exec sleep 60"}
	seeded := m.LastActivity()

	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !m.Monitoring() {
		t.Fatal("Monitoring: got false after Start")
	}

	// Wait for the resume line to be consumed.
	deadline := time.Now().Add(2 * time.Second)
	for !m.LastActivity().After(seeded) {
		if time.Now().After(deadline) {
			t.Fatal("resume event from helper was never observed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	m.Stop()
	if m.Monitoring() {
		t.Error("Monitoring: got true after Stop")
	}
	m.Stop() // second call is a no-op
}
