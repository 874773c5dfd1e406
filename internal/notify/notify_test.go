package notify

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type fakeRunner struct {
	calls  [][]string
	runErr error
}

func (f *fakeRunner) LookPath(name string) (string, error) { return "/usr/bin/" + name, nil }

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.runErr
}

func TestWarnArgv(t *testing.T) {
	r := &fakeRunner{}
	New(r).Warn(context.Background())

	if len(r.calls) != 1 {
		t.Fatalf("expected 1 invocation, got %d", len(r.calls))
	}
	want := []string{"notify-send", "-u", "normal", "-t", "2000", "Screenshot", "A screenshot will be taken..."}
	if !reflect.DeepEqual(r.calls[0], want) {
		t.Errorf("argv: got %v, want %v", r.calls[0], want)
	}
}

func TestWarnSwallowsFailure(t *testing.T) {
	r := &fakeRunner{runErr: errors.New("notify-send not installed")}
	// Must not panic or propagate anything.
	New(r).Warn(context.Background())
}
