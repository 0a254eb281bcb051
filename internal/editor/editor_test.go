package editor

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"slices"
	"testing"
)

type fakeProcess struct {
	waitErr error
	waited  bool
}

func (p *fakeProcess) Wait() error {
	p.waited = true
	return p.waitErr
}

type call struct {
	name string
	args []string
}

// recorder starts only the editors listed in available.
func recorder(available map[string]*fakeProcess, calls *[]call) StartFunc {
	return func(_ context.Context, name string, args []string, _ io.Reader, _, _ io.Writer) (Process, error) {
		*calls = append(*calls, call{name: name, args: args})
		if proc, ok := available[name]; ok {
			return proc, nil
		}
		return nil, exec.ErrNotFound
	}
}

func callNames(calls []call) []string {
	names := make([]string, 0, len(calls))
	for _, c := range calls {
		names = append(names, c.name)
	}
	return names
}

func TestCandidates(t *testing.T) {
	cases := map[string][]string{
		"nano": {"nano", "vim", "vi"},
		"":     {"vim", "vi"},
		"   ":  {"vim", "vi"},
	}
	for preferred, want := range cases {
		if got := Candidates(preferred); !slices.Equal(got, want) {
			t.Fatalf("Candidates(%q) = %#v, want %#v", preferred, got, want)
		}
	}
}

func TestRunUsesPreferredEditor(t *testing.T) {
	var calls []call
	nano := &fakeProcess{}
	l := &Launcher{Start: recorder(map[string]*fakeProcess{"nano": nano, "vim": {}}, &calls)}

	if err := l.Run(context.Background(), Candidates("nano"), "/data/2025-11-02.txt"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(calls) != 1 || calls[0].name != "nano" {
		t.Fatalf("calls = %#v, want only nano", calls)
	}
	if !slices.Equal(calls[0].args, []string{"/data/2025-11-02.txt"}) {
		t.Fatalf("args = %#v", calls[0].args)
	}
	if !nano.waited {
		t.Fatalf("nano was started but not waited on")
	}
}

func TestRunFallsBackInOrder(t *testing.T) {
	var calls []call
	vi := &fakeProcess{}
	l := &Launcher{Start: recorder(map[string]*fakeProcess{"vi": vi}, &calls)}

	if err := l.Run(context.Background(), Candidates("missing-editor"), "/tmp/day.txt"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := callNames(calls); !slices.Equal(got, []string{"missing-editor", "vim", "vi"}) {
		t.Fatalf("tried %#v", got)
	}
	if !vi.waited {
		t.Fatalf("vi was started but not waited on")
	}
}

func TestRunSplitsEditorArguments(t *testing.T) {
	var calls []call
	l := &Launcher{Start: recorder(map[string]*fakeProcess{"code": {}}, &calls)}

	if err := l.Run(context.Background(), []string{"code --wait"}, "/tmp/day.txt"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(calls) != 1 || !slices.Equal(calls[0].args, []string{"--wait", "/tmp/day.txt"}) {
		t.Fatalf("calls = %#v", calls)
	}
}

func TestRunWithoutAnyEditorFails(t *testing.T) {
	var calls []call
	l := &Launcher{Start: recorder(nil, &calls)}

	if err := l.Run(context.Background(), Candidates(""), "/tmp/day.txt"); !errors.Is(err, ErrNoEditor) {
		t.Fatalf("Run error = %v, want ErrNoEditor", err)
	}
	if len(calls) != 2 {
		t.Fatalf("tried %d editors, want 2", len(calls))
	}
}

func TestRunReportsEditorFailure(t *testing.T) {
	var calls []call
	boom := errors.New("exit status 1")
	l := &Launcher{Start: recorder(map[string]*fakeProcess{"vim": {waitErr: boom}, "vi": {}}, &calls)}

	if err := l.Run(context.Background(), Candidates(""), "/tmp/day.txt"); !errors.Is(err, boom) {
		t.Fatalf("Run error = %v, want %v", err, boom)
	}
	// A started editor must not fall through to the next candidate.
	if len(calls) != 1 {
		t.Fatalf("tried %#v, want only vim", callNames(calls))
	}
}
