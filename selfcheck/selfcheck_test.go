package selfcheck

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunAll(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(&out, discardLogger())

	failures, err := r.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if failures != 0 {
		t.Errorf("expected no failures, got %d\n%s", failures, out.String())
	}

	for _, c := range Checks() {
		if !strings.Contains(out.String(), "Running test: "+c.Name+"\n") {
			t.Errorf("missing output for check %s", c.Name)
		}
	}
}

func TestRunOutput(t *testing.T) {
	tests := []struct {
		check string
		lines []string
	}{
		{"prepend", []string{"(44)->(43)->(42)->END    should be    (44)->(43)->(42)->END"}},
		{"append", []string{"(42)->(43)->(44)->END    should be    (42)->(43)->(44)->END"}},
		{"pull", []string{
			"42    should be    42",
			"(43)->(44)->END    should be    (43)->(44)->END",
			"43    should be    43",
			"(44)->END    should be    (44)->END",
			"44    should be    44",
			"END    should be    END",
		}},
		{"pop", []string{
			"44    should be    44",
			"(42)->(43)->END    should be    (42)->(43)->END",
			"43    should be    43",
			"(42)->END    should be    (42)->END",
			"42    should be    42",
			"END    should be    END",
		}},
		{"contains", []string{"true    should be    true", "false    should be    false"}},
		{"length", []string{"3    should be    3"}},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		r := NewRunner(&out, discardLogger())

		failures, err := r.Run(tt.check)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.check, err)
		}
		if failures != 0 {
			t.Errorf("%s: expected no failures, got %d", tt.check, failures)
		}

		want := "Running test: " + tt.check + "\n" + strings.Join(tt.lines, "\n") + "\n\n"
		if out.String() != want {
			t.Errorf("%s: expected output\n%q\ngot\n%q", tt.check, want, out.String())
		}
	}
}

func TestRunUnknownCheck(t *testing.T) {
	r := NewRunner(io.Discard, discardLogger())

	_, err := r.Run("append", "sort")
	if !errors.Is(err, UnknownCheckErr) {
		t.Errorf("expected UnknownCheckErr, got %v", err)
	}
}

func TestExpectCountsMismatch(t *testing.T) {
	var out, logs bytes.Buffer
	r := NewRunner(&out, slog.New(slog.NewTextHandler(&logs, nil)))

	r.expect("1", "1")
	r.expect("2", "3")

	if r.failures != 1 {
		t.Errorf("expected 1 failure, got %d", r.failures)
	}
	if !strings.Contains(logs.String(), "unexpected result") {
		t.Errorf("mismatch should be logged, got %q", logs.String())
	}
}
