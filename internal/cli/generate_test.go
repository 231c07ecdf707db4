package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/polyclip/pkg/errors"
)

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestGenerateRaw(t *testing.T) {
	out, _, err := runCLI(t, "generate", "--step", "100", "--seed", "1")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	got := lines(out)
	if len(got) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(got), out)
	}
	if pairs := strings.Split(got[0], ","); len(pairs) != 4 {
		t.Errorf("got %d pairs, want 4: %q", len(pairs), got[0])
	}
}

func TestGenerateSeeded(t *testing.T) {
	a, _, err := runCLI(t, "generate", "--seed", "5", "--count", "3")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	b, _, err := runCLI(t, "generate", "--seed", "5", "--count", "3")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if a != b {
		t.Errorf("same seed produced different output:\n%s\n%s", a, b)
	}

	got := lines(a)
	if len(got) != 3 {
		t.Fatalf("got %d lines, want 3", len(got))
	}

	// Polygon i of a run uses seed+i.
	next, _, err := runCLI(t, "generate", "--seed", "6")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if lines(next)[0] != got[1] {
		t.Errorf("second polygon of seed 5 = %q, want polygon of seed 6 %q", got[1], lines(next)[0])
	}
}

func TestGenerateCSS(t *testing.T) {
	out, _, err := runCLI(t, "generate", "--format", "css", "--seed", "3")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	line := lines(out)[0]
	if !strings.HasPrefix(line, "clip-path: polygon(") || !strings.HasSuffix(line, ");") {
		t.Errorf("unexpected css output %q", line)
	}

	out, _, err = runCLI(t, "generate", "-f", "css", "--property", "-webkit-clip-path")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if !strings.HasPrefix(out, "-webkit-clip-path: polygon(") {
		t.Errorf("unexpected css output %q", out)
	}
}

func TestGenerateJSON(t *testing.T) {
	out, _, err := runCLI(t, "generate", "--format", "json", "--seed", "9", "--step", "25")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	var doc struct {
		StepSize int    `json:"step_size"`
		Seed     uint64 `json:"seed"`
		Polygon  string `json:"polygon"`
		Vertices []struct {
			Key int `json:"key"`
		} `json:"vertices"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if doc.Seed != 9 || doc.StepSize != 25 {
		t.Errorf("seed/step = %d/%d, want 9/25", doc.Seed, doc.StepSize)
	}
	if len(doc.Vertices) < 4 || len(doc.Vertices) != len(strings.Split(doc.Polygon, ",")) {
		t.Errorf("vertices %d do not match polygon %q", len(doc.Vertices), doc.Polygon)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad format", []string{"--format", "svg"}, errors.ErrCodeInvalidFormat},
		{"zero step", []string{"--step", "0"}, errors.ErrCodeInvalidStepSize},
		{"strict non-divisor", []string{"--step", "30", "--strict"}, errors.ErrCodeInvalidStepSize},
		{"zero count", []string{"--count", "0"}, errors.ErrCodeInvalidInput},
		{"negative mean", []string{"--mean", "-1"}, errors.ErrCodeInvalidMean},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, append([]string{"generate"}, tt.args...)...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestGenerateWarnsWhenMeanFillsGrid(t *testing.T) {
	out, stderr, err := runCLI(t, "generate", "--step", "50", "--mean", "10", "--seed", "1")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if !strings.Contains(stderr, "all 4 grid points") {
		t.Errorf("expected warning on stderr, got %q", stderr)
	}
	if pairs := strings.Split(lines(out)[0], ","); len(pairs) != 8 {
		t.Errorf("got %d pairs, want 8", len(pairs))
	}
}
