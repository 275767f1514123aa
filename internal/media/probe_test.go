package media

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/wavshift/internal/config"
	"github.com/nguyentantai21042004/wavshift/pkg/executor"
)

func TestDurationSoxi(t *testing.T) {
	exec := &fakeExecutor{stdout: "3.250000\n"}
	r := newTestRunner(exec, nil)

	got, err := r.Duration(context.Background(), "hello.wav")
	if err != nil {
		t.Fatalf("Duration() error = %v", err)
	}
	if got != 3.25 {
		t.Errorf("Duration() = %v, want 3.25", got)
	}
	if c := exec.calls[0]; c.name != "soxi" || strings.Join(c.args, " ") != "-D hello.wav" {
		t.Errorf("probe call = %s %q, want soxi -D hello.wav", c.name, c.args)
	}
}

func TestDurationFFprobe(t *testing.T) {
	exec := &fakeExecutor{stdout: "1.500000\n"}
	r := newTestRunner(exec, func(c *config.Config) {
		c.Probe = config.ProbeConfig{Tool: config.ProbeFFprobe, BinaryPath: "ffprobe"}
	})

	got, err := r.Duration(context.Background(), "hello.wav")
	if err != nil {
		t.Fatalf("Duration() error = %v", err)
	}
	if got != 1.5 {
		t.Errorf("Duration() = %v, want 1.5", got)
	}
	args := strings.Join(exec.calls[0].args, " ")
	if !strings.Contains(args, "format=duration") || !strings.HasSuffix(args, "hello.wav") {
		t.Errorf("ffprobe args = %q", args)
	}
}

func TestDurationParseFailure(t *testing.T) {
	r := newTestRunner(&fakeExecutor{stdout: "soxi FAIL formats: can't open\n"}, nil)

	_, err := r.Duration(context.Background(), "hello.wav")
	if !errors.Is(err, ErrProbeParse) {
		t.Errorf("Duration() error = %v, want ErrProbeParse", err)
	}
}

func TestDurationToolFailure(t *testing.T) {
	r := newTestRunner(&fakeExecutor{err: &executor.ToolError{Command: "soxi -D x", Err: errors.New("exit status 1")}}, nil)

	_, err := r.Duration(context.Background(), "x")
	if !errors.Is(err, executor.ErrToolFailure) {
		t.Errorf("Duration() error = %v, want ErrToolFailure", err)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    float64
		wantErr bool
	}{
		{"trailing newline", "2.000000\n", 2, false},
		{"no newline", "0.5", 0.5, false},
		{"padded", "  12.75 \r\n", 12.75, false},
		{"empty", "", 0, true},
		{"text", "N/A\n", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.out)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDuration() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}
