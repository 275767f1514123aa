package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/wavshift/internal/config"
	"github.com/nguyentantai21042004/wavshift/internal/logger"
)

type fakeRunner struct {
	compressed []string
	reversed   []string
	amounts    []float64
	probeErr   error
	failOn     string
}

func (f *fakeRunner) Compress(ctx context.Context, input, output string, amount float64) error {
	if filepath.Base(input) == f.failOn {
		return errors.New("ffmpeg exploded")
	}
	f.compressed = append(f.compressed, input+"->"+output)
	f.amounts = append(f.amounts, amount)
	return nil
}

func (f *fakeRunner) Reverse(ctx context.Context, input, output string) error {
	f.reversed = append(f.reversed, input+"->"+output)
	return nil
}

func (f *fakeRunner) Duration(ctx context.Context, path string) (float64, error) {
	return 1.5, f.probeErr
}

func testConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.Paths.Output = filepath.Join(t.TempDir(), "out")
	return cfg
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestProcessCompress(t *testing.T) {
	cfg := testConfig(t)
	cfg.Job.Amount = 0.25
	runner := &fakeRunner{}
	p := New(cfg, runner, logger.NewNop())

	input := filepath.Join(t.TempDir(), "hello.wav")
	touch(t, input)

	if err := p.Process(context.Background(), input); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	want := input + "->" + filepath.Join(cfg.Paths.Output, "hello.wav")
	if len(runner.compressed) != 1 || runner.compressed[0] != want {
		t.Errorf("compressed = %v, want [%s]", runner.compressed, want)
	}
	if runner.amounts[0] != 0.25 {
		t.Errorf("amount = %v, want 0.25", runner.amounts[0])
	}
}

func TestProcessReverse(t *testing.T) {
	cfg := testConfig(t)
	cfg.Job.Operation = config.OperationReverse
	runner := &fakeRunner{}
	p := New(cfg, runner, logger.NewNop())

	if err := p.Process(context.Background(), "clip.wav"); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(runner.reversed) != 1 || len(runner.compressed) != 0 {
		t.Errorf("reversed = %v, compressed = %v", runner.reversed, runner.compressed)
	}
}

func TestProcessRemovesStaleOutput(t *testing.T) {
	cfg := testConfig(t)
	if err := os.MkdirAll(cfg.Paths.Output, 0755); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(cfg.Paths.Output, "hello.wav")
	touch(t, stale)

	p := New(cfg, &fakeRunner{}, logger.NewNop())
	if err := p.Process(context.Background(), "in/hello.wav"); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Errorf("stale output still present: %v", err)
	}
}

func TestProcessRefusesInPlace(t *testing.T) {
	cfg := testConfig(t)
	p := New(cfg, &fakeRunner{}, logger.NewNop())

	if err := p.Process(context.Background(), filepath.Join(cfg.Paths.Output, "x.wav")); err == nil {
		t.Error("Process() should refuse to overwrite its input")
	}
}

func TestProcessProbeFailureIsNotFatal(t *testing.T) {
	cfg := testConfig(t)
	runner := &fakeRunner{probeErr: errors.New("soxi missing")}
	p := New(cfg, runner, logger.NewNop())

	if err := p.Process(context.Background(), "hello.wav"); err != nil {
		t.Errorf("Process() error = %v, want nil", err)
	}
}

func TestProcessDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.wav", "a.wav", "readme.md"} {
		touch(t, filepath.Join(dir, name))
	}

	runner := &fakeRunner{}
	p := New(testConfig(t), runner, logger.NewNop())

	if err := p.ProcessDir(context.Background(), dir); err != nil {
		t.Fatalf("ProcessDir() error = %v", err)
	}
	if len(runner.compressed) != 2 {
		t.Fatalf("compressed %d files, want 2", len(runner.compressed))
	}
	if !strings.HasPrefix(runner.compressed[0], filepath.Join(dir, "a.wav")+"->") {
		t.Errorf("first processed = %s, want a.wav", runner.compressed[0])
	}
}

func TestProcessDirStopsOnFailure(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.wav", "b.wav", "c.wav"} {
		touch(t, filepath.Join(dir, name))
	}

	runner := &fakeRunner{failOn: "b.wav"}
	p := New(testConfig(t), runner, logger.NewNop())

	if err := p.ProcessDir(context.Background(), dir); err == nil {
		t.Fatal("ProcessDir() should return the first failure")
	}
	if len(runner.compressed) != 1 {
		t.Errorf("compressed %d files before failure, want 1", len(runner.compressed))
	}
}
