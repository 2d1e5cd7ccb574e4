package benchmark

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"xbench/internal/parser"
)

// Runner defines the interface for taking a benchmark run over an input.
type Runner interface {
	Run(parsers ...parser.Parser) (*Run, error)
}

// FileRunner implements Runner over a file read fully into memory before any
// timing starts, so I/O never leaks into the measured interval.
type FileRunner struct {
	Path string
}

func NewFileRunner(path string) *FileRunner {
	return &FileRunner{Path: path}
}

// Load reads the whole input file. A missing or unreadable file is an
// explicit error; it is never substituted with an empty buffer, since an
// empty-buffer timing reads like a valid sample but measures nothing.
func (r *FileRunner) Load() ([]byte, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", r.Path, err)
	}
	return data, nil
}

// Run loads the input once and takes one sample per backend.
func (r *FileRunner) Run(parsers ...parser.Parser) (*Run, error) {
	data, err := r.Load()
	if err != nil {
		return nil, err
	}

	run := &Run{
		ID:         uuid.NewString(),
		Timestamp:  time.Now(),
		Input:      r.Path,
		InputBytes: int64(len(data)),
	}
	for _, p := range parsers {
		run.Samples = append(run.Samples, Measure(p, data))
	}
	return run, nil
}

// Measure times exactly one Parse call. The buffer must already be in
// memory; nothing but the parse sits inside the timed window. The elapsed
// value is the raw monotonic nanosecond count, not normalized.
func Measure(p parser.Parser, data []byte) Sample {
	start := time.Now()
	err := p.Parse(data)
	elapsed := time.Since(start)

	s := Sample{
		Parser:    p.Name(),
		ElapsedNs: elapsed.Nanoseconds(),
		OK:        err == nil,
	}
	if err != nil {
		s.Diagnostic = err.Error()
	}
	return s
}
