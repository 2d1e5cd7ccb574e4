package benchmark

import "time"

// Sample represents a single timed parse invocation.
type Sample struct {
	Parser     string `json:"parser"`
	ElapsedNs  int64  `json:"elapsed_ns"`
	OK         bool   `json:"ok"`
	Diagnostic string `json:"diagnostic,omitempty"`
}

// Run represents a collection of samples taken over one input buffer.
type Run struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Label      string    `json:"label,omitempty"`
	Input      string    `json:"input"`
	InputBytes int64     `json:"input_bytes"`
	Samples    []Sample  `json:"samples"`
}

// Sample returns the sample recorded for the named parser, if any.
func (r *Run) Sample(name string) (Sample, bool) {
	for _, s := range r.Samples {
		if s.Parser == name {
			return s, true
		}
	}
	return Sample{}, false
}
