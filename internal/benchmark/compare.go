package benchmark

import "fmt"

type Comparison struct {
	Parser      string
	ElapsedDiff float64 // Percentage change in elapsed ns
	Prev        Sample
	Curr        Sample
}

// Compare returns a comparison for every parser present in both runs,
// following the order of the current run's samples.
func Compare(prev, curr *Run) []Comparison {
	prevMap := make(map[string]Sample)
	for _, s := range prev.Samples {
		prevMap[s.Parser] = s
	}

	var comparisons []Comparison
	for _, c := range curr.Samples {
		p, ok := prevMap[c.Parser]
		if !ok {
			continue
		}
		comp := Comparison{
			Parser: c.Parser,
			Prev:   p,
			Curr:   c,
		}
		if p.ElapsedNs > 0 {
			comp.ElapsedDiff = float64(c.ElapsedNs-p.ElapsedNs) / float64(p.ElapsedNs) * 100
		}
		comparisons = append(comparisons, comp)
	}
	return comparisons
}

// Regression reports whether the comparison slowed down past the threshold
// percentage.
func (c Comparison) Regression(threshold float64) bool {
	return c.ElapsedDiff > threshold
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s: %+.2f%% elapsed", c.Parser, c.ElapsedDiff)
}
