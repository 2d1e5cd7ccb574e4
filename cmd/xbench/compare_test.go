package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xbench/internal/benchmark"
)

func seedHistory(t *testing.T, runs ...benchmark.Run) {
	t.Helper()
	store, err := benchmark.NewFileStore(viper.GetString("history.path"))
	require.NoError(t, err)
	for _, r := range runs {
		require.NoError(t, store.Save(r))
	}
}

func TestCompareCmdNotEnoughRuns(t *testing.T) {
	setupTestEnv(t)
	seedHistory(t, benchmark.Run{ID: "only", Timestamp: time.Now()})

	cmd := NewCompareCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least two saved runs")
}

func TestCompareCmdLatestTwo(t *testing.T) {
	setupTestEnv(t)
	seedHistory(t,
		benchmark.Run{
			ID: "prev", Timestamp: time.Now().Add(-time.Hour),
			Samples: []benchmark.Sample{{Parser: "dom", ElapsedNs: 1000, OK: true}},
		},
		benchmark.Run{
			ID: "curr", Timestamp: time.Now(),
			Samples: []benchmark.Sample{{Parser: "dom", ElapsedNs: 1500, OK: true}},
		},
	)

	cmd := NewCompareCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "dom")
	assert.Contains(t, out.String(), "+50.00%")
	assert.Contains(t, out.String(), "REGRESS")
}

func TestCompareCmdFailOnRegress(t *testing.T) {
	setupTestEnv(t)
	seedHistory(t,
		benchmark.Run{
			ID: "prev", Timestamp: time.Now().Add(-time.Hour),
			Samples: []benchmark.Sample{{Parser: "dom", ElapsedNs: 1000, OK: true}},
		},
		benchmark.Run{
			ID: "curr", Timestamp: time.Now(),
			Samples: []benchmark.Sample{{Parser: "dom", ElapsedNs: 2000, OK: true}},
		},
	)

	cmd := NewCompareCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--fail-on-regress"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "performance regression")
}

func TestCompareCmdThresholdFlag(t *testing.T) {
	setupTestEnv(t)
	seedHistory(t,
		benchmark.Run{
			ID: "prev", Timestamp: time.Now().Add(-time.Hour),
			Samples: []benchmark.Sample{{Parser: "dom", ElapsedNs: 1000, OK: true}},
		},
		benchmark.Run{
			ID: "curr", Timestamp: time.Now(),
			Samples: []benchmark.Sample{{Parser: "dom", ElapsedNs: 1200, OK: true}},
		},
	)

	// 20% change passes with a 50% threshold.
	cmd := NewCompareCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--threshold", "50", "--fail-on-regress"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "PASS")
}

func TestCompareCmdThresholdZeroFromConfig(t *testing.T) {
	setupTestEnv(t)
	viper.Set("threshold", 0.0)
	seedHistory(t,
		benchmark.Run{
			ID: "prev", Timestamp: time.Now().Add(-time.Hour),
			Samples: []benchmark.Sample{{Parser: "dom", ElapsedNs: 1000, OK: true}},
		},
		benchmark.Run{
			ID: "curr", Timestamp: time.Now(),
			Samples: []benchmark.Sample{{Parser: "dom", ElapsedNs: 1050, OK: true}},
		},
	)

	// With a configured zero threshold, any slowdown is a regression; the
	// flag default must not override the explicit config value.
	cmd := NewCompareCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--fail-on-regress"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "performance regression")
	assert.Contains(t, out.String(), "REGRESS")
}

func TestCompareCmdAgainst(t *testing.T) {
	setupTestEnv(t)
	seedHistory(t,
		benchmark.Run{
			ID: "base", Timestamp: time.Now().Add(-2 * time.Hour),
			Samples: []benchmark.Sample{{Parser: "dom", ElapsedNs: 1000, OK: true}},
		},
		benchmark.Run{
			ID: "mid", Timestamp: time.Now().Add(-time.Hour),
			Samples: []benchmark.Sample{{Parser: "dom", ElapsedNs: 5000, OK: true}},
		},
		benchmark.Run{
			ID: "curr", Timestamp: time.Now(),
			Samples: []benchmark.Sample{{Parser: "dom", ElapsedNs: 1100, OK: true}},
		},
	)

	cmd := NewCompareCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--against", "base"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "+10.00%")

	cmd = NewCompareCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--against", "nope"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in history")
}
