package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hx_rating/caseio"
)

var caseFile = filepath.Join("caseio", "testdata", "water_air.toml")

// execute runs the root command with args after restoring every flag default.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, option := range options {
		for _, set := range option.flagsets {
			f := set.Lookup(option.name)
			require.NoError(t, f.Value.Set(f.DefValue))
			f.Changed = false
		}
	}
	var stdout, stderr bytes.Buffer
	Root.SetOut(&stdout)
	Root.SetErr(&stderr)
	Root.SetArgs(args)
	err := Root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "hx_rating v"+Version+"\n", out)
}

func TestRate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "rate.csv")
	_, logs, err := execute(t, "rate", "--config", caseFile, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, logs, "rated")
	assert.Contains(t, logs, " W\"")

	file, err := os.Open(out)
	require.NoError(t, err)
	defer file.Close()
	var rows []caseio.ResultRow
	require.NoError(t, gocsv.UnmarshalFile(file, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "water-air coil", rows[0].Case)
	assert.Equal(t, "counterflow", rows[0].FlowArrangement)
	assert.Greater(t, rows[0].Q, 0.0)
}

func TestRateRequiresConfig(t *testing.T) {
	_, _, err := execute(t, "rate")
	assert.ErrorContains(t, err, "--config")
}

func TestRateBadLogLevel(t *testing.T) {
	_, _, err := execute(t, "rate", "--config", caseFile, "--log", "loud")
	assert.Error(t, err)
}

func TestSweepSpan(t *testing.T) {
	out, _, err := execute(t, "sweep", "--config", caseFile,
		"--outside-min", "1", "--outside-max", "3", "--steps", "5", "--workers", "2")
	require.NoError(t, err)

	var rows []caseio.ResultRow
	require.NoError(t, gocsv.UnmarshalString(out, &rows))
	require.Len(t, rows, 5)
	for i, r := range rows {
		assert.Equal(t, i, r.Point)
		assert.InDelta(t, 1+0.5*float64(i), r.OutsideMassFlow, 1e-12)
	}
	assert.Less(t, rows[0].Q, rows[4].Q)
}

func TestSweepPoints(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sweep.csv")
	_, logs, err := execute(t, "sweep", "--config", caseFile,
		"--points", filepath.Join("caseio", "testdata", "points.csv"), "--out", out)
	require.NoError(t, err)
	assert.Contains(t, logs, "sweep finished")

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	var rows []caseio.ResultRow
	require.NoError(t, gocsv.UnmarshalBytes(b, &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, 360.0, rows[2].HotInlet)
}

func TestSweepInvalidSpan(t *testing.T) {
	_, _, err := execute(t, "sweep", "--config", caseFile)
	assert.Error(t, err)
}

func TestWatchCase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "case.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"a\"\n"), 0o644))

	log, _ := test.NewNullLogger()
	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchCase(ctx, path, log, func() error {
			calls.Add(1)
			return nil
		})
	}()

	require.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	// unrelated files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0o644))

	require.Eventually(t, func() bool {
		if err := os.WriteFile(path, []byte("name = \"b\"\n"), 0o644); err != nil {
			return false
		}
		return calls.Load() > 1
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestRateMoistAir(t *testing.T) {
	_, logs, err := execute(t, "rate", "--config", filepath.Join("caseio", "testdata", "water_moist_air.toml"), "--log", "debug")
	require.NoError(t, err)
	assert.Contains(t, logs, "moist air outlet")
	assert.Contains(t, logs, "outlet_dry_bulb")
	assert.Contains(t, logs, "rating details")
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger(&buf, "warn")
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown")
	assert.False(t, strings.Contains(buf.String(), "hidden"))
	assert.True(t, strings.Contains(buf.String(), "shown"))
}
