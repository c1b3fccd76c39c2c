package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/vector"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRunBothPolicies(t *testing.T) {
	out, err := execute(t, "--count", "10")
	require.NoError(t, err)

	assert.Contains(t, out, "## push (32-bit counters)")
	assert.Contains(t, out, "## emplace (32-bit counters)")
	assert.Contains(t, out, "push: 9 relocations, final capacity 10 (80 B), utilization 100.00%")
	assert.Contains(t, out, "emplace: 10 relocations, final capacity 10 (80 B), utilization 100.00%")
}

func TestRunGrowthFactor(t *testing.T) {
	out, err := execute(t, "-n", "9", "-p", "push", "-f", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "push: 5 relocations, final capacity 16 (128 B)")
	assert.NotContains(t, out, "emplace")
}

func TestRunOverflow(t *testing.T) {
	out, err := execute(t, "-n", "300", "-w", "8", "-p", "emplace")
	require.Error(t, err)
	assert.ErrorIs(t, err, vector.ErrOverflow)
	assert.Contains(t, err.Error(), "append 256")
	assert.Contains(t, out, "emplace: 255 relocations")
}

func TestRunInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"width", []string{"-w", "12"}, "unsupported counter width 12"},
		{"policy", []string{"-p", "double"}, `unknown policy "double"`},
		{"count", []string{"--count=-1"}, "count must not be negative"},
		{"positional", []string{"extra"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTraceRecordsRelocations(t *testing.T) {
	tr, err := runTrace[uint16]("push", &options{count: 10, width: 16, factor: vector.DefaultGrowthFactor})
	require.NoError(t, err)

	var caps []uint64
	for _, s := range tr.steps {
		assert.True(t, s.relocated)
		caps = append(caps, s.capacity)
	}
	assert.Equal(t, []uint64{1, 2, 3, 4, 5, 6, 7, 8, 10}, caps)

	all, err := runTrace[uint16]("push", &options{count: 10, width: 16, factor: vector.DefaultGrowthFactor, all: true})
	require.NoError(t, err)
	require.Len(t, all.steps, 10)
	assert.True(t, all.steps[8].relocated, "append 9 grows 8 to 10")
	assert.False(t, all.steps[9].relocated, "append 10 fits")
	assert.Equal(t, uint64(10), all.steps[9].capacity)
}

func TestRenderEmptyTrace(t *testing.T) {
	var buf bytes.Buffer
	tr, err := runTrace[uint32]("emplace", &options{count: 0, width: 32})
	require.NoError(t, err)
	require.NoError(t, tr.render(&buf))
	assert.True(t, strings.Contains(buf.String(), "emplace: 0 relocations"), buf.String())
}
