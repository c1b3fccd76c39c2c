package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/pkg/errors"

	"github.com/pavanmanishd/vector"
)

// step is one append recorded in a trace.
type step struct {
	append    int
	length    uint64
	capacity  uint64
	bytes     uint64
	relocated bool
}

type trace struct {
	policy  string
	width   int
	steps   []step
	metrics vector.VectorMetrics
}

// runTrace appends opts.count elements with the named policy and records the
// appends that relocate the buffer (or all of them with opts.all). The partial
// trace is returned together with any append error.
func runTrace[S vector.Size](policy string, opts *options) (*trace, error) {
	v, err := vector.New[uint64, S](0, vector.WithGrowthFactor(opts.factor))
	if err != nil {
		return nil, err
	}
	defer v.Release()

	t := &trace{policy: policy, width: opts.width}
	for i := 0; i < opts.count; i++ {
		before := v.Reallocations()
		switch policy {
		case "push":
			_, err = v.Push(uint64(i))
		case "emplace":
			_, err = v.Emplace(uint64(i))
		}
		if err != nil {
			t.metrics = v.Metrics()
			return t, errors.Wrapf(err, "%s: append %d", policy, i+1)
		}

		relocated := v.Reallocations() != before
		if relocated || opts.all {
			t.steps = append(t.steps, step{
				append:    i + 1,
				length:    uint64(v.Len()),
				capacity:  uint64(v.Cap()),
				bytes:     v.CapacityBytes(),
				relocated: relocated,
			})
		}
	}
	t.metrics = v.Metrics()
	return t, nil
}

func (t *trace) render(w io.Writer) error {
	fmt.Fprintf(w, "## %s (%d-bit counters)\n\n", t.policy, t.width)

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Append", "Len", "Cap", "Buffer", "Relocated"})

	rows := make([][]string, 0, len(t.steps))
	for _, s := range t.steps {
		relocated := ""
		if s.relocated {
			relocated = "yes"
		}
		rows = append(rows, []string{
			strconv.Itoa(s.append),
			strconv.FormatUint(s.length, 10),
			strconv.FormatUint(s.capacity, 10),
			humanize.IBytes(s.bytes),
			relocated,
		})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s: %d relocations, final capacity %d (%s), utilization %.2f%%\n",
		t.policy, t.metrics.Reallocations, t.metrics.Cap,
		humanize.IBytes(t.metrics.CapacityBytes), t.metrics.Utilization*100)
	return nil
}
