// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pattern

import (
	"fmt"
	"math"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/gogpu/lcd"
)

// Sampler returns a reading in percent, 0 to 100.
type Sampler func() (float64, error)

// CPUPercent samples total CPU usage since the previous call.
func CPUPercent() (float64, error) {
	p, err := cpu.Percent(0, false)
	if err != nil {
		return 0, fmt.Errorf("pattern: cpu usage: %w", err)
	}
	if len(p) == 0 {
		return 0, nil
	}
	return p[0], nil
}

// MemPercent samples the share of physical memory in use.
func MemPercent() (float64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, fmt.Errorf("pattern: memory usage: %w", err)
	}
	return vm.UsedPercent, nil
}

// Graph is a scrolling bar chart of a sampled percentage. The newest sample
// is the rightmost column; each column is filled from the bottom.
type Graph struct {
	rows, cols int
	sample     Sampler
	history    []float64
}

// NewGraph returns a graph fed by sample.
func NewGraph(rows, cols int, sample Sampler) (*Graph, error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}
	if sample == nil {
		return nil, fmt.Errorf("pattern: nil sampler")
	}
	return &Graph{
		rows:    rows,
		cols:    cols,
		sample:  sample,
		history: make([]float64, 0, cols),
	}, nil
}

// Next implements Source. It takes one sample and redraws the chart.
func (g *Graph) Next() (*lcd.Bitmap, error) {
	v, err := g.sample()
	if err != nil {
		return nil, err
	}
	g.push(v)

	bm := lcd.NewBitmap(g.rows, g.cols)
	start := g.cols - len(g.history)
	for i, v := range g.history {
		h := barHeight(v, g.rows)
		for r := g.rows - h; r < g.rows; r++ {
			bm.Set(r, start+i, true)
		}
	}
	return bm, nil
}

// Shape implements Source.
func (g *Graph) Shape() (rows, cols int) { return g.rows, g.cols }

// History returns the samples shown, oldest first.
func (g *Graph) History() []float64 {
	out := make([]float64, len(g.history))
	copy(out, g.history)
	return out
}

func (g *Graph) push(v float64) {
	if len(g.history) == g.cols {
		copy(g.history, g.history[1:])
		g.history = g.history[:g.cols-1]
	}
	g.history = append(g.history, v)
}

// barHeight maps a percentage to a number of lit rows.
func barHeight(v float64, rows int) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 100 {
		return rows
	}
	return int(math.Round(v / 100 * float64(rows)))
}
