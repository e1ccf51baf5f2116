package main

import (
	"math"

	"github.com/pkg/errors"
)

// Interval is the half-open range [Low, High) and the number of values in it.
type Interval struct {
	Low   int
	High  int
	Count int
}

// Binning is an ordered run of contiguous equal-width intervals starting at
// the minimum of the binned sequence.
type Binning struct {
	Intervals []Interval
	Width     int
	Min       int
	Max       int
	// Dropped counts values at or past the upper bound of the last
	// interval, which truncating the width leaves uncovered.
	Dropped int
}

// optimalPartition is Sturges' rule, 1 + 3.322*log10(n), floored.
func optimalPartition(n int) int {
	if n < 1 {
		return 1
	}
	return int(1 + 3.322*math.Log10(float64(n)))
}

// binIntervals splits [min, max] of seq into partition intervals of width
// floor((max-min)/partition) and counts the values falling in each.
func binIntervals(seq []int, partition int) (*Binning, error) {
	if len(seq) == 0 {
		return nil, errors.Wrap(ErrEmptyPopulation, "binning")
	}
	if partition < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "partition %d", partition)
	}
	lo, hi := seq[0], seq[0]
	for _, v := range seq[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if span := uint64(hi) - uint64(lo); span > math.MaxInt {
		return nil, errors.Wrapf(ErrInvalidArgument, "range [%d, %d] overflows int", lo, hi)
	}
	width := (hi - lo) / partition
	if width == 0 {
		return nil, errors.Wrapf(ErrDegenerateRange, "range %d split into %d intervals", hi-lo, partition)
	}

	b := &Binning{
		Intervals: make([]Interval, partition),
		Width:     width,
		Min:       lo,
		Max:       hi,
	}
	for i := range b.Intervals {
		low := lo + i*width
		b.Intervals[i] = Interval{Low: low, High: low + width}
	}
	// Intervals are contiguous from lo, so the one admitting v is found by offset.
	for _, v := range seq {
		i := (v - lo) / width
		if i >= partition {
			b.Dropped++
			continue
		}
		b.Intervals[i].Count++
	}
	return b, nil
}

// Counted is the number of values assigned to some interval.
func (b *Binning) Counted() int {
	n := 0
	for _, iv := range b.Intervals {
		n += iv.Count
	}
	return n
}

// Range is the spread between the largest and smallest binned value.
func (b *Binning) Range() int {
	return b.Max - b.Min
}

// Lows returns the left edge of every interval, the bar positions.
func (b *Binning) Lows() []float64 {
	lows := make([]float64, len(b.Intervals))
	for i, iv := range b.Intervals {
		lows[i] = float64(iv.Low)
	}
	return lows
}

// Heights returns count/width per interval so that bar area tracks frequency.
func (b *Binning) Heights() []float64 {
	heights := make([]float64, len(b.Intervals))
	for i, iv := range b.Intervals {
		heights[i] = float64(iv.Count) / float64(b.Width)
	}
	return heights
}
