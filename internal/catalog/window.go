package catalog

import (
	"errors"
	"fmt"

	"github.com/seenimoa/finscope/pkg/models"
)

// ErrUndeclaredInput is raised (as a panic value) when a formula reads a line
// item it did not declare, or one that is not reported for the year read.
var ErrUndeclaredInput = errors.New("undeclared input")

// InputError carries the offending key of an ErrUndeclaredInput panic.
type InputError struct {
	Key  string
	Year int
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v: %s (year %d)", ErrUndeclaredInput, e.Key, e.Year)
}

func (e *InputError) Unwrap() error { return ErrUndeclaredInput }

// Period holds every line item reported for one fiscal year.
type Period struct {
	Year  int
	Items models.LineItems
}

// Window is the chronological slice of periods a formula sees. The last
// period is the year being evaluated.
type Window struct {
	periods  []Period
	declared map[string]struct{}
}

// NewWindow builds a window that only exposes the declared inputs.
func NewWindow(periods []Period, inputs []string) Window {
	declared := make(map[string]struct{}, len(inputs))
	for _, k := range inputs {
		declared[k] = struct{}{}
	}
	return Window{periods: periods, declared: declared}
}

// Len returns the number of years in the window.
func (w Window) Len() int { return len(w.periods) }

// Years returns the fiscal years of the window in order.
func (w Window) Years() []int {
	years := make([]int, len(w.periods))
	for i, p := range w.periods {
		years[i] = p.Year
	}
	return years
}

// At returns key for the i-th year of the window.
func (w Window) At(i int, key string) float64 {
	p := w.periods[i]
	if _, ok := w.declared[key]; !ok {
		panic(&InputError{Key: key, Year: p.Year})
	}
	v, ok := p.Items.Value(key)
	if !ok {
		panic(&InputError{Key: key, Year: p.Year})
	}
	return v
}

// Cur returns key for the evaluated (latest) year.
func (w Window) Cur(key string) float64 { return w.At(len(w.periods)-1, key) }

// Prev returns key for the year before the evaluated one.
func (w Window) Prev(key string) float64 { return w.At(len(w.periods)-2, key) }

// Series returns key for every year of the window.
func (w Window) Series(key string) []float64 {
	out := make([]float64, len(w.periods))
	for i := range w.periods {
		out[i] = w.At(i, key)
	}
	return out
}

// Span returns the number of years between the first and last period.
func (w Window) Span() float64 {
	if len(w.periods) == 0 {
		return 0
	}
	return float64(w.periods[len(w.periods)-1].Year - w.periods[0].Year)
}
