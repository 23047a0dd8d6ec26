package parameters

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"babel.openfisca.ca/internal/periods"
)

var (
	ErrUnknownParameter = errors.New("unknown parameter")
	ErrNoValueForPeriod = errors.New("parameter has no value for period")
)

// Names of the employment insurance parameters used by the maternity rules
const (
	MaternityPercentage      = "ei.maternity.percentage"
	MaternityMaxWeeklyAmount = "ei.maternity.max_weekly_amount"
)

// Table resolves a parameter's value in force for a period
type Table interface {
	Value(name string, at periods.Period) (float64, error)
}

// Entry is a parameter value in force from Start until the next entry's start.
// An eternity start means the value has always applied.
type Entry struct {
	Start periods.Period `json:"start"`
	Value float64        `json:"value"`
}

// MemoryTable is an in-memory Table of effective-dated values
type MemoryTable struct {
	mu      sync.RWMutex
	entries map[string][]Entry
}

func NewMemoryTable() *MemoryTable {
	return &MemoryTable{entries: make(map[string][]Entry)}
}

// Defaults returns a table holding the current maternity benefit rates
// as open-ended values.
func Defaults() *MemoryTable {
	table := NewMemoryTable()
	for name, value := range DefaultValues() {
		table.Set(name, periods.Eternity(), value)
	}
	return table
}

// DefaultValues lists the seed value of every known parameter
func DefaultValues() map[string]float64 {
	return map[string]float64{
		MaternityPercentage:      55,
		MaternityMaxWeeklyAmount: 595,
	}
}

// Set records a value in force from start. A value with the same start is replaced.
func (t *MemoryTable) Set(name string, start periods.Period, value float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries := t.entries[name]
	for i := range entries {
		if entries[i].Start.Equal(start) {
			entries[i].Value = value
			return
		}
	}

	entries = append(entries, Entry{Start: start, Value: value})
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Start.Before(entries[j].Start) })
	t.entries[name] = entries
}

// Value returns the latest entry starting no later than the period.
// Eternity queries get the most recent value.
func (t *MemoryTable) Value(name string, at periods.Period) (float64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entries, ok := t.entries[name]
	if !ok || len(entries) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnknownParameter, name)
	}

	if at.IsEternity() {
		return entries[len(entries)-1].Value, nil
	}

	for i := len(entries) - 1; i >= 0; i-- {
		if !at.Before(entries[i].Start) {
			return entries[i].Value, nil
		}
	}
	return 0, fmt.Errorf("%w: %s at %s", ErrNoValueForPeriod, name, at)
}

// Names returns the parameter names in sorted order
func (t *MemoryTable) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns a copy of the dated values of a parameter, oldest first
func (t *MemoryTable) Entries(name string) []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entries := make([]Entry, len(t.entries[name]))
	copy(entries, t.entries[name])
	return entries
}
