// Package propcheck is a randomized invariant-checking harness adapted
// from the teacher's worker-pool/ticker/atomic-counter search
// infrastructure (pkg/search/worker.go) and mutex-guarded result
// aggregator (pkg/result/table.go), repurposed from searching for
// instruction-sequence replacements to fuzzing BFP operations and
// checking some of the testable properties spec.md §8 names (invariants
// 1, 2, 7, 8 and 9; the package tests exercise some of the others with
// fixed inputs).
//
// Every trial operates on vectors private to its own goroutine, so this
// package never needs the core arithmetic packages themselves to be
// concurrency-aware — it only exercises spec.md §5's promise that
// operations on disjoint vectors are safe to run in parallel.
package propcheck

import "sync"

// Violation records one randomized trial that failed an invariant.
type Violation struct {
	Invariant string
	Detail    string
}

// Table is a mutex-guarded, append-only collection of violations,
// mirroring result.Table's role as the aggregation point every worker
// goroutine reports into.
type Table struct {
	mu         sync.Mutex
	violations []Violation
}

// NewTable returns an empty violation table.
func NewTable() *Table {
	return &Table{}
}

// Add records a violation. Safe for concurrent use.
func (t *Table) Add(v Violation) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.violations = append(t.violations, v)
}

// Violations returns a copy of every recorded violation.
func (t *Table) Violations() []Violation {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Violation, len(t.violations))
	copy(out, t.violations)
	return out
}
