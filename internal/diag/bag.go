package diag

import (
	"sort"
)

type dedupKey struct {
	sev  Severity
	code Code
	lo   uint32
	hi   uint32
	msg  string
}

// Bag accumulates the diagnostics of one session. Emission deduplicates
// identical findings so one root cause does not flood the output, and
// issues an ErrorGuaranteed token for every error-severity diagnostic.
type Bag struct {
	items []Diagnostic
	seen  map[dedupKey]struct{}
	max   int
	// errors counts error-severity emissions, including ones dropped by
	// the max limit or deduplication.
	errors int
	// dropped counts emissions suppressed by deduplication or the max
	// limit, any severity.
	dropped int
}

func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Diagnostic, 0, min(max, 64)),
		seen:  make(map[dedupKey]struct{}),
		max:   max,
	}
}

// Emit records a diagnostic. The returned token is valid only when ok
// is true, which happens exactly for Severity >= Error; warnings and
// notes yield no proof. Duplicate (severity, code, span, message)
// emissions are suppressed after the first but still count as errors.
func (b *Bag) Emit(d Diagnostic) (ErrorGuaranteed, bool) {
	if d.IsError() {
		b.errors++
	}
	key := dedupKey{
		sev:  d.Severity,
		code: d.Code,
		lo:   uint32(d.Primary.Lo),
		hi:   uint32(d.Primary.Hi),
		msg:  d.Message,
	}
	if _, dup := b.seen[key]; !dup && len(b.items) < b.max {
		b.seen[key] = struct{}{}
		b.items = append(b.items, d)
	} else {
		b.dropped++
	}
	if d.IsError() {
		return guaranteed(), true
	}
	return ErrorGuaranteed{}, false
}

func (b *Bag) Cap() int {
	return b.max
}

// Dropped returns the number of emissions suppressed by deduplication
// or the bag limit.
func (b *Bag) Dropped() int {
	return b.dropped
}

// HasErrors reports whether any error-severity diagnostic was emitted.
func (b *Bag) HasErrors() bool {
	return b.errors > 0
}

// ErrorGuaranteed returns a proof token when at least one error was
// emitted through this bag.
func (b *Bag) ErrorGuaranteed() (ErrorGuaranteed, bool) {
	if b.errors > 0 {
		return guaranteed(), true
	}
	return ErrorGuaranteed{}, false
}

// ErrorCount returns the number of error emissions, duplicates included.
func (b *Bag) ErrorCount() int {
	return b.errors
}

func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity == SevWarning {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a read-only view of the recorded diagnostics. Do not
// modify the returned slice.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge folds the diagnostics of another bag into this one, growing the
// limit if needed. Dedup still applies.
func (b *Bag) Merge(other *Bag) {
	newTotal := len(b.items) + len(other.items)
	if newTotal > b.max {
		b.max = newTotal
	}
	for _, d := range other.items {
		b.Emit(d)
	}
	// errors already folded by Emit for recorded items; account for the
	// ones the other bag dropped, and carry its drop count.
	b.errors += other.errors - other.recordedErrors()
	b.dropped += other.dropped
}

func (b *Bag) recordedErrors() int {
	n := 0
	for i := range b.items {
		if b.items[i].IsError() {
			n++
		}
	}
	return n
}

// FilterMin returns a new bag holding only diagnostics at or above min
// severity. Error accounting carries over so proof tokens stay valid.
func (b *Bag) FilterMin(minSev Severity) *Bag {
	out := NewBag(b.max)
	for _, d := range b.items {
		if d.Severity >= minSev {
			out.Emit(d)
		}
	}
	// Preserve the emissions dropped by the limit or dedup in the source
	// bag; filtering itself is deliberate and not counted.
	out.errors = b.errors
	out.dropped = b.dropped
	return out
}

// Sort orders diagnostics by primary span (the global position space
// already orders files by insertion), then severity descending, then
// code, for deterministic output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.Lo != dj.Primary.Lo {
			return di.Primary.Lo < dj.Primary.Lo
		}
		if di.Primary.Hi != dj.Primary.Hi {
			return di.Primary.Hi < dj.Primary.Hi
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
