// Package staging holds freshly generated volumes before they are committed
// to durable storage. Generation is cheap and often speculative: an operator
// generates a batch, prints or adjusts it, and only then commits. The arena
// gives that window an explicit home instead of leaking it into the
// persistence layer.
package staging

import (
	"sort"
	"strings"
	"sync"
	"time"

	"labeling/internal/core/domain/model/invoice"
	"labeling/internal/core/domain/model/kernel"
	"labeling/internal/core/domain/model/volume"
)

// Entry is one staged volume together with the invoice it came from.
type Entry struct {
	Volume   *volume.Volume
	Invoice  invoice.Invoice
	StagedAt time.Time
}

// Arena is an in-memory staging area keyed by volume code. It is safe for
// concurrent use. Entries live until they are taken by a commit, dropped by
// a delete, or swept after their time-to-live expires.
type Arena struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewArena creates an empty staging arena.
func NewArena() *Arena {
	return &Arena{
		entries: make(map[string]Entry),
	}
}

// Put stages the given volumes under their codes, all sharing the same
// source invoice. Restaging a code replaces the previous entry.
func (a *Arena) Put(volumes []*volume.Volume, inv invoice.Invoice, stagedAt time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, v := range volumes {
		a.entries[v.Code().String()] = Entry{
			Volume:   v,
			Invoice:  inv,
			StagedAt: stagedAt,
		}
	}
}

// Get returns the staged entry for a code.
func (a *Arena) Get(code kernel.VolumeCode) (Entry, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	entry, ok := a.entries[code.String()]
	return entry, ok
}

// ByInvoice returns every staged entry for an invoice, ordered by the
// volume's sequence.
func (a *Arena) ByInvoice(invoiceNumber string) []Entry {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var entries []Entry
	for _, entry := range a.entries {
		if entry.Volume.InvoiceNumber() == invoiceNumber {
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Volume.Sequence() < entries[j].Volume.Sequence()
	})

	return entries
}

// Remove drops the entries for the given codes. Unknown codes are ignored.
func (a *Arena) Remove(codes ...kernel.VolumeCode) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, code := range codes {
		delete(a.entries, code.String())
	}
}

// RemoveInvoice drops every staged entry belonging to an invoice.
func (a *Arena) RemoveInvoice(invoiceNumber string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for code, entry := range a.entries {
		if entry.Volume.InvoiceNumber() == invoiceNumber {
			delete(a.entries, code)
		}
	}
}

// Sweep removes entries staged before the cutoff and reports how many were
// dropped. Called periodically so abandoned generations don't accumulate.
func (a *Arena) Sweep(cutoff time.Time) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	swept := 0
	for code, entry := range a.entries {
		if entry.StagedAt.Before(cutoff) {
			delete(a.entries, code)
			swept++
		}
	}

	return swept
}

// Len reports the number of staged entries.
func (a *Arena) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.entries)
}

// Codes returns the staged codes sorted lexically. Intended for diagnostics.
func (a *Arena) Codes() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	codes := make([]string, 0, len(a.entries))
	for code := range a.entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return codes
}

// String implements fmt.Stringer for log output.
func (a *Arena) String() string {
	return "staging arena [" + strings.Join(a.Codes(), ", ") + "]"
}
