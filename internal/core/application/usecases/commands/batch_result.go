package commands

// ItemResult is the outcome of one item inside a batch operation: the item's
// identity plus either an error, a warning, or plain success.
type ItemResult struct {
	Code    string
	Err     error
	Warning string
}

// Succeeded reports whether the item completed, with or without a warning.
func (r ItemResult) Succeeded() bool {
	return r.Err == nil
}

// BatchResult aggregates the per-item outcomes of a batch operation. Batch
// commands never abort on the first bad item: each item is attempted and the
// caller folds over the results to present a summary.
type BatchResult struct {
	items []ItemResult
}

// Append records one item outcome.
func (b *BatchResult) Append(item ItemResult) {
	b.items = append(b.items, item)
}

// Items returns the per-item outcomes in processing order.
func (b *BatchResult) Items() []ItemResult {
	return b.items
}

// Fold reduces the result set with the given accumulator function, starting
// from the zero summary. Counting and partitioning are both folds.
func Fold[T any](b *BatchResult, zero T, accumulate func(T, ItemResult) T) T {
	acc := zero
	for _, item := range b.items {
		acc = accumulate(acc, item)
	}
	return acc
}

// Summary is the folded count view of a batch result.
type Summary struct {
	Succeeded int
	Failed    int
	Warnings  int
}

// Summarize folds the batch into success/failure/warning counts.
func (b *BatchResult) Summarize() Summary {
	return Fold(b, Summary{}, func(s Summary, item ItemResult) Summary {
		switch {
		case !item.Succeeded():
			s.Failed++
		case item.Warning != "":
			s.Succeeded++
			s.Warnings++
		default:
			s.Succeeded++
		}
		return s
	})
}

// Failures folds out the items that did not complete.
func (b *BatchResult) Failures() []ItemResult {
	return Fold(b, []ItemResult(nil), func(acc []ItemResult, item ItemResult) []ItemResult {
		if !item.Succeeded() {
			acc = append(acc, item)
		}
		return acc
	})
}

// AllFailed reports whether no item in a non-empty batch completed.
func (b *BatchResult) AllFailed() bool {
	return len(b.items) > 0 && b.Summarize().Succeeded == 0
}
