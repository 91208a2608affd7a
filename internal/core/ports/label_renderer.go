package ports

import (
	"context"
	"errors"

	"labeling/internal/core/domain/model/invoice"
	"labeling/internal/core/domain/model/render"
)

// ErrRendererBusy reports that a render batch is already in progress and the
// renderer refuses to interleave another one.
var ErrRendererBusy = errors.New("a label render batch is already in progress")

// Artifact is one rendered printable document.
type Artifact struct {
	// Name is the deterministic file name of the document.
	Name string

	// Content is the document's bytes.
	Content []byte

	// PageCount is the number of label pages in the document.
	PageCount int
}

// LabelRenderer turns a render job into a printable artifact. Implementations
// own page layout and encoding; the domain only decides what goes on the page.
type LabelRenderer interface {
	// Render produces one artifact for the whole job: one page per
	// volume, or a single page for a master-label job. The invoice
	// supplies fallback display data for the job's volumes.
	Render(ctx context.Context, job render.Job, inv invoice.Invoice) (Artifact, error)
}
