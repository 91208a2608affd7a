// Package pdf renders label print jobs into PDF artifacts using gofpdf.
//
// Page preparation (QR encoding and field resolution) fans out over a bounded
// worker group; page assembly stays sequential because the underlying PDF
// document is not safe for concurrent writes. Pages always come out in the
// job's original volume order regardless of preparation order.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/skip2/go-qrcode"
	"golang.org/x/sync/errgroup"

	"labeling/internal/core/domain/model/invoice"
	"labeling/internal/core/domain/model/render"
	"labeling/internal/core/domain/services"
	"labeling/internal/core/ports"
)

// defaultPrepWorkers bounds the concurrent page preparations when the caller
// does not choose a limit.
const defaultPrepWorkers = 4

// qrPixelSize is the encoded side length of the QR image. It is scaled down
// to the label's millimeter box at draw time, so it only needs to be large
// enough to stay sharp on a 203dpi thermal printer.
const qrPixelSize = 256

// Renderer implements ports.LabelRenderer on top of gofpdf.
type Renderer struct {
	resolver services.ClassificationResolver
	workers  int
	now      func() time.Time
	busy     atomic.Bool
}

// NewRenderer creates a PDF renderer with the given preparation concurrency.
// A non-positive workers value falls back to the default bound.
func NewRenderer(resolver services.ClassificationResolver, workers int) *Renderer {
	if workers <= 0 {
		workers = defaultPrepWorkers
	}

	return &Renderer{
		resolver: resolver,
		workers:  workers,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// preparedPage holds everything one label page needs, computed ahead of
// assembly so the sequential drawing loop does no work besides drawing.
type preparedPage struct {
	code          string
	invoiceNumber string
	sequenceLabel string
	fields        services.DisplayFields
	qr            []byte
}

// Render produces the job's PDF artifact: one page per volume, or a single
// consolidation page for a master-label job.
func (r *Renderer) Render(ctx context.Context, job render.Job, inv invoice.Invoice) (ports.Artifact, error) {
	if !r.busy.CompareAndSwap(false, true) {
		return ports.Artifact{}, ports.ErrRendererBusy
	}
	defer r.busy.Store(false)

	var pages []preparedPage
	var err error

	if job.IsMaster() {
		pages, err = r.prepareMasterPage(job)
	} else {
		pages, err = r.preparePages(ctx, job, inv)
	}
	if err != nil {
		return ports.Artifact{}, err
	}

	doc := newDocument(job.Format())
	for _, page := range pages {
		if job.IsMaster() {
			doc.addMasterPage(page, job)
		} else {
			doc.addLabelPage(page, job.Style())
		}
	}

	var buf bytes.Buffer
	if err := doc.output(&buf); err != nil {
		return ports.Artifact{}, fmt.Errorf("failed to encode label document: %w", err)
	}

	return ports.Artifact{
		Name:      job.ArtifactName(inv.AccessKey, r.now()),
		Content:   buf.Bytes(),
		PageCount: len(pages),
	}, nil
}

// preparePages resolves display fields and encodes QR images for every volume
// of the job. Preparation runs concurrently but each result lands at its
// volume's original index.
func (r *Renderer) preparePages(ctx context.Context, job render.Job, inv invoice.Invoice) ([]preparedPage, error) {
	volumes := job.Volumes()
	pages := make([]preparedPage, len(volumes))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, vol := range volumes {
		g.Go(func() error {
			qr, err := qrcode.Encode(vol.Code().String(), qrcode.Medium, qrPixelSize)
			if err != nil {
				return fmt.Errorf("failed to encode QR for %s: %w", vol.Code(), err)
			}

			pages[i] = preparedPage{
				code:          vol.Code().String(),
				invoiceNumber: vol.InvoiceNumber(),
				sequenceLabel: vol.SequenceLabel(),
				fields:        r.resolver.Resolve(vol, inv, job.Style()),
				qr:            qr,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return pages, nil
}

// prepareMasterPage builds the single page of a master-label job. The QR
// encodes the master code so a scan at the dock resolves the whole pallet.
func (r *Renderer) prepareMasterPage(job render.Job) ([]preparedPage, error) {
	master := job.Master()

	qr, err := qrcode.Encode(master.Code(), qrcode.Medium, qrPixelSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR for %s: %w", master.Code(), err)
	}

	return []preparedPage{{
		code: master.Code(),
		qr:   qr,
	}}, nil
}
