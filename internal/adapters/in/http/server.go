// Package http exposes the labeling engine over a JSON API. Handlers stay
// thin: they bind the request, build the command or query, delegate to the
// application layer, and translate typed domain errors into status codes.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"labeling/internal/core/application/usecases/commands"
	"labeling/internal/core/application/usecases/queries"
	"labeling/internal/core/domain/model/invoice"
	"labeling/internal/core/domain/model/masterlabel"
	"labeling/internal/core/domain/model/volume"
	"labeling/internal/core/domain/services"
	"labeling/internal/core/ports"
	"labeling/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	generateVolumesHandler  commands.GenerateVolumesCommandHandler
	commitVolumesHandler    commands.CommitVolumesCommandHandler
	printLabelsHandler      commands.PrintLabelsCommandHandler
	reprintLabelHandler     commands.ReprintLabelCommandHandler
	invalidateLabelHandler  commands.InvalidateLabelCommandHandler
	deleteLabelHandler      commands.DeleteLabelCommandHandler
	classifyVolumeHandler   commands.ClassifyVolumeCommandHandler
	createMasterHandler     commands.CreateMasterLabelCommandHandler
	deleteMasterHandler     commands.DeleteMasterLabelCommandHandler
	invalidateMasterHandler commands.InvalidateMasterLabelCommandHandler
	linkVolumesHandler      commands.LinkVolumesCommandHandler
	unlinkVolumesHandler    commands.UnlinkVolumesCommandHandler
	printMasterLabelHandler commands.PrintMasterLabelCommandHandler

	// Query handlers
	getLabelsByInvoiceHandler queries.GetLabelsByInvoiceQueryHandler
	getLabelByCodeHandler     queries.GetLabelByCodeQueryHandler
	getMasterLabelsHandler    queries.GetMasterLabelsQueryHandler

	// defaultFormat is the physical format key used when a print request
	// names none.
	defaultFormat string
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	generateVolumesHandler commands.GenerateVolumesCommandHandler,
	commitVolumesHandler commands.CommitVolumesCommandHandler,
	printLabelsHandler commands.PrintLabelsCommandHandler,
	reprintLabelHandler commands.ReprintLabelCommandHandler,
	invalidateLabelHandler commands.InvalidateLabelCommandHandler,
	deleteLabelHandler commands.DeleteLabelCommandHandler,
	classifyVolumeHandler commands.ClassifyVolumeCommandHandler,
	createMasterHandler commands.CreateMasterLabelCommandHandler,
	deleteMasterHandler commands.DeleteMasterLabelCommandHandler,
	invalidateMasterHandler commands.InvalidateMasterLabelCommandHandler,
	linkVolumesHandler commands.LinkVolumesCommandHandler,
	unlinkVolumesHandler commands.UnlinkVolumesCommandHandler,
	printMasterLabelHandler commands.PrintMasterLabelCommandHandler,
	getLabelsByInvoiceHandler queries.GetLabelsByInvoiceQueryHandler,
	getLabelByCodeHandler queries.GetLabelByCodeQueryHandler,
	getMasterLabelsHandler queries.GetMasterLabelsQueryHandler,
	defaultFormat string,
) *Server {
	return &Server{
		generateVolumesHandler:    generateVolumesHandler,
		commitVolumesHandler:      commitVolumesHandler,
		printLabelsHandler:        printLabelsHandler,
		reprintLabelHandler:       reprintLabelHandler,
		invalidateLabelHandler:    invalidateLabelHandler,
		deleteLabelHandler:        deleteLabelHandler,
		classifyVolumeHandler:     classifyVolumeHandler,
		createMasterHandler:       createMasterHandler,
		deleteMasterHandler:       deleteMasterHandler,
		invalidateMasterHandler:   invalidateMasterHandler,
		linkVolumesHandler:        linkVolumesHandler,
		unlinkVolumesHandler:      unlinkVolumesHandler,
		printMasterLabelHandler:   printMasterLabelHandler,
		getLabelsByInvoiceHandler: getLabelsByInvoiceHandler,
		getLabelByCodeHandler:     getLabelByCodeHandler,
		getMasterLabelsHandler:    getMasterLabelsHandler,
		defaultFormat:             defaultFormat,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/labels/generate", s.GenerateVolumes)
	api.POST("/labels/commit", s.CommitVolumes)
	api.POST("/labels/print", s.PrintLabels)
	api.POST("/labels/:code/reprint", s.ReprintLabel)
	api.POST("/labels/:code/invalidate", s.InvalidateLabel)
	api.POST("/labels/:code/classify", s.ClassifyVolume)
	api.DELETE("/labels/:code", s.DeleteLabel)
	api.GET("/labels/:code", s.GetLabelByCode)

	api.GET("/invoices/:number/labels", s.GetLabelsByInvoice)

	api.POST("/master-labels", s.CreateMasterLabel)
	api.GET("/master-labels", s.GetMasterLabels)
	api.DELETE("/master-labels/:code", s.DeleteMasterLabel)
	api.POST("/master-labels/:code/invalidate", s.InvalidateMasterLabel)
	api.POST("/master-labels/:code/link", s.LinkVolumes)
	api.POST("/master-labels/:code/unlink", s.UnlinkVolumes)
	api.POST("/master-labels/:code/print", s.PrintMasterLabel)
}

// Error is the uniform error body of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// InvoiceRequest carries the invoice snapshot volumes are generated from.
// The count and weight arrive exactly as the operator typed them.
type InvoiceRequest struct {
	Number      string `json:"number"`
	AccessKey   string `json:"accessKey"`
	OrderNumber string `json:"orderNumber"`
	VolumeCount int    `json:"volumeCount"`
	GrossWeight string `json:"grossWeight"`
	Sender      string `json:"sender"`
	Recipient   string `json:"recipient"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Carrier     string `json:"carrier"`
	UNNumber    string `json:"unNumber"`
	RiskCode    string `json:"riskCode"`
	HazardClass string `json:"hazardClass"`
}

func (r InvoiceRequest) toInvoice() invoice.Invoice {
	return invoice.Invoice{
		Number:              r.Number,
		AccessKey:           r.AccessKey,
		OrderNumber:         r.OrderNumber,
		DeclaredVolumeCount: r.VolumeCount,
		DeclaredGrossWeight: r.GrossWeight,
		Sender:              r.Sender,
		Recipient:           r.Recipient,
		Address:             r.Address,
		City:                r.City,
		State:               r.State,
		Carrier:             r.Carrier,
		UNNumber:            r.UNNumber,
		RiskCode:            r.RiskCode,
		HazardClass:         r.HazardClass,
	}
}

// StagedVolume is the response view of one freshly generated volume.
type StagedVolume struct {
	Code          string `json:"code"`
	Sequence      int    `json:"sequence"`
	TotalVolumes  int    `json:"totalVolumes"`
	SequenceLabel string `json:"sequenceLabel"`
	WeightKg      string `json:"weightKg"`
	Status        string `json:"status"`
}

// BatchItem is the response view of one item of a batch outcome.
type BatchItem struct {
	Code    string `json:"code"`
	Ok      bool   `json:"ok"`
	Warning string `json:"warning,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BatchResponse folds a batch result into counts plus per-item outcomes.
type BatchResponse struct {
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
	Warnings  int         `json:"warnings"`
	Items     []BatchItem `json:"items"`
}

func newBatchResponse(result *commands.BatchResult) BatchResponse {
	summary := result.Summarize()
	response := BatchResponse{
		Succeeded: summary.Succeeded,
		Failed:    summary.Failed,
		Warnings:  summary.Warnings,
		Items:     make([]BatchItem, 0, len(result.Items())),
	}

	for _, item := range result.Items() {
		view := BatchItem{
			Code:    item.Code,
			Ok:      item.Succeeded(),
			Warning: item.Warning,
		}
		if item.Err != nil {
			view.Error = item.Err.Error()
		}
		response.Items = append(response.Items, view)
	}

	return response
}

// GenerateVolumes handles POST /api/v1/labels/generate - decomposes an
// invoice into staged volumes. Regenerating replaces the invoice's previous
// staged batch.
func (s *Server) GenerateVolumes(ctx echo.Context) error {
	var request InvoiceRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewGenerateVolumesCommand(request.toInvoice())
	if err != nil {
		return badRequest(ctx, "Invalid invoice data: "+err.Error())
	}

	volumes, err := s.generateVolumesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]StagedVolume, len(volumes))
	for i, v := range volumes {
		response[i] = StagedVolume{
			Code:          v.Code().String(),
			Sequence:      v.Sequence(),
			TotalVolumes:  v.TotalVolumes(),
			SequenceLabel: v.SequenceLabel(),
			WeightKg:      v.Weight().String(),
			Status:        v.Status().String(),
		}
	}

	return ctx.JSON(http.StatusCreated, response)
}

// CommitVolumes handles POST /api/v1/labels/commit - persists an invoice's
// staged volumes. Items that fail stay staged, so the call can be retried.
func (s *Server) CommitVolumes(ctx echo.Context) error {
	var request struct {
		InvoiceNumber string `json:"invoiceNumber"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCommitVolumesCommand(request.InvoiceNumber)
	if err != nil {
		return badRequest(ctx, "Invalid commit request: "+err.Error())
	}

	result, err := s.commitVolumesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := newBatchResponse(result)
	if response.Succeeded == 0 {
		return ctx.JSON(http.StatusConflict, response)
	}

	return ctx.JSON(http.StatusOK, response)
}

// PrintLabels handles POST /api/v1/labels/print - renders a batch of labels
// into one PDF. Responds with the document when at least one label printed,
// with the batch outcome otherwise.
func (s *Server) PrintLabels(ctx echo.Context) error {
	var request struct {
		Codes  []string `json:"codes"`
		Format string   `json:"format"`
		Style  string   `json:"style"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPrintLabelsCommand(request.Codes, s.formatOrDefault(request.Format), request.Style)
	if err != nil {
		return badRequest(ctx, "Invalid print request: "+err.Error())
	}

	printed, err := s.printLabelsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return writePrinted(ctx, printed)
}

// ReprintLabel handles POST /api/v1/labels/:code/reprint - produces a
// duplicate copy of one already printed label.
func (s *Server) ReprintLabel(ctx echo.Context) error {
	var request struct {
		Format string `json:"format"`
		Style  string `json:"style"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReprintLabelCommand(ctx.Param("code"), s.formatOrDefault(request.Format), request.Style)
	if err != nil {
		return badRequest(ctx, "Invalid reprint request: "+err.Error())
	}

	printed, err := s.reprintLabelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return writePrinted(ctx, printed)
}

// InvalidateLabel handles POST /api/v1/labels/:code/invalidate - withdraws a
// label with a mandatory justification.
func (s *Server) InvalidateLabel(ctx echo.Context) error {
	var request struct {
		Reason string `json:"reason"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewInvalidateLabelCommand(ctx.Param("code"), request.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid invalidation request: "+err.Error())
	}

	if err := s.invalidateLabelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClassifyVolume handles POST /api/v1/labels/:code/classify - applies a
// dangerous-goods classification to one volume.
func (s *Server) ClassifyVolume(ctx echo.Context) error {
	var request struct {
		UNNumber    string `json:"unNumber"`
		RiskCode    string `json:"riskCode"`
		HazardClass string `json:"hazardClass"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewClassifyVolumeCommand(
		ctx.Param("code"), request.UNNumber, request.RiskCode, request.HazardClass)
	if err != nil {
		return badRequest(ctx, "Invalid classification request: "+err.Error())
	}

	if err := s.classifyVolumeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteLabel handles DELETE /api/v1/labels/:code - removes a label that was
// never printed. Printed labels must be invalidated instead.
func (s *Server) DeleteLabel(ctx echo.Context) error {
	cmd, err := commands.NewDeleteLabelCommand(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid delete request: "+err.Error())
	}

	if err := s.deleteLabelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetLabelByCode handles GET /api/v1/labels/:code.
func (s *Server) GetLabelByCode(ctx echo.Context) error {
	query, err := queries.NewGetLabelByCodeQuery(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid label code: "+err.Error())
	}

	label, err := s.getLabelByCodeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, label)
}

// GetLabelsByInvoice handles GET /api/v1/invoices/:number/labels.
func (s *Server) GetLabelsByInvoice(ctx echo.Context) error {
	query, err := queries.NewGetLabelsByInvoiceQuery(ctx.Param("number"))
	if err != nil {
		return badRequest(ctx, "Invalid invoice number: "+err.Error())
	}

	labels, err := s.getLabelsByInvoiceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, labels)
}

// CreateMasterLabel handles POST /api/v1/master-labels - creates an empty
// consolidation unit.
func (s *Server) CreateMasterLabel(ctx echo.Context) error {
	var request struct {
		Kind        string `json:"kind"`
		Description string `json:"description"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateMasterLabelCommand(request.Kind, request.Description)
	if err != nil {
		return badRequest(ctx, "Invalid master label data: "+err.Error())
	}

	master, err := s.createMasterHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"code":        master.Code(),
		"kind":        master.Kind().Storage(),
		"description": master.Description(),
		"status":      master.Status().String(),
	})
}

// GetMasterLabels handles GET /api/v1/master-labels.
func (s *Server) GetMasterLabels(ctx echo.Context) error {
	masters, err := s.getMasterLabelsHandler.Handle(ctx.Request().Context(), queries.NewGetMasterLabelsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, masters)
}

// DeleteMasterLabel handles DELETE /api/v1/master-labels/:code - removes an
// empty consolidation unit. A master label still holding volumes is refused;
// its volumes must be unlinked first.
func (s *Server) DeleteMasterLabel(ctx echo.Context) error {
	cmd, err := commands.NewDeleteMasterLabelCommand(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid delete request: "+err.Error())
	}

	if err := s.deleteMasterHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// InvalidateMasterLabel handles POST /api/v1/master-labels/:code/invalidate -
// withdraws a master label with a mandatory justification.
func (s *Server) InvalidateMasterLabel(ctx echo.Context) error {
	var request struct {
		Reason string `json:"reason"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewInvalidateMasterLabelCommand(ctx.Param("code"), request.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid invalidation request: "+err.Error())
	}

	if err := s.invalidateMasterHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// LinkVolumes handles POST /api/v1/master-labels/:code/link - consolidates
// volumes under a master label. The operation is all-or-nothing: one
// ineligible volume rejects the whole request.
func (s *Server) LinkVolumes(ctx echo.Context) error {
	var request struct {
		Codes []string `json:"codes"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLinkVolumesCommand(ctx.Param("code"), request.Codes)
	if err != nil {
		return badRequest(ctx, "Invalid link request: "+err.Error())
	}

	if err := s.linkVolumesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnlinkVolumes handles POST /api/v1/master-labels/:code/unlink - releases
// volumes from a master label back to their previous lifecycle state.
func (s *Server) UnlinkVolumes(ctx echo.Context) error {
	var request struct {
		Codes []string `json:"codes"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUnlinkVolumesCommand(ctx.Param("code"), request.Codes)
	if err != nil {
		return badRequest(ctx, "Invalid unlink request: "+err.Error())
	}

	if err := s.unlinkVolumesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PrintMasterLabel handles POST /api/v1/master-labels/:code/print.
func (s *Server) PrintMasterLabel(ctx echo.Context) error {
	var request struct {
		Format string `json:"format"`
		Style  string `json:"style"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPrintMasterLabelCommand(ctx.Param("code"), s.formatOrDefault(request.Format), request.Style)
	if err != nil {
		return badRequest(ctx, "Invalid print request: "+err.Error())
	}

	printed, err := s.printMasterLabelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return writePrinted(ctx, printed)
}

// formatOrDefault substitutes the configured format key when a print request
// names none. An empty configured key still resolves through the format set's
// own fallback.
func (s *Server) formatOrDefault(format string) string {
	if format == "" {
		return s.defaultFormat
	}
	return format
}

// writePrinted sends the rendered PDF when at least one label made it onto a
// page, or the batch outcome when nothing was printable. Batch counts travel
// in headers so PDF consumers still see partial failures.
func writePrinted(ctx echo.Context, printed commands.PrintedLabels) error {
	if len(printed.Artifact.Content) == 0 {
		return ctx.JSON(http.StatusConflict, newBatchResponse(printed.Result))
	}

	summary := printed.Result.Summarize()
	header := ctx.Response().Header()
	header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", printed.Artifact.Name))
	header.Set("X-Labels-Succeeded", strconv.Itoa(summary.Succeeded))
	header.Set("X-Labels-Failed", strconv.Itoa(summary.Failed))
	header.Set("X-Labels-Warnings", strconv.Itoa(summary.Warnings))

	return ctx.Blob(http.StatusOK, "application/pdf", printed.Artifact.Content)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps errors coming out of the application layer onto statuses:
// lookups that missed are 404, validation failures 400, lifecycle and
// consolidation conflicts 409, everything else 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	var linkErr *services.LinkError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.As(err, &linkErr),
		errors.Is(err, volume.ErrLabelAlreadyInvalidated),
		errors.Is(err, volume.ErrCannotDeletePrintedLabel),
		errors.Is(err, volume.ErrVolumeAlreadyConsolidated),
		errors.Is(err, masterlabel.ErrMasterLabelIsTerminal),
		errors.Is(err, masterlabel.ErrMasterLabelStillHoldsVolumes),
		errors.Is(err, masterlabel.ErrVolumeNotLinked),
		errors.Is(err, ports.ErrRendererBusy):
		status = http.StatusConflict
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
