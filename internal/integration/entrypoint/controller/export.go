package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/export"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// ExportController handles transaction export endpoints.
type ExportController struct {
	exportUseCase *export.ExportTransactionsUseCase
}

// NewExportController creates a new export controller instance.
func NewExportController(exportUseCase *export.ExportTransactionsUseCase) *ExportController {
	return &ExportController{
		exportUseCase: exportUseCase,
	}
}

// Export handles POST /transactions/export requests. Download exports stream
// the payload as an attachment; other delivery methods report the outcome as
// JSON.
func (c *ExportController) Export(ctx *gin.Context) {
	var req dto.ExportTransactionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := export.ExportTransactionsInput{
		Scope:          valueobject.ParseExportScope(req.Scope),
		Format:         req.Format,
		DeliveryMethod: req.DeliveryMethod,
	}

	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start date format. Use YYYY-MM-DD",
			})
			return
		}
		input.Filter.StartDate = &startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date format. Use YYYY-MM-DD",
			})
			return
		}
		input.Filter.EndDate = &endDate
	}
	input.Filter.Category = req.Category
	input.Filter.Person = req.Person
	if req.Type != nil {
		txnType := entity.TransactionType(*req.Type)
		input.Filter.Type = &txnType
	}
	input.Filter.Search = req.Search

	for _, idStr := range req.SelectedIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid transaction ID format: " + idStr,
			})
			return
		}
		input.SelectedIDs = append(input.SelectedIDs, id)
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExportError(ctx, err)
		return
	}

	if output.Outcome.Method == export.DefaultDeliveryMethod &&
		output.Outcome.Status == adapter.DeliveryStatusDelivered {
		ctx.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
		ctx.Data(http.StatusOK, output.MimeType, output.Payload)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExportTransactionsResponse{
		Filename: output.Filename,
		Status:   string(output.Outcome.Status),
		Method:   output.Outcome.Method,
	})
}

// handleExportError maps export errors to HTTP responses.
func (c *ExportController) handleExportError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExportError
	if errors.As(err, &expErr) {
		ctx.JSON(c.getStatusCodeForExportError(expErr.Code), dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExportError maps export error codes to HTTP status codes.
func (c *ExportController) getStatusCodeForExportError(code domainerror.ExportErrorCode) int {
	switch code {
	case domainerror.ErrCodeUnsupportedFormat:
		return http.StatusBadRequest
	case domainerror.ErrCodeEmptyInput,
		domainerror.ErrCodeNothingToExport:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeDeliveryFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
