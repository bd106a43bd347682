package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocket-ledger/backend/internal/application/usecase/summary"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// SummaryController handles aggregate summary endpoints.
type SummaryController struct {
	getSummaryUseCase *summary.GetSummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(getSummaryUseCase *summary.GetSummaryUseCase) *SummaryController {
	return &SummaryController{
		getSummaryUseCase: getSummaryUseCase,
	}
}

// Get handles GET /summary requests.
func (c *SummaryController) Get(ctx *gin.Context) {
	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), summary.GetSummaryInput{
		Filter: filterFromQuery(ctx),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Summary))
}
