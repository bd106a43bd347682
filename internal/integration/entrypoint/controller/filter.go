package controller

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// filterFromQuery builds a FilterSpec from the request query parameters.
// Unparsable dates are dropped rather than rejected; an absent constraint
// matches everything.
func filterFromQuery(ctx *gin.Context) valueobject.FilterSpec {
	var spec valueobject.FilterSpec

	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			spec.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			spec.EndDate = &endDate
		}
	}

	spec.Category = ctx.Query("category")
	spec.Person = ctx.Query("person")

	if typeStr := ctx.Query("type"); typeStr != "" {
		txnType := entity.TransactionType(typeStr)
		if txnType.IsValid() {
			spec.Type = &txnType
		}
	}

	spec.Search = ctx.Query("search")

	return spec
}
