package dto

// ExportTransactionsRequest represents the request body for a transaction
// export. Filter fields only apply when scope is "filtered"; selected IDs
// only apply when scope is "selected".
type ExportTransactionsRequest struct {
	Scope          string   `json:"scope,omitempty" binding:"omitempty,oneof=all filtered selected"`
	Format         string   `json:"format" binding:"required"`
	DeliveryMethod string   `json:"delivery_method,omitempty"`
	StartDate      *string  `json:"start_date,omitempty"`
	EndDate        *string  `json:"end_date,omitempty"`
	Category       string   `json:"category,omitempty"`
	Person         string   `json:"person,omitempty"`
	Type           *string  `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Search         string   `json:"search,omitempty"`
	SelectedIDs    []string `json:"selected_ids,omitempty"`
}

// ExportTransactionsResponse reports a completed export for non-download
// delivery methods. Download exports stream the payload instead.
type ExportTransactionsResponse struct {
	Filename string `json:"filename"`
	Status   string `json:"status"`
	Method   string `json:"method"`
}
