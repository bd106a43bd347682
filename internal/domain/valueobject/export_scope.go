package valueobject

// ExportScope selects which subset of transactions an export targets.
type ExportScope string

const (
	// ExportScopeAll exports the entire collection.
	ExportScopeAll ExportScope = "all"
	// ExportScopeFiltered exports the result of applying the FilterSpec.
	ExportScopeFiltered ExportScope = "filtered"
	// ExportScopeSelected exports the explicitly selected ids verbatim,
	// ignoring the FilterSpec entirely.
	ExportScopeSelected ExportScope = "selected"
)

// ParseExportScope normalizes a scope token; anything unrecognized or empty
// falls back to the filtered scope, the UI default.
func ParseExportScope(raw string) ExportScope {
	switch ExportScope(raw) {
	case ExportScopeAll, ExportScopeSelected:
		return ExportScope(raw)
	default:
		return ExportScopeFiltered
	}
}
