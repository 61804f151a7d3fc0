package domain

// ExportKind tells which resource an ExportRow came from.
type ExportKind string

const (
	ExportActivity ExportKind = "activity"
	ExportLink     ExportKind = "link"
)

// ExportRow is a single row in the itinerary export.
// Detail is the RFC 3339 time of an activity or the URL of a link.
type ExportRow struct {
	Kind   ExportKind `json:"kind"`
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Detail string     `json:"detail"`
}
