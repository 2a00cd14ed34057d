package domain

// ExportEntry records one exported document.
type ExportEntry struct {
	Timestamp string `json:"timestamp"`
	Title     string `json:"title"`
	Path      string `json:"path"`
	Total     string `json:"total"`
	Items     int    `json:"items"`
}
