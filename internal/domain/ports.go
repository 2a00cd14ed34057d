package domain

import "time"

// Clock supplies the current time; the default invoice date comes from it.
type Clock interface {
	Now() time.Time
}

// IDGenerator hands out line item identifiers. Identifiers are never reused.
type IDGenerator interface {
	NewID() string
}

// Notifier delivers short user-facing messages. Delivery is fire-and-forget.
type Notifier interface {
	Success(message string)
	Warning(message string)
}

// Exporter turns a rendered document into a printable artifact.
// onComplete runs once the document has been handed off, whether the user
// kept or dismissed it. It does not run when PrintDocument returns an error.
type Exporter interface {
	PrintDocument(view DocumentView, title string, onComplete func()) error
}

// ViewportProbe reports whether the output is too narrow for the editor.
type ViewportProbe interface {
	IsCompact() bool
}

// ConfigLoader loads project configuration.
type ConfigLoader interface {
	Load(dir string) (ProjectConfig, error)
}

// ScriptLoader loads an edit script from a file.
type ScriptLoader interface {
	Load(path string) (*EditScript, error)
}

// ExportHistory keeps the log of exported documents for a directory.
type ExportHistory interface {
	Save(dir string, entry ExportEntry) error
	Load(dir string) ([]ExportEntry, error)
}
