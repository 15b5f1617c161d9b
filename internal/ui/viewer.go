package ui

import "apiprobe/internal/domain"

// Viewer displays probe failures in an interactive TUI
type Viewer interface {
	View(report *domain.RunReport) error
}
