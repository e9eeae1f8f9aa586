package ui

import "hlh/internal/domain"

// Viewer displays collected test contents in an interactive TUI
type Viewer interface {
	View(contents *domain.TestContents) error
}
