package cli

import "github.com/charmbracelet/lipgloss"

// Library colour palette 📚
// Shared bookish theme colours for consistent branding across CLI and TUI
var (
	// Core palette (dark to bright)
	InkBlue   = lipgloss.Color("#2B4162") // Deep ink blue
	Burgundy  = lipgloss.Color("#7B2D26") // Worn leather
	Gold      = lipgloss.Color("#C9A227") // Gilt edges
	Parchment = lipgloss.Color("#F2E8D5") // Aged paper

	// Accent colours
	FadedSepia = lipgloss.Color("#8B7355") // Sepia for subtle text
)
