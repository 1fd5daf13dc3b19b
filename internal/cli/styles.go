package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Color palette
var (
	primaryColor   = lipgloss.Color("#7B2D26") // Bookmosaic burgundy
	accentColor    = lipgloss.Color("#C9A227") // Gold
	successColor   = lipgloss.Color("#00AA00") // Green
	mutedColor     = lipgloss.Color("#888888") // Gray
	highlightColor = lipgloss.Color("#E8C547") // Bright gold
	textColor      = lipgloss.Color("#FFFFFF") // White
)

// Styles
var (
	// Title style - bold burgundy with palette emoji
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// Subtitle style - muted gray
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	// Section header style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginTop(1).
			MarginBottom(1)

	// Success message style
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// Highlight style for important values
	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlightColor)

	// Key-value pair styles
	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	// Registry item style for --list output
	ItemStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	// Box style for framed content
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2).
			MarginTop(1).
			MarginBottom(1)
)

// PrintBanner prints the application banner
func PrintBanner() {
	banner := TitleStyle.Render("Bookmosaic 📚")
	subtitle := SubtitleStyle.Render("Paint any book into a PNG mosaic, one pixel per word, coloured by the text's own statistics.")
	fmt.Println(banner)
	fmt.Println(subtitle)
	fmt.Println()
}

// PrintVersion prints version information
func PrintVersion(version string) {
	fmt.Println(TitleStyle.Render("Bookmosaic 📚"))
	fmt.Printf("%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
	fmt.Println()
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Printf("%s %s\n", HighlightStyle.Render("Warning:"), message)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", SuccessStyle.Render("✓"), message)
}

// PrintInfo prints an informational message
func PrintInfo(key, value string) {
	fmt.Printf("%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// PrintSection prints a section header
func PrintSection(title string) {
	fmt.Println(HeaderStyle.Render(title))
}

// PrintItem prints one registry entry for --list output
func PrintItem(name, description string) {
	fmt.Printf("  %s %s\n", ItemStyle.Render(fmt.Sprintf("%-20s", name)), KeyStyle.Render(description))
}

// FormatDuration formats a duration nicely
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", d.Seconds()*1000)
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// FormatCount formats a count with thousands separators
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatBytes formats bytes into human-readable format
func FormatBytes(bytes int64) string {
	return humanize.Bytes(uint64(bytes))
}

// PrintBox prints content in a styled box
func PrintBox(content string) {
	fmt.Println(BoxStyle.Render(content))
}

// PrintRenderSummary prints a completion summary in a box
func PrintRenderSummary(words, distinct, canvas, output, size, elapsed string) {
	var b strings.Builder

	b.WriteString(SuccessStyle.Render("✓ Mosaic Complete!"))
	b.WriteString("\n\n")

	b.WriteString(KeyStyle.Render("Words:     "))
	b.WriteString(ValueStyle.Render(words))
	b.WriteString("\n")

	b.WriteString(KeyStyle.Render("Distinct:  "))
	b.WriteString(ValueStyle.Render(distinct))
	b.WriteString("\n")

	b.WriteString(KeyStyle.Render("Canvas:    "))
	b.WriteString(ValueStyle.Render(canvas))
	b.WriteString("\n\n")

	b.WriteString(KeyStyle.Render("Output:"))
	b.WriteString("\n")
	b.WriteString("  " + KeyStyle.Render("File: "))
	b.WriteString(ValueStyle.Render(output))
	b.WriteString("\n")
	b.WriteString("  " + KeyStyle.Render("Size: "))
	b.WriteString(ValueStyle.Render(size))
	b.WriteString("\n")
	b.WriteString("  " + KeyStyle.Render("Time: "))
	b.WriteString(ValueStyle.Render(elapsed))

	PrintBox(b.String())
}
