package ui

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"usersearch/internal/domain"
)

// HelpRenderer handles help and record detail rendering for the pager
type HelpRenderer struct {
	titleStyle   lipgloss.Style
	sectionStyle lipgloss.Style
	keyStyle     lipgloss.Style
	descStyle    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		sectionStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		keyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		descStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

func (r *HelpRenderer) line(b *strings.Builder, key, desc string) {
	b.WriteString(fmt.Sprintf("  %-12s %s\n", r.keyStyle.Render(key), r.descStyle.Render(desc)))
}

// RenderHelpContent renders the key reference
func (r *HelpRenderer) RenderHelpContent() string {
	var help strings.Builder

	help.WriteString(r.titleStyle.Render("usersearch help"))
	help.WriteString("\n")

	help.WriteString(r.sectionStyle.Render("Search"))
	help.WriteString("\n")
	r.line(&help, "type", "Edit the query (suggestions refresh once typing pauses)")
	r.line(&help, "esc, ctrl+u", "Clear the query")
	help.WriteString("\n")

	help.WriteString(r.sectionStyle.Render("Suggestions"))
	help.WriteString("\n")
	r.line(&help, "↑/↓", "Move the highlight")
	r.line(&help, "ctrl+p/n", "Move the highlight")
	r.line(&help, "enter", "Use the highlighted name as the query")
	r.line(&help, "click", "Use the clicked name as the query")
	r.line(&help, "ctrl+o", "Show the highlighted record")
	help.WriteString("\n")

	help.WriteString(r.sectionStyle.Render("Other"))
	help.WriteString("\n")
	r.line(&help, "f1", "Show this help")
	r.line(&help, "ctrl+c", "Quit")

	return help.String()
}

// RenderUserDetails renders every known field of a record, wrapped to width
func (r *HelpRenderer) RenderUserDetails(u domain.User, width int) string {
	md := userMarkdown(u)
	if width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dracula"),
		glamour.WithWordWrap(width-4), // Account for padding
	)
	if err != nil {
		log.Printf("Failed to create markdown renderer: %v", err)
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		log.Printf("Failed to render details for %q: %v", u.Name, err)
		return md
	}
	return out
}

func userMarkdown(u domain.User) string {
	var b strings.Builder

	b.WriteString("# " + u.Name + "\n\n")

	fields := []struct {
		label string
		value string
	}{
		{"ID", fmt.Sprintf("%d", u.ID)},
		{"Username", u.Username},
		{"Email", u.Email},
		{"Phone", u.Phone},
		{"Website", u.Website},
	}
	for _, f := range fields {
		if f.value == "" || f.value == "0" {
			continue
		}
		b.WriteString(fmt.Sprintf("- **%s:** `%s`\n", f.label, f.value))
	}

	return b.String()
}

// PagerOps shows long content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show hands the terminal to ov until the user leaves the pager
func (p *PagerOps) Show(content string) error {
	return p.run(strings.NewReader(content))
}

func (p *PagerOps) run(reader io.Reader) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	return root.Run()
}
