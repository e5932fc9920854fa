package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

var (
	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
	usageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"})
	headerStyle = lipgloss.NewStyle().Bold(true)
)

// Console renders human-readable text. With styled set, names, labels,
// and usages are colored with lipgloss; otherwise output is plain.
type Console struct {
	w      io.Writer
	styled bool
}

// NewConsole returns a console display writing to w.
func NewConsole(w io.Writer, styled bool) *Console {
	return &Console{w: w, styled: styled}
}

func (c *Console) render(s lipgloss.Style, text string) string {
	if !c.styled {
		return text
	}
	return s.Render(text)
}

// DisplayMessage prints text on its own line.
func (c *Console) DisplayMessage(text string) {
	_, _ = fmt.Fprintln(c.w, text)
}

// DisplayContacts prints one line per record:
//
//	Ann: Phones: 0501234567, Birthday: 15.03.1990
func (c *Console) DisplayContacts(records []*types.Record) {
	if len(records) == 0 {
		c.DisplayMessage(EmptyBookMessage)
		return
	}
	for _, r := range records {
		_, _ = fmt.Fprintf(c.w, "%s: %s %s, %s %s\n",
			c.render(nameStyle, r.Name().String()),
			c.render(labelStyle, "Phones:"), r.ListPhones(),
			c.render(labelStyle, "Birthday:"), r.BirthdayDisplay())
	}
}

// DisplayCommands prints the numbered command list.
func (c *Console) DisplayCommands() {
	width := 0
	for _, cmd := range Commands {
		if len(cmd.Usage) > width {
			width = len(cmd.Usage)
		}
	}

	var sb strings.Builder
	sb.WriteString(c.render(headerStyle, "Available commands:"))
	sb.WriteByte('\n')
	for i, cmd := range Commands {
		pad := strings.Repeat(" ", width-len(cmd.Usage))
		fmt.Fprintf(&sb, "%2d. %s%s  %s\n", i+1, c.render(usageStyle, cmd.Usage), pad, cmd.Description)
	}
	_, _ = io.WriteString(c.w, sb.String())
}
