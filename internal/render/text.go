package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/bingo/internal/card"
	"github.com/vovakirdan/bingo/internal/catalog"
)

// TextTheme contains the terminal styles used for cards and keys.
type TextTheme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Border   lipgloss.Style
	Cell     lipgloss.Style
	Called   lipgloss.Style // Marked cell
	Winning  lipgloss.Style // Cell on a completed line
	Number   lipgloss.Style
	Section  lipgloss.Style
	Footer   lipgloss.Style
}

// NewTextTheme derives terminal styles from a catalog's colors.
func NewTextTheme(t catalog.Theme) TextTheme {
	return TextTheme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)).Italic(true),
		Border:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Border)),
		Cell:     lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center),
		Called: lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center).
			Background(lipgloss.Color("238")),
		Winning: lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center).
			Background(lipgloss.Color(t.Accent)).Foreground(lipgloss.Color("0")).Bold(true),
		Number:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Section: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)).Bold(true).MarginTop(1),
		Footer:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// CardText renders a card as a bordered 5x5 table. Cells whose item is in
// called are marked, and cells on completed lines are highlighted. A nil
// called set renders a blank card.
func CardText(c *catalog.Catalog, crd card.Card, called *card.CalledSet, th TextTheme) (string, error) {
	labels, err := card.Labels(crd.Grid, c)
	if err != nil {
		return "", fmt.Errorf("render: card %d: %w", crd.Number, err)
	}

	var winning [card.Size][card.Size]bool
	for _, l := range card.CompletedLines(crd.Grid, called) {
		for _, p := range l.Cells {
			winning[p.Row][p.Col] = true
		}
	}

	rows := make([][]string, card.Size)
	for r := range rows {
		rows[r] = make([]string, card.Size)
		for col := range rows[r] {
			rows[r][col] = fmt.Sprintf("%s %s", labels[r][col], th.Number.Render(fmt.Sprintf("%2d", crd.Grid[r][col])))
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(th.Border).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 || row >= card.Size || col < 0 || col >= card.Size {
				return th.Cell
			}
			switch {
			case winning[row][col]:
				return th.Winning
			case called.Has(crd.Grid[row][col]):
				return th.Called
			default:
				return th.Cell
			}
		}).
		Rows(rows...)

	var sb strings.Builder
	sb.WriteString(th.Title.Render("BINGO · " + c.Title))
	sb.WriteString("\n")
	if c.Subtitle != "" {
		sb.WriteString(th.Subtitle.Render(c.Subtitle))
		sb.WriteString("\n")
	}
	sb.WriteString(t.Render())
	sb.WriteString("\n")
	if crd.Serial != "" {
		sb.WriteString(th.Footer.Render(fmt.Sprintf("No. %d · %s", crd.Number, crd.Serial)))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// KeyText renders the catalog key as one table per section.
func KeyText(c *catalog.Catalog, th TextTheme) string {
	var sb strings.Builder
	sb.WriteString(th.Title.Render("BINGO KEY · " + c.Title))
	sb.WriteString("\n")
	sb.WriteString(th.Subtitle.Render(fmt.Sprintf("Reference guide for all %d events", c.Size())))
	sb.WriteString("\n")

	for _, g := range c.Groups() {
		if g.Name != "" {
			sb.WriteString(th.Section.Render(g.Name))
			sb.WriteString("\n")
		}
		rows := make([][]string, 0, len(g.Items))
		for _, it := range g.Items {
			rows = append(rows, []string{fmt.Sprintf("%d", it.Order), it.Emoji, it.Description})
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(th.Border).
			Headers("#", "", "Event").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return th.Title.Padding(0, 1)
				}
				if col == 0 {
					return th.Number.Padding(0, 1).Align(lipgloss.Right)
				}
				return lipgloss.NewStyle().Padding(0, 1)
			}).
			Rows(rows...)
		sb.WriteString(t.Render())
		sb.WriteString("\n")
	}
	return sb.String()
}

// PlainCard renders a card without styling, for pipes and files.
func PlainCard(c *catalog.Catalog, crd card.Card) (string, error) {
	labels, err := card.Labels(crd.Grid, c)
	if err != nil {
		return "", fmt.Errorf("render: card %d: %w", crd.Number, err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s - card %d", c.Title, crd.Number)
	if crd.Serial != "" {
		fmt.Fprintf(&sb, " (%s)", crd.Serial)
	}
	sb.WriteString("\n")
	for r := 0; r < card.Size; r++ {
		cells := make([]string, card.Size)
		for col := 0; col < card.Size; col++ {
			cells[col] = fmt.Sprintf("%s %2d", labels[r][col], crd.Grid[r][col])
		}
		sb.WriteString(strings.Join(cells, "\t"))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// PlainKey renders the key without styling.
func PlainKey(c *catalog.Catalog) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s - key (%d events)\n", c.Title, c.Size())
	for _, g := range c.Groups() {
		if g.Name != "" {
			fmt.Fprintf(&sb, "\n[%s]\n", g.Name)
		}
		for _, it := range g.Items {
			fmt.Fprintf(&sb, "%2d  %s  %s\n", it.Order, it.Emoji, it.Description)
		}
	}
	return sb.String()
}
