package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/erazemk/izbor/internal/model"
	"github.com/erazemk/izbor/internal/ranking"
)

// RenderRanking renders ranked entries as a table with the podium
// highlighted.
func RenderRanking(entries []ranking.Entry) string {
	if len(entries) == 0 {
		return mutedStyle.Render("No items to rank.")
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			strconv.Itoa(e.Rank),
			e.Item.Name,
			e.Item.Category,
			fmt.Sprintf("%.1f%%", e.Percent()),
			strconv.FormatInt(e.Item.Selects, 10),
			strconv.FormatInt(e.Item.Passes, 10),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers("#", "Item", "Category", "Selected", "Selects", "Passes").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return podiumStyle(entries[row].Rank)
		})
	return t.Render()
}

// RenderStats renders overall totals followed by a per-category table.
func RenderStats(overall model.OverallStats, categories []model.CategoryStats) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Overall"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d\n", mutedStyle.Render("Items: "), overall.TotalItems)
	fmt.Fprintf(&b, "%s %d\n", mutedStyle.Render("Selects:"), overall.TotalSelects)
	fmt.Fprintf(&b, "%s %d\n", mutedStyle.Render("Passes: "), overall.TotalPasses)
	fmt.Fprintf(&b, "%s %d\n\n", mutedStyle.Render("Votes:  "), overall.TotalVotes)

	if len(categories) == 0 {
		b.WriteString(mutedStyle.Render("No categories."))
		return b.String()
	}

	rows := make([][]string, len(categories))
	for i, c := range categories {
		rows[i] = []string{
			c.Category,
			strconv.FormatInt(c.ItemCount, 10),
			strconv.FormatInt(c.TotalSelects, 10),
			strconv.FormatInt(c.TotalPasses, 10),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers("Category", "Items", "Selects", "Passes").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	b.WriteString(titleStyle.Render("By category"))
	b.WriteString("\n")
	b.WriteString(t.Render())
	return b.String()
}

// renderCard renders one item for voting.
func renderCard(item model.Item) string {
	var b strings.Builder
	b.WriteString(nameStyle.Render(item.Name))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(item.Category))
	if item.Description != "" {
		b.WriteString("\n\n")
		b.WriteString(item.Description)
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s",
		successStyle.Render(fmt.Sprintf("▲ %d", item.Selects)),
		dangerStyle.Render(fmt.Sprintf("▼ %d", item.Passes)),
	)
	return cardStyle.Render(b.String())
}

// renderTabs renders the category selector.
func renderTabs(categories []string, active string) string {
	tabs := make([]string, len(categories))
	for i, c := range categories {
		if c == active {
			tabs[i] = activeTabStyle.Render(c)
		} else {
			tabs[i] = inactiveTabStyle.Render(c)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
