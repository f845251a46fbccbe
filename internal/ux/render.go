// Package ux renders catalogs for the terminal. Classification levels are
// drawn in the color of their scheme.
package ux

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mugiliam/contentcatalog/pkg/api"
	"github.com/mugiliam/contentcatalog/pkg/catalog"
	"github.com/mugiliam/contentcatalog/pkg/types"
)

type Renderer struct {
	r      *lipgloss.Renderer
	title  lipgloss.Style
	header lipgloss.Style
	muted  lipgloss.Style
	code   lipgloss.Style
}

// NewRenderer picks the color profile of w. Writers that are not terminals
// get plain text.
func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		r:      r,
		title:  r.NewStyle().Bold(true).Underline(true),
		header: r.NewStyle().Bold(true),
		muted:  r.NewStyle().Foreground(lipgloss.Color("241")),
		code:   r.NewStyle().PaddingLeft(4),
	}
}

func (r *Renderer) badge(color string, text string) string {
	return r.r.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(text)
}

// Badge draws a classification level in its scheme color.
func (r *Renderer) Badge(c *catalog.Catalog, cls types.Classification) string {
	return r.badge(c.Color(cls), string(cls))
}

func (r *Renderer) Directory(entries []api.CatalogSummary) string {
	var b strings.Builder
	b.WriteString(r.title.Render("Catalogs"))
	b.WriteString("\n")
	for _, e := range entries {
		title := e.Title
		if title == "" {
			title = e.Name
		}
		fmt.Fprintf(&b, "%-24s %s %s\n", e.Name, r.header.Render(title),
			r.muted.Render(fmt.Sprintf("(%d records, %s)", e.RecordCount, e.Scheme)))
		if e.Subtitle != "" {
			fmt.Fprintf(&b, "%-24s %s\n", "", r.muted.Render(e.Subtitle))
		}
	}
	return b.String()
}

// Counts draws one badge per level with its count.
func (r *Renderer) Counts(counts []catalog.LevelCount) string {
	parts := make([]string, 0, len(counts))
	for _, lc := range counts {
		parts = append(parts, r.badge(lc.Color, fmt.Sprintf("%s %d", lc.Classification, lc.Count)))
	}
	return strings.Join(parts, "  ")
}

// Catalog draws records grouped by category in display order. The record
// sel has expanded is followed by its detail.
func (r *Renderer) Catalog(c *catalog.Catalog, records []catalog.Record, sel *catalog.Selection) string {
	byCategory := make(map[string][]catalog.Record)
	for _, rec := range records {
		byCategory[rec.Category] = append(byCategory[rec.Category], rec)
	}

	var b strings.Builder
	m := c.Metadata()
	title := m.Title
	if title == "" {
		title = m.Name
	}
	b.WriteString(r.title.Render(title))
	b.WriteString("\n")

	ix := c.Index()
	for _, cat := range ix.Categories() {
		recs := byCategory[cat.Name]
		if len(recs) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(r.header.Render(cat.Name))
		b.WriteString("  ")
		b.WriteString(r.Counts(ix.Summary(cat.Name)))
		b.WriteString("\n")
		if cat.Description != "" {
			b.WriteString(r.muted.Render(cat.Description))
			b.WriteString("\n")
		}
		for _, rec := range recs {
			b.WriteString(r.Record(c, rec))
			if sel != nil && sel.IsExpanded(rec.Id) {
				b.WriteString(r.Detail(c, rec))
			}
		}
	}
	return b.String()
}

// Record draws the collapsed, one line form of rec.
func (r *Renderer) Record(c *catalog.Catalog, rec catalog.Record) string {
	return fmt.Sprintf("  %3d  %s  %s\n", rec.Id, rec.PrimaryText, r.Badge(c, rec.Classification))
}

// Detail draws the expanded form of rec.
func (r *Renderer) Detail(c *catalog.Catalog, rec catalog.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "       %s\n", rec.DetailText)
	if len(rec.UseCases) > 0 {
		b.WriteString("       " + r.header.Render("Use cases") + "\n")
		for _, u := range rec.UseCases {
			fmt.Fprintf(&b, "       - %s\n", u)
		}
	}
	for _, ex := range rec.Examples {
		b.WriteString("       " + r.header.Render(ex.Title) + "\n")
		b.WriteString(indent(r.code.Render(strings.TrimRight(ex.Code, "\n")), "       "))
		if ex.Explanation != "" {
			fmt.Fprintf(&b, "       %s\n", r.muted.Render(ex.Explanation))
		}
		if ex.Output != "" {
			b.WriteString("       " + r.muted.Render("Output:") + "\n")
			b.WriteString(indent(r.code.Render(ex.Output), "       "))
		}
	}
	if related := c.Related(rec.Id); len(related) > 0 {
		names := make([]string, 0, len(related))
		for _, rr := range related {
			names = append(names, rr.PrimaryText)
		}
		fmt.Fprintf(&b, "       %s %s\n", r.muted.Render("Related:"), strings.Join(names, ", "))
	}
	return b.String()
}

func indent(s string, prefix string) string {
	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		b.WriteString(prefix)
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteString("\n")
	}
	return b.String()
}
