package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/okatru/prodmatch/internal/search"
)

// Renderer writes human-readable result listings.
type Renderer struct {
	out    io.Writer
	styles Styles
}

// NewRenderer creates a renderer. noColor forces plain output; a
// non-TTY writer is always plain regardless.
func NewRenderer(out io.Writer, noColor bool) *Renderer {
	if !noColor {
		noColor = !writerIsTerminal(out)
	}
	return &Renderer{out: out, styles: GetStyles(noColor)}
}

// RenderCandidates writes one line per candidate: score, id, code,
// name, barcode when present.
func (r *Renderer) RenderCandidates(query string, cands []search.Candidate) {
	s := r.styles
	if len(cands) == 0 {
		fmt.Fprintln(r.out, s.Warning.Render(fmt.Sprintf("no results for %q", query)))
		return
	}

	fmt.Fprintln(r.out, s.Header.Render(fmt.Sprintf("%d results for %q", len(cands), query)))
	for _, c := range cands {
		line := fmt.Sprintf("%s  %s  %s",
			s.Score.Render(fmt.Sprintf("%5d", c.Score)),
			s.Label.Render(fmt.Sprintf("#%d %s", c.Entry.ID, c.Entry.Code)),
			s.Name.Render(c.Entry.Name))
		if c.Entry.Barcode != "" {
			line += "  " + s.Dim.Render(c.Entry.Barcode)
		}
		fmt.Fprintln(r.out, line)
	}
}

// RenderBatch writes one line per input query with its best match, or a
// dash for unmatched items, keeping input order.
func (r *Renderer) RenderBatch(queries []string, matches []*search.BatchMatch) {
	s := r.styles
	for i, q := range queries {
		if i >= len(matches) || matches[i] == nil {
			fmt.Fprintf(r.out, "%s  %s\n", s.Label.Render(q), s.Dim.Render("-"))
			continue
		}
		m := matches[i]
		fmt.Fprintf(r.out, "%s  %s %s\n",
			s.Label.Render(q),
			s.Score.Render(fmt.Sprintf("#%d", m.ID)),
			s.Name.Render(m.Name))
	}
}

// RenderIDs writes the ids space-separated on one line.
func (r *Renderer) RenderIDs(ids []int64) {
	if len(ids) == 0 {
		fmt.Fprintln(r.out, r.styles.Warning.Render("no results"))
		return
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	fmt.Fprintln(r.out, strings.Join(parts, " "))
}

// RenderError writes an error message.
func (r *Renderer) RenderError(err error) {
	fmt.Fprintln(r.out, r.styles.Error.Render("error: "+err.Error()))
}

// writerIsTerminal reports whether the writer is an interactive
// terminal.
func writerIsTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
