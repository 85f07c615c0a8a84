package tableparser

import (
	"log/slog"
	"strings"

	"github.com/gnames/namestat/pkg/stat"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type htmlParser struct{}

func (p *htmlParser) Parse(text string) (*stat.Stat, error) {
	// the tree builder adds tbody on its own, so the marker is checked in
	// the source text
	if !strings.Contains(strings.ToLower(text), "<tbody") {
		return nil, StructureError(bodyMarker)
	}

	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil, StructureError(bodyMarker)
	}

	body := findElement(doc, atom.Tbody)
	if body == nil {
		return nil, StructureError(bodyMarker)
	}

	b := stat.NewBuilder()
	var num int
	for row := body.FirstChild; row != nil; row = row.NextSibling {
		if row.Type != html.ElementNode || row.DataAtom != atom.Tr {
			continue
		}
		num++

		if h := findElement(row, atom.H3); h != nil {
			year := firstRunes(textContent(h), yearLen)
			if b.StartYear(year) {
				slog.Warn("Repeated year heading resets its records",
					"year", year, "row", num)
			}
			continue
		}

		if a := findElement(row, atom.A); a != nil {
			rec, err := splitName(textContent(a))
			if err != nil {
				return nil, MalformedRowError(num, render(row), err)
			}
			if !b.Add(rec) {
				return nil, MalformedRowError(num, render(row), errNoYear)
			}
			continue
		}

		slog.Warn("Unknown row", "row", render(row), "num", num)
	}
	return b.Stat(), nil
}

// findElement returns the first element of a given type in depth-first
// order, including n itself.
func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if res := findElement(c, a); res != nil {
			return res
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func firstRunes(s string, n int) string {
	rs := []rune(s)
	if len(rs) > n {
		rs = rs[:n]
	}
	return string(rs)
}

func render(n *html.Node) string {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return ""
	}
	return sb.String()
}
