package source

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/gomarkdown/markdown"
	mdast "github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/oakwood-commons/pagingmenu/internal/paging"
)

// IntroductionTitle names the section holding text before the first heading.
const IntroductionTitle = "Introduction"

type cut struct {
	line  int
	id    string
	title string
}

// Markdown splits doc into one item per section. A section starts at every
// top level heading of maxLevel or shallower and runs to the next one; its
// body is the original markdown including the heading. Text before the
// first heading becomes an Introduction section.
func Markdown(doc []byte, maxLevel int) (*List, error) {
	if maxLevel < 1 || maxLevel > 6 {
		return nil, fmt.Errorf("heading level must be between 1 and 6, got %d", maxLevel)
	}
	if strings.TrimSpace(string(doc)) == "" {
		return nil, fmt.Errorf("empty markdown document")
	}

	src := bytes.ReplaceAll(doc, []byte("\r\n"), []byte("\n"))
	cuts := headingCuts(src, maxLevel)
	lines := strings.Split(string(src), "\n")

	var (
		items []paging.Item
		ids   = map[string]bool{}
	)
	bodies := map[string]string{}
	add := func(id, title string, from, to int) {
		id = uniqueID(id, ids, len(items))
		items = append(items, paging.Item{ID: id, Order: len(items), Title: title})
		bodies[id] = strings.TrimSpace(strings.Join(lines[from:to], "\n"))
	}

	first := len(lines)
	if len(cuts) > 0 {
		first = cuts[0].line
	}
	if strings.TrimSpace(strings.Join(lines[:first], "\n")) != "" {
		add("introduction", IntroductionTitle, 0, first)
	}
	for i, c := range cuts {
		end := len(lines)
		if i+1 < len(cuts) {
			end = cuts[i+1].line
		}
		title := c.title
		if title == "" {
			title = "Section " + strconv.Itoa(len(items)+1)
		}
		add(c.id, title, c.line, end)
	}

	l := NewList(items)
	for id, body := range bodies {
		l.SetBody(id, body)
	}
	return l, nil
}

// headingCuts finds the line every top level heading starts on. Headings
// without text carry no source position and stay in the previous section.
func headingCuts(src []byte, maxLevel int) []cut {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var cuts []cut
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Level > maxLevel || h.Lines().Len() == 0 {
			continue
		}
		start := h.Lines().At(0).Start
		line := bytes.Count(src[:start], []byte("\n"))

		raw := make([]string, 0, h.Lines().Len())
		for i := range h.Lines().Len() {
			seg := h.Lines().At(i)
			raw = append(raw, strings.TrimSpace(string(seg.Value(src))))
		}
		id, title := headingIdentity(strings.Join(raw, " "))
		cuts = append(cuts, cut{line: line, id: id, title: title})
	}
	return cuts
}

// headingIdentity derives the anchor id and plain title of a heading from
// its raw inline markdown.
func headingIdentity(raw string) (id, title string) {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	root := markdown.Parse([]byte("# "+raw+"\n"), p)
	for _, n := range root.GetChildren() {
		if h, ok := n.(*mdast.Heading); ok {
			return h.HeadingID, headingText(h)
		}
	}
	return "", raw
}

func headingText(h *mdast.Heading) string {
	var b strings.Builder
	mdast.WalkFunc(h, func(n mdast.Node, entering bool) mdast.WalkStatus {
		if !entering {
			return mdast.GoToNext
		}
		switch leaf := n.(type) {
		case *mdast.Text:
			b.Write(leaf.Literal)
		case *mdast.Code:
			b.Write(leaf.Literal)
		}
		return mdast.GoToNext
	})
	return strings.TrimSpace(b.String())
}

func uniqueID(id string, seen map[string]bool, n int) string {
	if id == "" {
		id = "section-" + strconv.Itoa(n+1)
	}
	base := id
	for i := 2; seen[id]; i++ {
		id = base + "-" + strconv.Itoa(i)
	}
	seen[id] = true
	return id
}
