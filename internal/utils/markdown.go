package utils

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/kayan-consulting/kayan/ui/styles"
)

var markdownParser = goldmark.New().Parser()

// RenderMarkdown renders a consultant reply for the terminal. Markup the
// terminal cannot show (images, raw HTML) is dropped; everything else keeps
// its text.
func RenderMarkdown(src string) string {
	source := []byte(src)
	doc := markdownParser.Parse(text.NewReader(source))
	return strings.TrimRight(renderBlocks(doc, source, "\n\n"), "\n")
}

func renderBlocks(parent ast.Node, source []byte, sep string) string {
	var blocks []string
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if out := renderBlock(n, source); out != "" {
			blocks = append(blocks, out)
		}
	}
	return strings.Join(blocks, sep)
}

func renderBlock(n ast.Node, source []byte) string {
	switch node := n.(type) {
	case *ast.Heading:
		return styles.HeadingStyle().Render(renderInline(node, source))
	case *ast.Paragraph, *ast.TextBlock:
		return renderInline(node, source)
	case *ast.List:
		return renderList(node, source)
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return styles.CodeBlockStyle().Render(strings.TrimRight(codeLines(node, source), "\n"))
	case *ast.Blockquote:
		return styles.QuoteStyle().Render(renderBlocks(node, source, "\n"))
	case *ast.ThematicBreak:
		return "───"
	case *ast.HTMLBlock:
		return ""
	default:
		return renderInline(node, source)
	}
}

func renderList(list *ast.List, source []byte) string {
	var b strings.Builder
	i := 0
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "• "
		if list.IsOrdered() {
			marker = fmt.Sprintf("%d. ", list.Start+i)
		}
		body := renderBlocks(item, source, "\n")
		indent := strings.Repeat(" ", len([]rune(marker)))
		body = strings.ReplaceAll(body, "\n", "\n"+indent)
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  " + marker + body)
		i++
	}
	return b.String()
}

func codeLines(n ast.Node, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}

func renderInline(parent ast.Node, source []byte) string {
	var b strings.Builder
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(source))
			switch {
			case node.HardLineBreak():
				b.WriteString("\n")
			case node.SoftLineBreak():
				b.WriteString(" ")
			}
		case *ast.String:
			b.Write(node.Value)
		case *ast.CodeSpan:
			b.WriteString(styles.CodeSpanStyle().Render(renderInline(node, source)))
		case *ast.Emphasis:
			inner := renderInline(node, source)
			if node.Level >= 2 {
				b.WriteString(styles.BoldStyle().Render(inner))
			} else {
				b.WriteString(styles.ItalicStyle().Render(inner))
			}
		case *ast.Link:
			inner := renderInline(node, source)
			b.WriteString(styles.LinkStyle().Render(inner))
			if dest := string(node.Destination); dest != "" && dest != inner {
				b.WriteString(" (" + dest + ")")
			}
		case *ast.AutoLink:
			b.WriteString(styles.LinkStyle().Render(string(node.URL(source))))
		case *ast.Image, *ast.RawHTML:
		default:
			b.WriteString(renderInline(node, source))
		}
	}
	return b.String()
}
