package utils

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// StripMarkdown removes markdown formatting and returns plain text.
// Some gov24 summaries carry markdown emphasis and lists copied from
// agency notices; list views and summaries want plain text only.
func StripMarkdown(text string) string {
	if text == "" {
		return ""
	}

	doc := markdown.Parse([]byte(text), nil)

	var buf bytes.Buffer
	extractText(doc, &buf)

	result := strings.TrimSpace(buf.String())
	result = strings.ReplaceAll(result, "\n\n\n", "\n\n")

	return result
}

// extractText walks the AST and extracts text content
func extractText(node ast.Node, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		return

	case *ast.Code:
		buf.Write(n.Literal)
		return

	case *ast.CodeBlock:
		buf.Write(n.Literal)
		return

	case *ast.Hardbreak:
		buf.WriteString("\n")
		return

	case *ast.Softbreak:
		buf.WriteString(" ")
		return

	case *ast.HTMLBlock:
		return

	case *ast.HTMLSpan:
		return
	}

	container := node.AsContainer()
	if container == nil {
		return
	}

	for _, child := range container.Children {
		extractText(child, buf)
	}

	switch node.(type) {
	case *ast.Paragraph:
		buf.WriteString("\n\n")
	case *ast.Heading:
		buf.WriteString("\n\n")
	case *ast.List:
		buf.WriteString("\n")
	case *ast.BlockQuote:
		buf.WriteString("\n")
	}
}
