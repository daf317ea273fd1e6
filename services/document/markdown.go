package docsvc

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Ok1nam/demo-edp-final/core/statuts"
)

// Raw HTML in the source is omitted, goldmark does not render it by default.
var md = goldmark.New(goldmark.WithExtensions(extension.Table))

// RenderMarkdown converts markdown to an HTML fragment.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", errors.Wrap(err, "rendering markdown")
	}
	return buf.String(), nil
}

func StatutsHTML(doc statuts.Document) (string, error) {
	return RenderMarkdown(doc.Markdown())
}
