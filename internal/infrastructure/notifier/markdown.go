package notifier

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// MarkdownRenderer turns notification content into sanitized HTML.
type MarkdownRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough)),
		policy: bluemonday.UGCPolicy(),
	}
}

func (r *MarkdownRenderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}
