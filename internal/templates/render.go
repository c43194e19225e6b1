package templates

import (
	"errors"
	"fmt"
	"strings"

	"checkpoint-bot/internal/domain"
	"checkpoint-bot/internal/mention"
)

const (
	MaxComments = 5
	QuoteMarker = "> "

	// Divider closes the ping line the same way staff messages always have.
	Divider = "``` ```"
)

var (
	ErrUnknownTemplate = errors.New("unknown template")
	ErrMissingComment  = errors.New("first comment is required")
	ErrTooManyComments = errors.New("too many comments")
)

type Options struct {
	WrapComments   bool
	FirstLineWidth int
	LineWidth      int
}

type Renderer struct {
	templates map[domain.TemplateID]domain.Template
	opts      Options
}

func NewRenderer(opts Options) *Renderer {
	templates := make(map[domain.TemplateID]domain.Template, len(builtin))
	for _, t := range builtin {
		templates[t.ID] = t
	}

	return &Renderer{
		templates: templates,
		opts:      opts,
	}
}

func (r *Renderer) Template(id domain.TemplateID) (domain.Template, bool) {
	t, ok := r.templates[id]
	return t, ok
}

// Render returns the message body for the template. Comments are only used by
// templates with a placeholder; blank optional comments are skipped without
// consuming a number.
func (r *Renderer) Render(id domain.TemplateID, comments []string) (string, error) {
	t, ok := r.templates[id]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownTemplate, id)
	}

	if !strings.Contains(t.Skeleton, Placeholder) {
		return t.Skeleton, nil
	}

	if t.RequiresComments && (len(comments) == 0 || strings.TrimSpace(comments[0]) == "") {
		return "", ErrMissingComment
	}

	if len(comments) > MaxComments {
		return "", fmt.Errorf("%w: got %d, max %d", ErrTooManyComments, len(comments), MaxComments)
	}

	block := r.commentBlock(comments)
	return strings.Replace(t.Skeleton, Placeholder, block, 1), nil
}

func (r *Renderer) commentBlock(comments []string) string {
	items := make([]string, 0, len(comments))
	for _, c := range comments {
		if strings.TrimSpace(c) == "" {
			continue
		}

		if r.opts.WrapComments {
			c = Wrap(c, r.opts.FirstLineWidth, r.opts.LineWidth, QuoteMarker)
		}

		item := fmt.Sprintf("**[%d]** :: %s", len(items)+1, c)
		if len(items) > 0 {
			item = QuoteMarker + item
		}
		items = append(items, item)
	}

	return strings.Join(items, "\n"+QuoteMarker+"\n")
}

// Compose appends the ping line for tokens below body.
func Compose(body string, tokens []string, sep string) string {
	if len(tokens) == 0 {
		return body
	}

	return body + "\n" + mention.PingLine(tokens, sep) + "\n" + Divider
}
