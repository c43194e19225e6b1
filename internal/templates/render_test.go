package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkpoint-bot/internal/domain"
)

func newTestRenderer(wrap bool) *Renderer {
	return NewRenderer(Options{
		WrapComments:   wrap,
		FirstLineWidth: 36,
		LineWidth:      44,
	})
}

func TestRender_SimpleTemplatesIgnoreComments(t *testing.T) {
	r := newTestRenderer(false)

	ids := []domain.TemplateID{
		domain.TemplateAgeRejection,
		domain.TemplateFormatRejection,
		domain.TemplateLiteracyRejection,
		domain.TemplateSampleFixes,
		domain.TemplateSampleApproved,
		domain.TemplateBioInconsistency,
		domain.TemplateBioApproved,
	}

	for _, id := range ids {
		tmpl, ok := r.Template(id)
		require.True(t, ok)

		got, err := r.Render(id, []string{"ignored"})
		require.NoError(t, err)
		assert.Equal(t, tmpl.Skeleton, got)
		assert.NotContains(t, got, "ignored")
	}
}

func TestRender_NumbersAreContiguous(t *testing.T) {
	r := newTestRenderer(false)

	got, err := r.Render(domain.TemplateBioFixes, []string{"first fix", "", "", "fourth slot", ""})
	require.NoError(t, err)

	assert.Contains(t, got, "> **[1]** :: first fix\n> \n> **[2]** :: fourth slot\n")
	assert.NotContains(t, got, "[3]")
	assert.NotContains(t, got, "[4]")
	assert.NotContains(t, got, Placeholder)
}

func TestRender_AllFiveComments(t *testing.T) {
	r := newTestRenderer(false)

	got, err := r.Render(domain.TemplateBioFixes, []string{"a", "b", "c", "d", "e"})
	require.NoError(t, err)

	for i, c := range []string{"a", "b", "c", "d", "e"} {
		assert.Contains(t, got, "**["+string(rune('1'+i))+"]** :: "+c)
	}
	assert.Equal(t, 5, strings.Count(got, "\n> \n> **["))
}

func TestRender_ValidationErrors(t *testing.T) {
	r := newTestRenderer(false)

	_, err := r.Render(domain.TemplateBioFixes, nil)
	assert.ErrorIs(t, err, ErrMissingComment)

	_, err = r.Render(domain.TemplateBioFixes, []string{"  ", "second"})
	assert.ErrorIs(t, err, ErrMissingComment)

	_, err = r.Render(domain.TemplateBioFixes, []string{"1", "2", "3", "4", "5", "6"})
	assert.ErrorIs(t, err, ErrTooManyComments)

	_, err = r.Render(domain.TemplateID(99), nil)
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestRender_WrapsWhenEnabled(t *testing.T) {
	long := "the character's abilities are far beyond what the lore allows for a first year student"

	plain, err := newTestRenderer(false).Render(domain.TemplateBioFixes, []string{long})
	require.NoError(t, err)
	assert.Contains(t, plain, "**[1]** :: "+long)

	wrapped, err := newTestRenderer(true).Render(domain.TemplateBioFixes, []string{long})
	require.NoError(t, err)
	assert.NotContains(t, wrapped, long)

	for _, line := range strings.Split(wrapped, "\n") {
		if strings.Contains(line, "abilities") || strings.Contains(line, "student") {
			assert.True(t, strings.HasPrefix(line, QuoteMarker), line)
		}
	}
}

func TestCompose(t *testing.T) {
	assert.Equal(t, "body", Compose("body", nil, " "))
	assert.Equal(t, "body\n<@1> <@2>\n"+Divider, Compose("body", []string{"<@1>", "<@2>"}, " "))
}
