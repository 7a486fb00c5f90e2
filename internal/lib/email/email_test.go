package email

import (
	"testing"

	"github.com/deppfellow/student-records/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplatePreviews(t *testing.T) {
	for name, data := range PreviewData {
		t.Run(string(name), func(t *testing.T) {
			html, err := RenderTemplate(name, data)
			require.NoError(t, err)
			for _, v := range data {
				assert.Contains(t, html, v)
			}
		})
	}
}

func TestRenderTemplateEscapes(t *testing.T) {
	html, err := RenderTemplate(TemplateWelcome, map[string]string{
		"StudentName": "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := RenderTemplate(Template("missing"), nil)
	assert.Error(t, err)
}

func TestSendWithoutAPIKeyIsSkipped(t *testing.T) {
	logger := zerolog.Nop()
	c := NewClient(&config.Config{}, &logger)

	assert.False(t, c.Enabled())
	assert.NoError(t, c.SendWelcomeEmail("ada@example.com", "Ada", "S1"))
	assert.NoError(t, c.SendEnrollmentConfirmationEmail("ada@example.com", "Ada", "CS101", "Intro"))
}
