// Package email provides an email sending client.
//
// It uses Resend (resend-go) as the email provider and renders HTML
// bodies from templates embedded in the binary.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/deppfellow/student-records/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Client wraps the Resend client and a logger.
type Client struct {
	// client is nil when no API key is configured.
	client *resend.Client
	from   string
	logger *zerolog.Logger
}

// NewClient creates an email Client. Without a Resend API key the client
// renders emails but never sends them.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	c := &Client{
		from:   cfg.Integration.EmailFrom,
		logger: logger,
	}
	if cfg.Integration.ResendAPIKey != "" {
		c.client = resend.NewClient(cfg.Integration.ResendAPIKey)
	}
	return c
}

// Enabled reports whether emails are actually delivered.
func (c *Client) Enabled() bool {
	return c.client != nil
}

// RenderTemplate executes the named template with data.
func RenderTemplate(templateName Template, data map[string]string) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, string(templateName)+".html", data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", templateName)
	}
	return body.String(), nil
}

// SendEmail sends an email with HTML rendered from a template.
func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	html, err := RenderTemplate(templateName, data)
	if err != nil {
		return err
	}

	if !c.Enabled() {
		c.logger.Debug().
			Str("to", to).
			Str("template", string(templateName)).
			Msg("email delivery disabled, skipping send")
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	if _, err := c.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
