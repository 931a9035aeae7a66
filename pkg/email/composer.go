package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"ai-marketing-backend/internal/domain"
)

// Composer renders the two outbound messages of a contact submission
type Composer struct {
	from       string
	operatorTo string
	siteName   string
	siteURL    string
	now        func() time.Time

	notification *template.Template
	confirmation *template.Template
}

// ComposerConfig holds the addresses and branding used in both emails
type ComposerConfig struct {
	From       string
	OperatorTo string
	SiteName   string
	SiteURL    string
}

type templateData struct {
	SiteName    string
	SiteURL     string
	Name        string
	FirstName   string
	Email       string
	Company     string
	Phone       string
	Message     string
	SubmittedAt string
}

var funcs = template.FuncMap{
	"nl2br": nl2br,
}

// NewComposer parses the templates once; a parse failure is a programming error
func NewComposer(cfg ComposerConfig) *Composer {
	return &Composer{
		from:         cfg.From,
		operatorTo:   cfg.OperatorTo,
		siteName:     cfg.SiteName,
		siteURL:      strings.TrimRight(cfg.SiteURL, "/"),
		now:          time.Now,
		notification: template.Must(template.New("notification").Funcs(funcs).Parse(notificationTemplate)),
		confirmation: template.Must(template.New("confirmation").Funcs(funcs).Parse(confirmationTemplate)),
	}
}

// Notification builds the message for the operator. Replies go to the submitter.
func (c *Composer) Notification(sub *domain.ContactSubmission) (domain.OutboundMessage, error) {
	body, err := c.render(c.notification, sub)
	if err != nil {
		return domain.OutboundMessage{}, err
	}
	return domain.OutboundMessage{
		From:    c.from,
		To:      []string{c.operatorTo},
		ReplyTo: sub.Email,
		Subject: fmt.Sprintf("New Contact Form Submission from %s", sub.FullName()),
		HTML:    body,
	}, nil
}

// Confirmation builds the thank-you message for the submitter
func (c *Composer) Confirmation(sub *domain.ContactSubmission) (domain.OutboundMessage, error) {
	body, err := c.render(c.confirmation, sub)
	if err != nil {
		return domain.OutboundMessage{}, err
	}
	return domain.OutboundMessage{
		From:    c.from,
		To:      []string{sub.Email},
		Subject: fmt.Sprintf("Thank you for contacting %s", c.siteName),
		HTML:    body,
	}, nil
}

func (c *Composer) render(tmpl *template.Template, sub *domain.ContactSubmission) (string, error) {
	data := templateData{
		SiteName:    c.siteName,
		SiteURL:     c.siteURL,
		Name:        sub.FullName(),
		FirstName:   sub.FirstName,
		Email:       sub.Email,
		Company:     sub.Company,
		Phone:       sub.Phone,
		Message:     sub.Message,
		SubmittedAt: c.now().Format("Monday, January 2, 2006 at 3:04 PM MST"),
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", tmpl.Name(), err)
	}
	return body.String(), nil
}

// nl2br escapes s and turns line breaks into <br> tags
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(strings.ReplaceAll(s, "\r\n", "\n"))
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
