package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strings"

	"ai-marketing-backend/internal/domain"

	"github.com/google/uuid"
)

// SMTPSender handles sending emails via an SMTP relay (Brevo, SES, Mailgun...)
type SMTPSender struct {
	host     string
	port     string
	username string
	password string

	dialer   *net.Dialer

	// sendMail is s.deliver outside of tests
	sendMail func(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// SMTPConfig holds the relay address and credentials
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

// NewSMTPSender creates a new SMTP sender
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	s := &SMTPSender{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		dialer:   &net.Dialer{},
	}
	s.sendMail = s.deliver
	return s
}

func (s *SMTPSender) Name() string { return "smtp" }

// IsConfigured checks if the sender has valid SMTP configuration
func (s *SMTPSender) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// Send writes a MIME message to the relay. Cancelling ctx aborts the SMTP dialogue.
func (s *SMTPSender) Send(ctx context.Context, msg domain.OutboundMessage) (string, error) {
	if !s.IsConfigured() {
		return "", domain.ErrSenderNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	envelopeFrom, err := addressOnly(msg.From)
	if err != nil {
		return "", fmt.Errorf("smtp: invalid from address: %w", err)
	}

	messageID := uuid.NewString()
	raw := buildMIME(msg, fmt.Sprintf("<%s@%s>", messageID, s.host))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := net.JoinHostPort(s.host, s.port)
	if err := s.sendMail(ctx, addr, auth, envelopeFrom, msg.To, raw); err != nil {
		return "", fmt.Errorf("smtp: failed to send email: %w", err)
	}
	return messageID, nil
}

// deliver is smtp.SendMail with the connection bound to ctx: the dial honours
// ctx and the connection is closed as soon as ctx is done.
func (s *SMTPSender) deliver(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) (err error) {
	conn, err := s.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer func() {
		stop()
		if ctxErr := ctx.Err(); err != nil && ctxErr != nil {
			err = ctxErr
		}
	}()

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}); err != nil {
			return err
		}
	}
	if ok, _ := c.Extension("AUTH"); ok && a != nil {
		if err := c.Auth(a); err != nil {
			return err
		}
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

func buildMIME(msg domain.OutboundMessage, messageID string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", msg.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", mimeHeader(msg.Subject))
	fmt.Fprintf(&b, "Message-ID: %s\r\n", messageID)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	return []byte(b.String())
}

// mimeHeader strips CR/LF so submitter names cannot inject headers
func mimeHeader(v string) string {
	v = strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
	return mime.QEncoding.Encode("utf-8", v)
}

func addressOnly(from string) (string, error) {
	addr, err := mail.ParseAddress(from)
	if err != nil {
		return "", err
	}
	return addr.Address, nil
}
