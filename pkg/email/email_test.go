package email

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"net/url"
	"strings"
	"testing"
	"time"

	"ai-marketing-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testComposer() *Composer {
	c := NewComposer(ComposerConfig{
		From:       "AI Marketing Partners <noreply@example.com>",
		OperatorTo: "ops@example.com",
		SiteName:   "AI Marketing Partners",
		SiteURL:    "https://example.com/",
	})
	c.now = func() time.Time { return time.Date(2026, 3, 2, 15, 4, 0, 0, time.UTC) }
	return c
}

func johnDoe() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Message:   "Hi\nthere <b>team</b>",
	}
}

func TestNotification(t *testing.T) {
	c := testComposer()

	t.Run("addresses operator with reply-to submitter", func(t *testing.T) {
		msg, err := c.Notification(johnDoe())
		require.NoError(t, err)

		assert.Equal(t, []string{"ops@example.com"}, msg.To)
		assert.Equal(t, "john@example.com", msg.ReplyTo)
		assert.Equal(t, "New Contact Form Submission from John Doe", msg.Subject)
		assert.Contains(t, msg.HTML, "John Doe")
		assert.Contains(t, msg.HTML, "Not provided")
		assert.NotContains(t, msg.HTML, "Phone:")
		assert.Contains(t, msg.HTML, "Submitted on: Monday, March 2, 2026")
	})

	t.Run("escapes message and keeps line breaks", func(t *testing.T) {
		msg, err := c.Notification(johnDoe())
		require.NoError(t, err)

		assert.Contains(t, msg.HTML, "Hi<br>there &lt;b&gt;team&lt;/b&gt;")
		assert.NotContains(t, msg.HTML, "<b>team</b>")
	})

	t.Run("company and phone when present", func(t *testing.T) {
		sub := johnDoe()
		sub.Company = "Acme"
		sub.Phone = "+14162307592"

		msg, err := c.Notification(sub)
		require.NoError(t, err)

		assert.Contains(t, msg.HTML, "Acme")
		assert.NotContains(t, msg.HTML, "Not provided")
		assert.Contains(t, msg.HTML, "Phone:")
		assert.Contains(t, msg.HTML, `href="tel:&#43;14162307592"`)
		assert.Contains(t, msg.HTML, ">&#43;14162307592</a>")
	})
}

func TestConfirmation(t *testing.T) {
	msg, err := testComposer().Confirmation(johnDoe())
	require.NoError(t, err)

	assert.Equal(t, []string{"john@example.com"}, msg.To)
	assert.Empty(t, msg.ReplyTo)
	assert.Equal(t, "Thank you for contacting AI Marketing Partners", msg.Subject)
	assert.Contains(t, msg.HTML, "Hi John,")
	assert.Contains(t, msg.HTML, "https://example.com/services")
}

func TestSMTPSender(t *testing.T) {
	msg := domain.OutboundMessage{
		From:    "AI Marketing Partners <noreply@example.com>",
		To:      []string{"ops@example.com"},
		ReplyTo: "john@example.com",
		Subject: "New Contact Form Submission from John\r\nBcc: evil@example.com",
		HTML:    "<p>hello</p>",
	}

	t.Run("writes headers and returns message id", func(t *testing.T) {
		s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: "587", Username: "u", Password: "p"})
		var gotAddr, gotFrom string
		var gotBody []byte
		s.sendMail = func(_ context.Context, addr string, _ smtp.Auth, from string, to []string, body []byte) error {
			gotAddr, gotFrom, gotBody = addr, from, body
			return nil
		}

		id, err := s.Send(context.Background(), msg)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, "smtp.example.com:587", gotAddr)
		assert.Equal(t, "noreply@example.com", gotFrom)

		raw := string(gotBody)
		assert.Contains(t, raw, "Reply-To: john@example.com\r\n")
		assert.Contains(t, raw, "Message-ID: <"+id+"@smtp.example.com>\r\n")
		assert.False(t, strings.Contains(raw, "\r\nBcc:"), "subject must not inject headers")
		assert.True(t, strings.HasSuffix(raw, "\r\n\r\n<p>hello</p>"))
	})

	t.Run("relay failure is wrapped", func(t *testing.T) {
		s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: "587", Username: "u", Password: "p"})
		relayErr := errors.New("535 auth failed")
		s.sendMail = func(context.Context, string, smtp.Auth, string, []string, []byte) error { return relayErr }

		_, err := s.Send(context.Background(), msg)
		assert.ErrorIs(t, err, relayErr)
	})

	t.Run("hung relay honours context", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer ln.Close()

		// accept and never send the 220 greeting
		accepted := make(chan net.Conn, 1)
		go func() {
			conn, err := ln.Accept()
			if err == nil {
				accepted <- conn
			}
		}()

		host, port, err := net.SplitHostPort(ln.Addr().String())
		require.NoError(t, err)
		s := NewSMTPSender(SMTPConfig{Host: host, Port: port, Username: "u", Password: "p"})

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err = s.Send(ctx, msg)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), 5*time.Second)
		select {
		case conn := <-accepted:
			conn.Close()
		case <-time.After(time.Second):
		}
	})

	t.Run("unconfigured", func(t *testing.T) {
		_, err := NewSMTPSender(SMTPConfig{}).Send(context.Background(), msg)
		assert.ErrorIs(t, err, domain.ErrSenderNotConfigured)
	})
}

func TestLogSender(t *testing.T) {
	s := NewLogSender()

	id, err := s.Send(context.Background(), domain.OutboundMessage{To: []string{"a@b.co"}})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Send(ctx, domain.OutboundMessage{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResendSender(t *testing.T) {
	msg := domain.OutboundMessage{
		From:    "AI Marketing Partners <noreply@example.com>",
		To:      []string{"ops@example.com"},
		ReplyTo: "john@example.com",
		Subject: "New Contact Form Submission from John Doe",
		HTML:    "<p>hello</p>",
	}

	newSender := func(t *testing.T, handler http.HandlerFunc) *ResendSender {
		t.Helper()
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)

		s := NewResendSender("re_key")
		base, err := url.Parse(srv.URL + "/")
		require.NoError(t, err)
		s.client.BaseURL = base
		return s
	}

	t.Run("posts email and returns id", func(t *testing.T) {
		var body map[string]interface{}
		var method, path, authz string
		s := newSender(t, func(w http.ResponseWriter, r *http.Request) {
			method, path, authz = r.Method, r.URL.Path, r.Header.Get("Authorization")
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"abc-123"}`))
		})

		id, err := s.Send(context.Background(), msg)

		require.NoError(t, err)
		assert.Equal(t, "abc-123", id)
		assert.Equal(t, http.MethodPost, method)
		assert.Equal(t, "/emails", path)
		assert.Equal(t, "Bearer re_key", authz)
		assert.Equal(t, "john@example.com", body["reply_to"])
		assert.Equal(t, "<p>hello</p>", body["html"])
		assert.Equal(t, []interface{}{"ops@example.com"}, body["to"])
	})

	t.Run("provider error is wrapped", func(t *testing.T) {
		s := newSender(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`))
		})

		id, err := s.Send(context.Background(), msg)

		require.Error(t, err)
		assert.Empty(t, id)
		assert.True(t, strings.HasPrefix(err.Error(), "resend: send failed"), err.Error())
	})

	t.Run("empty id is an error", func(t *testing.T) {
		s := newSender(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{}`))
		})

		id, err := s.Send(context.Background(), msg)

		require.Error(t, err)
		assert.Empty(t, id)
		assert.Contains(t, err.Error(), "no message id")
	})
}
