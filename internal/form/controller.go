// Package form is the client half of the contact pipeline: it owns the form
// fields, validates locally, submits to the API and maps the response to a
// status the page shell renders.
package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"ai-marketing-backend/pkg/validation"
)

// State is where the controller is in its edit/submit cycle.
type State int

const (
	Editing State = iota
	Submitting
)

func (s State) String() string {
	if s == Submitting {
		return "submitting"
	}
	return "editing"
}

// Status is the user-visible outcome of the last submit action.
type Status string

const (
	StatusNone    Status = ""
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

const (
	MsgRequiredFields = "Please fill in all required fields."
	MsgInvalidEmail   = "Please enter a valid email address."
	MsgNetworkError   = "Network error. Please check your connection and try again."
	MsgGenericError   = "Something went wrong. Please try again."
	MsgGenericSuccess = "Message sent successfully!"
)

var (
	ErrSubmitInProgress = errors.New("form: submission already in progress")
	ErrUnknownField     = errors.New("form: unknown field")
)

// Fields mirrors the JSON body POSTed to /api/contact.
type Fields struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Company   string `json:"company,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message"`
}

// Snapshot is a copy of the controller state safe to hand to renderers.
type Snapshot struct {
	Fields  Fields
	State   State
	Status  Status
	Message string
}

// Disabled reports whether inputs and the submit action must be disabled.
func (s Snapshot) Disabled() bool { return s.State == Submitting }

// Controller is safe for concurrent use; at most one request is outstanding.
type Controller struct {
	endpoint string
	client   *http.Client
	observer func(Snapshot)

	mu      sync.Mutex
	fields  Fields
	state   State
	status  Status
	message string
}

type Option func(*Controller)

// WithHTTPClient replaces http.DefaultClient. The controller itself sets no timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Controller) { c.client = client }
}

// WithObserver registers fn to be called after every state change.
func WithObserver(fn func(Snapshot)) Option {
	return func(c *Controller) { c.observer = fn }
}

// New returns a controller in the Editing state that posts to endpoint.
func New(endpoint string, opts ...Option) *Controller {
	c := &Controller{
		endpoint: endpoint,
		client:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Set updates one field by its JSON name. Fields are read-only while submitting.
func (c *Controller) Set(name, value string) error {
	c.mu.Lock()
	if c.state == Submitting {
		c.mu.Unlock()
		return ErrSubmitInProgress
	}
	ptr := c.field(name)
	if ptr == nil {
		c.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	*ptr = value
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return nil
}

// SetFields replaces every field at once.
func (c *Controller) SetFields(f Fields) error {
	c.mu.Lock()
	if c.state == Submitting {
		c.mu.Unlock()
		return ErrSubmitInProgress
	}
	c.fields = f
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return nil
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Submit validates locally and, if valid, posts the fields and waits for the
// response. Validation and response outcomes are reported through the
// returned Snapshot; the only error is ErrSubmitInProgress.
func (c *Controller) Submit(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	if c.state == Submitting {
		c.mu.Unlock()
		return Snapshot{}, ErrSubmitInProgress
	}

	if msg := validate(c.fields); msg != "" {
		c.status, c.message = StatusError, msg
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.notify(snap)
		return snap, nil
	}

	c.state = Submitting
	c.status, c.message = StatusNone, ""
	payload := c.fields
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	status, message := c.post(ctx, payload)

	c.mu.Lock()
	c.state = Editing
	c.status, c.message = status, message
	if status == StatusSuccess {
		c.fields = Fields{}
	}
	snap = c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return snap, nil
}

type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Controller) post(ctx context.Context, payload Fields) (Status, string) {
	body, err := json.Marshal(payload)
	if err != nil {
		return StatusError, MsgGenericError
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return StatusError, MsgNetworkError
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return StatusError, MsgNetworkError
	}
	defer resp.Body.Close()

	var parsed apiResponse
	// A body that is not our envelope falls through to the fallback texts
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&parsed)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if parsed.Message != "" {
			return StatusSuccess, parsed.Message
		}
		return StatusSuccess, MsgGenericSuccess
	}

	if parsed.Error != "" {
		return StatusError, parsed.Error
	}
	return StatusError, MsgGenericError
}

func validate(f Fields) string {
	for _, v := range []string{f.FirstName, f.LastName, f.Email, f.Message} {
		if strings.TrimSpace(v) == "" {
			return MsgRequiredFields
		}
	}
	if !validation.IsContactEmail(strings.TrimSpace(f.Email)) {
		return MsgInvalidEmail
	}
	return ""
}

func (c *Controller) field(name string) *string {
	switch name {
	case "firstName":
		return &c.fields.FirstName
	case "lastName":
		return &c.fields.LastName
	case "email":
		return &c.fields.Email
	case "company":
		return &c.fields.Company
	case "phone":
		return &c.fields.Phone
	case "message":
		return &c.fields.Message
	}
	return nil
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Fields:  c.fields,
		State:   c.state,
		Status:  c.status,
		Message: c.message,
	}
}

func (c *Controller) notify(s Snapshot) {
	if c.observer != nil {
		c.observer(s)
	}
}
