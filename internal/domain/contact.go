package domain

import (
	"context"
	"errors"
)

var (
	ErrMissingFields       = errors.New("missing required fields")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrNotificationFailed  = errors.New("notification email failed")
	ErrSenderNotConfigured = errors.New("email sender is not configured")
)

// ContactSubmission represents one contact form attempt. It is never persisted.
type ContactSubmission struct {
	FirstName string `json:"firstName" validate:"notblank"`
	LastName  string `json:"lastName" validate:"notblank"`
	Email     string `json:"email" validate:"notblank,contact_email"`
	Company   string `json:"company,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message" validate:"notblank"`
}

// FullName joins first and last name the way both outbound emails address the submitter.
func (s *ContactSubmission) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Outcome is the overall result of a submission.
type Outcome string

const (
	OutcomeAccepted        Outcome = "Accepted"
	OutcomeRejectedInvalid Outcome = "RejectedInvalid"
	OutcomeServerError     Outcome = "ServerError"
)

// SubmissionResult is what the contact usecase reports back to the transport layer.
type SubmissionResult struct {
	Outcome        Outcome `json:"outcome"`
	NotificationID string  `json:"businessEmailId,omitempty"`
	ConfirmationID string  `json:"confirmationEmailId,omitempty"`
	UserMessage    string  `json:"-"`
}

// OutboundMessage is a provider-agnostic transactional email.
type OutboundMessage struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// MessageSender delivers a single outbound message and returns the provider's message id.
type MessageSender interface {
	Send(ctx context.Context, msg OutboundMessage) (string, error)
	// Name identifies the provider in logs and health output
	Name() string
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit validates the submission, notifies the operator and confirms to the submitter.
	// The returned result is always non-nil, even when err is not.
	Submit(ctx context.Context, sub *ContactSubmission) (*SubmissionResult, error)
}

// MessageComposer renders the two legs of a submission into outbound messages
type MessageComposer interface {
	Notification(sub *ContactSubmission) (OutboundMessage, error)
	Confirmation(sub *ContactSubmission) (OutboundMessage, error)
}

// User-visible texts. Provider errors never reach the client.
const (
	MsgAccepted        = "Message sent successfully! We'll get back to you within 24 hours."
	MsgMissingFields   = "Missing required fields: firstName, lastName, email, and message"
	MsgInvalidEmail    = "Invalid email format"
	MsgInvalidBody     = "Invalid request body"
	MsgInternalError   = "Internal server error. Please try again."
	MsgRequestTooLarge = "Request body too large"
)
