package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"ai-marketing-backend/internal/domain"
	"ai-marketing-backend/pkg/apperror"
	"ai-marketing-backend/pkg/logger"
	"ai-marketing-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	sender   domain.MessageSender
	composer domain.MessageComposer
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase. validate must have the
// validation package rules registered.
func NewContactUsecase(sender domain.MessageSender, composer domain.MessageComposer, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		sender:   sender,
		composer: composer,
		validate: validate,
	}
}

// Submit runs the pipeline: validate, notify the operator (strict), confirm to
// the submitter (best effort). Identical resubmissions send again; there is no dedup.
func (uc *contactUsecase) Submit(ctx context.Context, sub *domain.ContactSubmission) (*domain.SubmissionResult, error) {
	normalize(sub)
	reqID := requestID(ctx)

	if err := uc.validate.Struct(sub); err != nil {
		logger.Log.Info("Contact submission rejected",
			"request_id", reqID,
			"fields", validation.FormatValidationErrors(err),
		)
		if validation.Classify(err) == validation.KindFormat {
			return rejected(domain.MsgInvalidEmail), apperror.New(http.StatusBadRequest, domain.MsgInvalidEmail, domain.ErrInvalidEmail)
		}
		return rejected(domain.MsgMissingFields), apperror.New(http.StatusBadRequest, domain.MsgMissingFields, domain.ErrMissingFields)
	}

	notification, err := uc.composer.Notification(sub)
	if err != nil {
		logger.Log.Error("Failed to compose notification email", "request_id", reqID, "error", err)
		return failed(), apperror.Internal(fmt.Errorf("%w: %v", domain.ErrNotificationFailed, err))
	}

	notificationID, err := uc.sender.Send(ctx, notification)
	if err != nil {
		logger.Log.Error("Failed to send notification email",
			"request_id", reqID,
			"leg", "notification",
			"provider", uc.sender.Name(),
			"error", err,
		)
		return failed(), apperror.Internal(fmt.Errorf("%w: %w", domain.ErrNotificationFailed, err))
	}

	result := &domain.SubmissionResult{
		Outcome:        domain.OutcomeAccepted,
		NotificationID: notificationID,
		UserMessage:    domain.MsgAccepted,
	}

	// Operator is notified; from here on failures are logged only
	result.ConfirmationID = uc.sendConfirmation(ctx, reqID, sub)

	logger.Log.Info("Contact submission accepted",
		"request_id", reqID,
		"notification_id", result.NotificationID,
		"confirmation_id", result.ConfirmationID,
	)
	return result, nil
}

func (uc *contactUsecase) sendConfirmation(ctx context.Context, reqID string, sub *domain.ContactSubmission) string {
	confirmation, err := uc.composer.Confirmation(sub)
	if err != nil {
		logger.Log.Warn("Failed to compose confirmation email", "request_id", reqID, "error", err)
		return ""
	}

	id, err := uc.sender.Send(ctx, confirmation)
	if err != nil {
		logger.Log.Warn("Failed to send confirmation email",
			"request_id", reqID,
			"leg", "confirmation",
			"provider", uc.sender.Name(),
			"error", err,
		)
		return ""
	}
	return id
}

func normalize(sub *domain.ContactSubmission) {
	sub.FirstName = strings.TrimSpace(sub.FirstName)
	sub.LastName = strings.TrimSpace(sub.LastName)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Company = strings.TrimSpace(sub.Company)
	sub.Phone = strings.TrimSpace(sub.Phone)
	sub.Message = strings.TrimSpace(sub.Message)
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(domain.KeyRequestID).(string)
	return id
}

func rejected(msg string) *domain.SubmissionResult {
	return &domain.SubmissionResult{Outcome: domain.OutcomeRejectedInvalid, UserMessage: msg}
}

func failed() *domain.SubmissionResult {
	return &domain.SubmissionResult{Outcome: domain.OutcomeServerError, UserMessage: domain.MsgInternalError}
}
