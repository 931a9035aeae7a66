package usecase

import (
	"context"

	"ai-marketing-backend/internal/domain"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	sender domain.MessageSender
}

func NewHealthUsecase(sender domain.MessageSender) HealthUsecase {
	return &healthUsecase{sender: sender}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	return map[string]string{
		"status":   "ok",
		"provider": u.sender.Name(),
	}
}
