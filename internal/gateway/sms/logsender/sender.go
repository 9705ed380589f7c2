package logsender

import (
	"context"

	"parcelnet/internal/entities"
	"parcelnet/pkg/logger"
)

// Sender терминальная точка доставки SMS. Реального провайдера пока нет,
// поэтому сообщение уходит в лог воркера.
type Sender struct {
	log logger.Logger
}

func New(log logger.Logger) *Sender {
	return &Sender{
		log: log,
	}
}

func (s *Sender) Send(_ context.Context, sms entities.SMS) error {
	s.log.Info("sms delivered",
		logger.NewField("mobile", sms.Mobile),
		logger.NewField("parcel", sms.ParcelID),
		logger.NewField("message", sms.Message),
	)
	return nil
}
