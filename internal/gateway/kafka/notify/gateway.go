package notify

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"parcelnet/internal/entities"
	"parcelnet/pkg/logger"
	retrierconfig "parcelnet/pkg/retrier"
	"parcelnet/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Gateway публикует SMS-уведомления в топик брокера. Доставка до получателя
// асинхронная, поэтому бизнес-операции не узнают об ошибках публикации:
// шлюз сам логирует и считает их.
type Gateway struct {
	producer producer
	retrier  retrier
	log      gatewayLogger
	topic    string
}

func New(log gatewayLogger, producer producer, topic string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	return &Gateway{
		producer: producer,
		retrier:  backoff_adapter.New(retryConfig),
		log:      log.With(logger.NewField("topic", topic)),
		topic:    topic,
	}
}

type smsEvent struct {
	Mobile   string `json:"mobile"`
	Message  string `json:"message"`
	ParcelID int64  `json:"parcel_id"`
}

func (g *Gateway) Send(ctx context.Context, sms entities.SMS) {
	payload, err := json.Marshal(smsEvent{
		Mobile:   sms.Mobile,
		Message:  sms.Message,
		ParcelID: sms.ParcelID,
	})
	if err != nil {
		g.log.Error("notify gateway failed to marshal sms",
			logger.NewField("error", err),
		)
		NotificationsPublishedTotal.WithLabelValues(g.topic, "error").Inc()
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		// ключ по посылке сохраняет порядок уведомлений одной посылки
		Key:   sarama.StringEncoder(strconv.FormatInt(sms.ParcelID, 10)),
		Value: sarama.ByteEncoder(payload),
	}

	start := time.Now()
	err = g.retrier.ExecuteWithContext(ctx, func(context.Context) error {
		_, _, sendErr := g.producer.SendMessage(msg)
		return sendErr
	})
	NotificationPublishDuration.WithLabelValues(g.topic).Observe(time.Since(start).Seconds())

	if err != nil {
		g.log.Error("notify gateway failed to publish sms",
			logger.NewField("error", err),
			logger.NewField("parcel", sms.ParcelID),
		)
		NotificationsPublishedTotal.WithLabelValues(g.topic, "error").Inc()
		return
	}

	NotificationsPublishedTotal.WithLabelValues(g.topic, "ok").Inc()
}
