package otplimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter считает неудачные попытки проверки OTP доставки по каждой посылке.
// Счетчик живет в Redis с TTL окна, успешная проверка его сбрасывает.
type Limiter struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
}

func New(client *redis.Client, maxFailures int64, window time.Duration) *Limiter {
	return &Limiter{
		client:      client,
		maxFailures: maxFailures,
		window:      window,
	}
}

func (l *Limiter) Locked(ctx context.Context, parcelID int64) (bool, error) {
	count, err := l.client.Get(ctx, key(parcelID)).Int64()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("otp limiter get: %w", err)
	}
	return count >= l.maxFailures, nil
}

func (l *Limiter) RegisterFailure(ctx context.Context, parcelID int64) error {
	k := key(parcelID)
	count, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return fmt.Errorf("otp limiter incr: %w", err)
	}
	if count == 1 {
		err = l.client.Expire(ctx, k, l.window).Err()
		if err != nil {
			return fmt.Errorf("otp limiter expire: %w", err)
		}
	}
	return nil
}

func (l *Limiter) Reset(ctx context.Context, parcelID int64) error {
	err := l.client.Del(ctx, key(parcelID)).Err()
	if err != nil {
		return fmt.Errorf("otp limiter reset: %w", err)
	}
	return nil
}

func key(parcelID int64) string {
	return fmt.Sprintf("parcel:otp:failures:%d", parcelID)
}
