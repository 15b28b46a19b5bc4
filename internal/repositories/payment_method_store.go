package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"taskbazaar/internal/models"
)

const paymentMethodKeyPrefix = "payment_method:"

// PaymentMethodStore keeps a user's saved default payment instrument. It is
// an explicit, injected dependency; nothing else in the service knows how the
// value is persisted.
type PaymentMethodStore interface {
	Load(ctx context.Context, uid string) (models.PaymentMethod, error)
	Save(ctx context.Context, uid string, m models.PaymentMethod) error
	Clear(ctx context.Context, uid string) error
}

// RedisPaymentMethodStore is the redis-backed PaymentMethodStore.
type RedisPaymentMethodStore struct {
	Client *redis.Client
}

func (s *RedisPaymentMethodStore) Load(ctx context.Context, uid string) (models.PaymentMethod, error) {
	raw, err := s.Client.Get(ctx, paymentMethodKeyPrefix+uid).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.PaymentMethod{}, models.ErrNoPaymentMethod
	}
	if err != nil {
		return models.PaymentMethod{}, err
	}
	var m models.PaymentMethod
	if err := json.Unmarshal(raw, &m); err != nil {
		return models.PaymentMethod{}, err
	}
	return m, nil
}

func (s *RedisPaymentMethodStore) Save(ctx context.Context, uid string, m models.PaymentMethod) error {
	m.UpdatedAt = time.Now()
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, paymentMethodKeyPrefix+uid, raw, 0).Err()
}

func (s *RedisPaymentMethodStore) Clear(ctx context.Context, uid string) error {
	return s.Client.Del(ctx, paymentMethodKeyPrefix+uid).Err()
}
