package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/vibecare/internal/logger"
)

// OTPCacheRepository keeps hashed verification codes in Redis
type OTPCacheRepository struct {
	client *redis.Client
	exp    time.Duration // lifetime of a stored code
}

// NewOTPCacheRepository creates a repository whose entries expire after expiration
func NewOTPCacheRepository(client *redis.Client, expiration time.Duration) *OTPCacheRepository {
	return &OTPCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func otpKey(email string) string {
	return "otp:" + strings.ToLower(strings.TrimSpace(email))
}

// Set stores the code hash for the address, replacing any previous one
func (r *OTPCacheRepository) Set(ctx context.Context, email, codeHash string) error {
	key := otpKey(email)
	err := r.client.Set(ctx, key, codeHash, r.exp).Err()

	logger.FromContext(ctx).Infow("otp cached",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}

// Get returns the stored code hash, or ErrNotFound when it is missing or expired
func (r *OTPCacheRepository) Get(ctx context.Context, email string) (string, error) {
	key := otpKey(email)
	val, err := r.client.Get(ctx, key).Result()

	logger.FromContext(ctx).Infow("otp lookup",
		"key", key,
		"found", err == nil,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Delete removes the code for the address
func (r *OTPCacheRepository) Delete(ctx context.Context, email string) error {
	key := otpKey(email)
	err := r.client.Del(ctx, key).Err()

	logger.FromContext(ctx).Infow("otp deleted",
		"key", key,
		"error", err,
	)

	return err
}
