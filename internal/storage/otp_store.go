package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// OTPState is the stored form of an issued one-time passcode. Only the hash
// of the code is kept; the plain code exists nowhere but in the delivery path.
type OTPState struct {
	CodeHash     string
	AttemptsLeft int
	RequestedAt  time.Time
}

// OTPStore keeps one-time passcodes in Redis under a TTL so that codes expire
// without any in-process sweep and survive nothing past their lifetime.
type OTPStore struct {
	client *redis.Client
}

// NewOTPStore connects to Redis and verifies the connection.
func NewOTPStore(host, port string) (*OTPStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		MaxRetries:   3,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return &OTPStore{client: client}, nil
}

func otpKey(identity string) string {
	return "otp:" + identity
}

// Save stores the passcode state for an identity, replacing any previous code,
// and bounds it with the given TTL.
func (s *OTPStore) Save(ctx context.Context, identity string, state OTPState, ttl time.Duration) error {
	key := otpKey(identity)
	if err := s.client.HSet(ctx, key, map[string]interface{}{
		"hash":         state.CodeHash,
		"attempts":     state.AttemptsLeft,
		"requested_at": state.RequestedAt.UTC().Unix(),
	}).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, key, ttl).Err()
}

// Get returns the stored passcode state for an identity, or nil if no code is
// outstanding (never issued, already consumed, or expired).
func (s *OTPStore) Get(ctx context.Context, identity string) (*OTPState, error) {
	fields, err := s.client.HGetAll(ctx, otpKey(identity)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}
	attempts, _ := strconv.Atoi(fields["attempts"])
	requestedAt, _ := strconv.ParseInt(fields["requested_at"], 10, 64)
	return &OTPState{
		CodeHash:     fields["hash"],
		AttemptsLeft: attempts,
		RequestedAt:  time.Unix(requestedAt, 0).UTC(),
	}, nil
}

// DecrementAttempts burns one verification attempt and returns how many remain.
func (s *OTPStore) DecrementAttempts(ctx context.Context, identity string) (int, error) {
	left, err := s.client.HIncrBy(ctx, otpKey(identity), "attempts", -1).Result()
	return int(left), err
}

// Delete removes the passcode state for an identity.
func (s *OTPStore) Delete(ctx context.Context, identity string) error {
	return s.client.Del(ctx, otpKey(identity)).Err()
}
