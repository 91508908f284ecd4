package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mobility-service/internal/models"
	"mobility-service/internal/repository"
	"mobility-service/internal/storage"
)

const (
	otpCodeLength  = 6
	otpMaxAttempts = 5
	otpMinInterval = 30 * time.Second
)

// OTPVault is the externally-owned, TTL-bounded store for one-time passcodes.
type OTPVault interface {
	Save(ctx context.Context, identity string, state storage.OTPState, ttl time.Duration) error
	Get(ctx context.Context, identity string) (*storage.OTPState, error)
	DecrementAttempts(ctx context.Context, identity string) (int, error)
	Delete(ctx context.Context, identity string) error
}

// Mailer delivers one-time passcodes. Delivery itself is outside this
// service; the default implementation only logs.
type Mailer interface {
	SendOTP(ctx context.Context, email, code string) error
}

// LogMailer is the no-delivery Mailer used when no mail integration is wired.
type LogMailer struct{}

// SendOTP logs the issued code instead of delivering it.
func (LogMailer) SendOTP(ctx context.Context, email, code string) error {
	log.Printf("otp issued for %s", email)
	return nil
}

// AuthService issues access tokens and drives the password-reset OTP flow.
type AuthService struct {
	db       *gorm.DB
	otp      OTPVault
	mailer   Mailer
	secret   []byte
	tokenTTL time.Duration
	otpTTL   time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(db *gorm.DB, otp OTPVault, mailer Mailer, secret string, tokenTTL, otpTTL time.Duration) *AuthService {
	return &AuthService{
		db:       db,
		otp:      otp,
		mailer:   mailer,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		otpTTL:   otpTTL,
	}
}

// Login verifies the credential and returns a signed access token plus the
// employee record.
func (s *AuthService) Login(email, password string) (string, *models.Employee, error) {
	employee, err := repository.NewEmployeeRepository(s.db).GetEmployeeByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
		}
		return "", nil, errors.Wrap(err, "store failure")
	}
	if bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(password)) != nil {
		return "", nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   employee.ID.String(),
		"admin": employee.IsAdmin,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to sign token")
	}
	return signed, employee, nil
}

// RequestOTP issues a password-reset code for the given email. The code is
// stored hashed with a TTL and an attempt budget; re-requests inside the
// minimum interval are rejected.
func (s *AuthService) RequestOTP(ctx context.Context, email string) error {
	employee, err := repository.NewEmployeeRepository(s.db).GetEmployeeByEmail(email)
	if err != nil {
		return orNotFound(err, "employee not found")
	}

	state, err := s.otp.Get(ctx, employee.Email)
	if err != nil {
		return errors.Wrap(err, "otp store failure")
	}
	if state != nil && time.Since(state.RequestedAt) < otpMinInterval {
		return validationErr("otp requested too frequently")
	}

	code, err := generateOTP()
	if err != nil {
		return errors.Wrap(err, "failed to generate otp")
	}
	err = s.otp.Save(ctx, employee.Email, storage.OTPState{
		CodeHash:     hashOTP(code),
		AttemptsLeft: otpMaxAttempts,
		RequestedAt:  time.Now().UTC(),
	}, s.otpTTL)
	if err != nil {
		return errors.Wrap(err, "failed to store otp")
	}
	return errors.Wrap(s.mailer.SendOTP(ctx, employee.Email, code), "failed to deliver otp")
}

// ResetPassword verifies the code issued by RequestOTP and replaces the
// employee's credential. A consumed or expired code cannot be reused.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	employees := repository.NewEmployeeRepository(s.db)
	employee, err := employees.GetEmployeeByEmail(email)
	if err != nil {
		return orNotFound(err, "employee not found")
	}
	if newPassword == "" {
		return validationErr("new password is required")
	}

	state, err := s.otp.Get(ctx, employee.Email)
	if err != nil {
		return errors.Wrap(err, "otp store failure")
	}
	if state == nil {
		return validationErr("otp expired or not requested")
	}
	if state.AttemptsLeft <= 0 {
		_ = s.otp.Delete(ctx, employee.Email)
		return validationErr("too many otp attempts")
	}
	if hashOTP(code) != state.CodeHash {
		if _, err := s.otp.DecrementAttempts(ctx, employee.Email); err != nil {
			return errors.Wrap(err, "otp store failure")
		}
		return validationErr("invalid otp")
	}
	if err := s.otp.Delete(ctx, employee.Email); err != nil {
		return errors.Wrap(err, "otp store failure")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	employee.Password = string(hash)
	return errors.Wrap(employees.UpdateEmployee(employee), "failed to update password")
}

func generateOTP() (string, error) {
	bound := big.NewInt(1)
	for i := 0; i < otpCodeLength; i++ {
		bound.Mul(bound, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, bound)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpCodeLength, n), nil
}

func hashOTP(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}
