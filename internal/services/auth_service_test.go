package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mobility-service/internal/models"
	"mobility-service/internal/services"
	"mobility-service/internal/storage"
)

const testSecret = "test-secret"

// fakeOTPVault is an in-process stand-in for the Redis-backed store. TTLs are
// ignored; expiry is simulated by deleting entries.
type fakeOTPVault struct {
	states map[string]storage.OTPState
}

func newFakeOTPVault() *fakeOTPVault {
	return &fakeOTPVault{states: make(map[string]storage.OTPState)}
}

func (f *fakeOTPVault) Save(ctx context.Context, identity string, state storage.OTPState, ttl time.Duration) error {
	f.states[identity] = state
	return nil
}

func (f *fakeOTPVault) Get(ctx context.Context, identity string) (*storage.OTPState, error) {
	state, ok := f.states[identity]
	if !ok {
		return nil, nil
	}
	return &state, nil
}

func (f *fakeOTPVault) DecrementAttempts(ctx context.Context, identity string) (int, error) {
	state := f.states[identity]
	state.AttemptsLeft--
	f.states[identity] = state
	return state.AttemptsLeft, nil
}

func (f *fakeOTPVault) Delete(ctx context.Context, identity string) error {
	delete(f.states, identity)
	return nil
}

// captureMailer records the codes handed to it instead of delivering them.
type captureMailer struct {
	codes []string
}

func (m *captureMailer) SendOTP(ctx context.Context, email, code string) error {
	m.codes = append(m.codes, code)
	return nil
}

func newAuthFixture(t *testing.T) (*gorm.DB, *services.AuthService, *fakeOTPVault, *captureMailer) {
	t.Helper()
	db := newTestDB(t)
	vault := newFakeOTPVault()
	mailer := &captureMailer{}
	svc := services.NewAuthService(db, vault, mailer, testSecret, time.Hour, 10*time.Minute)
	return db, svc, vault, mailer
}

func registerEmployee(t *testing.T, db *gorm.DB, email, password string) *models.Employee {
	t.Helper()
	employee, err := services.NewEmployeeService(db).CreateEmployee(services.CreateEmployeeInput{
		Name:         "Ada",
		Email:        email,
		Password:     password,
		EmployeeCode: "EMP-1",
		IsAdmin:      true,
	})
	require.NoError(t, err)
	return employee
}

func TestLoginIssuesToken(t *testing.T) {
	db, svc, _, _ := newAuthFixture(t)
	employee := registerEmployee(t, db, "ada@corp.test", "hunter2secret")

	signed, returned, err := svc.Login("ada@corp.test", "hunter2secret")
	require.NoError(t, err)
	assert.Equal(t, employee.ID, returned.ID)

	token, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, employee.ID.String(), claims["sub"])
	assert.Equal(t, true, claims["admin"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db, svc, _, _ := newAuthFixture(t)
	registerEmployee(t, db, "ada@corp.test", "hunter2secret")

	_, _, err := svc.Login("ada@corp.test", "wrong-password")
	require.ErrorIs(t, err, services.ErrUnauthorized)

	_, _, err = svc.Login("nobody@corp.test", "hunter2secret")
	require.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestRequestOTPStoresHashedCode(t *testing.T) {
	db, svc, vault, mailer := newAuthFixture(t)
	registerEmployee(t, db, "ada@corp.test", "hunter2secret")
	ctx := context.Background()

	require.NoError(t, svc.RequestOTP(ctx, "ada@corp.test"))

	require.Len(t, mailer.codes, 1)
	code := mailer.codes[0]
	assert.Len(t, code, 6)

	state, err := vault.Get(ctx, "ada@corp.test")
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, 5, state.AttemptsLeft)
	assert.NotEqual(t, code, state.CodeHash, "the plain code must never be stored")
}

func TestRequestOTPUnknownEmployee(t *testing.T) {
	_, svc, _, _ := newAuthFixture(t)
	err := svc.RequestOTP(context.Background(), "nobody@corp.test")
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestRequestOTPThrottled(t *testing.T) {
	db, svc, _, mailer := newAuthFixture(t)
	registerEmployee(t, db, "ada@corp.test", "hunter2secret")
	ctx := context.Background()

	require.NoError(t, svc.RequestOTP(ctx, "ada@corp.test"))
	err := svc.RequestOTP(ctx, "ada@corp.test")
	require.ErrorIs(t, err, services.ErrValidation)
	assert.Len(t, mailer.codes, 1, "a throttled request must not issue a new code")
}

func TestResetPasswordFlow(t *testing.T) {
	db, svc, vault, mailer := newAuthFixture(t)
	registerEmployee(t, db, "ada@corp.test", "hunter2secret")
	ctx := context.Background()

	require.NoError(t, svc.RequestOTP(ctx, "ada@corp.test"))
	code := mailer.codes[0]

	require.NoError(t, svc.ResetPassword(ctx, "ada@corp.test", code, "a-new-password"))

	_, _, err := svc.Login("ada@corp.test", "hunter2secret")
	require.ErrorIs(t, err, services.ErrUnauthorized, "the old password must stop working")
	_, _, err = svc.Login("ada@corp.test", "a-new-password")
	require.NoError(t, err)

	// The code is consumed on success.
	state, err := vault.Get(ctx, "ada@corp.test")
	require.NoError(t, err)
	assert.Nil(t, state)
	err = svc.ResetPassword(ctx, "ada@corp.test", code, "another-password")
	require.ErrorIs(t, err, services.ErrValidation)
}

func TestResetPasswordWrongCodeBurnsAttempts(t *testing.T) {
	db, svc, vault, _ := newAuthFixture(t)
	registerEmployee(t, db, "ada@corp.test", "hunter2secret")
	ctx := context.Background()

	require.NoError(t, svc.RequestOTP(ctx, "ada@corp.test"))

	for i := 0; i < 5; i++ {
		err := svc.ResetPassword(ctx, "ada@corp.test", "000000x", "a-new-password")
		require.ErrorIs(t, err, services.ErrValidation)
	}

	state, err := vault.Get(ctx, "ada@corp.test")
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Zero(t, state.AttemptsLeft)

	// The budget is exhausted; even the right code cannot matter anymore and
	// the stored state is discarded.
	err = svc.ResetPassword(ctx, "ada@corp.test", "123456", "a-new-password")
	require.ErrorIs(t, err, services.ErrValidation)
	state, err = vault.Get(ctx, "ada@corp.test")
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestResetPasswordWithoutRequest(t *testing.T) {
	db, svc, _, _ := newAuthFixture(t)
	registerEmployee(t, db, "ada@corp.test", "hunter2secret")

	err := svc.ResetPassword(context.Background(), "ada@corp.test", "123456", "a-new-password")
	require.ErrorIs(t, err, services.ErrValidation)
}
