package user_test

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/internal/testutil"
	"Yoriview-Backend/pkg/jwt"
	"Yoriview-Backend/pkg/user"
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

type sentMail struct {
	to      string
	subject string
}

type fakeMailer struct {
	sent chan sentMail
}

func (m *fakeMailer) SendMail(toEmail string, subject string, body string) error {
	m.sent <- sentMail{to: toEmail, subject: subject}
	return nil
}

func newService(t *testing.T) (user.UserService, jwt.JWTService, *fakeMailer) {
	t.Helper()
	db := testutil.NewTestDB(t)
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	mailer := &fakeMailer{sent: make(chan sentMail, 10)}
	return user.NewUserService(user.NewUserRepository(db), jwtService, mailer), jwtService, mailer
}

func register(t *testing.T, svc user.UserService, email string) domain.UserRegisterResponse {
	t.Helper()
	res, err := svc.Register(context.Background(), domain.UserRegisterRequest{
		Email:    email,
		Password: "abcd123!",
		Nickname: "tester",
	})
	require.NoError(t, err)
	return res
}

func waitMail(t *testing.T, m *fakeMailer) sentMail {
	t.Helper()
	select {
	case mail := <-m.sent:
		return mail
	case <-time.After(2 * time.Second):
		t.Fatal("expected a mail to be sent")
		return sentMail{}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, mailer := newService(t)
	ctx := context.Background()

	first := register(t, svc, "dup@example.com")
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "dup@example.com", waitMail(t, mailer).to)

	_, err := svc.Register(ctx, domain.UserRegisterRequest{
		Email:    "dup@example.com",
		Password: "other123!",
		Nickname: "second",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.ErrorIs(t, err, domain.ErrConflict)

	me, err := svc.Me(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "tester", me.Nickname)
	assert.True(t, me.LocationEnabled)
	assert.False(t, me.ReviewVisibility)
}

func TestLoginIssuesTokenForUser(t *testing.T) {
	svc, jwtService, _ := newService(t)
	registered := register(t, svc, "login@example.com")

	res, err := svc.Login(context.Background(), domain.UserLoginRequest{Email: "login@example.com", Password: "abcd123!"})
	require.NoError(t, err)
	assert.Equal(t, "tester", res.Nickname)

	userID, err := jwtService.GetUserIDByToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
}

func TestLoginWrongPasswordFailsForAnyEmail(t *testing.T) {
	svc, _, _ := newService(t)
	register(t, svc, "known@example.com")
	ctx := context.Background()

	for _, email := range []string{"known@example.com", "unknown@example.com", ""} {
		_, err := svc.Login(ctx, domain.UserLoginRequest{Email: email, Password: "wrong123!"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials, email)
	}
}

func TestChangePassword(t *testing.T) {
	svc, _, mailer := newService(t)
	registered := register(t, svc, "pw@example.com")
	waitMail(t, mailer)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, registered.ID, domain.ChangePasswordRequest{CurrentPassword: "nope123!", NewPassword: "next123!"})
	assert.ErrorIs(t, err, domain.ErrWrongPassword)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, registered.ID, domain.ChangePasswordRequest{CurrentPassword: "abcd123!", NewPassword: "next123!"})
	require.NoError(t, err)
	assert.Contains(t, waitMail(t, mailer).subject, "password")

	_, err = svc.Login(ctx, domain.UserLoginRequest{Email: "pw@example.com", Password: "abcd123!"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = svc.Login(ctx, domain.UserLoginRequest{Email: "pw@example.com", Password: "next123!"})
	assert.NoError(t, err)
}

func TestUpdateMe(t *testing.T) {
	svc, _, _ := newService(t)
	registered := register(t, svc, "me@example.com")
	hidden := false

	res, err := svc.UpdateMe(context.Background(), registered.ID, domain.UpdateUserRequest{
		Nickname:        "renamed",
		DefaultStyleID:  "EXPERT",
		LocationEnabled: &hidden,
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", res.Nickname)
	assert.Equal(t, "EXPERT", res.DefaultStyleID)
	assert.False(t, res.LocationEnabled)
}

func TestMeUnknownUser(t *testing.T) {
	svc, _, _ := newService(t)
	_, err := svc.Me(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
