package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/campushub/eventhub/internal/app/models"
	"github.com/campushub/eventhub/internal/pkg/apperrors"
)

func newTestSessions(lifetime time.Duration) *SessionService {
	return NewSessionService(SessionConfig{
		Secret:   "test-secret",
		Lifetime: lifetime,
		Issuer:   "eventhub-test",
	})
}

func TestIssueValidateRoundTrip(t *testing.T) {
	sessions := newTestSessions(time.Hour)

	user := &models.User{
		ID:   42,
		Name: "Alice",
		Role: models.RoleAdmin,
	}

	token, err := sessions.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := sessions.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("userID = %d, want 42", claims.UserID)
	}
	if claims.Role != models.RoleAdmin {
		t.Fatalf("role = %q, want admin", claims.Role)
	}
	if claims.Name != "Alice" {
		t.Fatalf("name = %q, want Alice", claims.Name)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	sessions := newTestSessions(-time.Minute)

	token, err := sessions.Issue(&models.User{ID: 1, Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = sessions.Validate(token)
	if !errors.Is(err, apperrors.ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := newTestSessions(time.Hour).Issue(&models.User{ID: 1, Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := NewSessionService(SessionConfig{Secret: "different-secret", Lifetime: time.Hour})
	_, err = other.Validate(token)
	if !errors.Is(err, apperrors.ErrSessionInvalid) {
		t.Fatalf("err = %v, want ErrSessionInvalid", err)
	}
}

func TestValidateGarbage(t *testing.T) {
	sessions := newTestSessions(time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := sessions.Validate(token); !errors.Is(err, apperrors.ErrSessionInvalid) {
			t.Fatalf("token %q: err = %v, want ErrSessionInvalid", token, err)
		}
	}
}
