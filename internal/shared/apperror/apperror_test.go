package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-sitepass/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", apperror.ErrForbidden)
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusForbidden, got.Status)
		assert.Equal(t, apperror.CodeForbidden, got.Code)
	})

	t.Run("plain error is hidden behind internal error", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.NotContains(t, got.Message, "pq")
	})
}

func TestAppError_IsMatchesCopies(t *testing.T) {
	custom := apperror.ErrForbidden.WithMessage("team scope required")
	assert.True(t, errors.Is(custom, apperror.ErrForbidden))
	assert.False(t, errors.Is(custom, apperror.ErrNotFound))
	assert.Equal(t, "team scope required", apperror.ToHTTP(custom).Message)
}

func TestAppError_IsKeepsSiblingsApart(t *testing.T) {
	expired := apperror.New(apperror.CodeInvalidToken, "token expired", http.StatusBadRequest)
	consumed := apperror.New(apperror.CodeInvalidToken, "token already used", http.StatusBadRequest)

	assert.False(t, errors.Is(consumed, expired))
	assert.False(t, errors.Is(consumed.WithDetails("w-1"), expired))
	assert.True(t, errors.Is(consumed.WithDetails("w-1").WithMessage("used"), consumed))
	assert.True(t, errors.Is(fmt.Errorf("replay: %w", consumed.WithDetails("w-1")), consumed))

	t.Run("copy of a copy still matches the original", func(t *testing.T) {
		narrowed := apperror.ErrDependencyFailure.WithMessage("directory lookup failed")
		err := narrowed.WithCause(errors.New("connection reset"))
		assert.ErrorIs(t, err, narrowed)
		assert.ErrorIs(t, err, apperror.ErrDependencyFailure)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestMapValidationError_Fallback(t *testing.T) {
	err := apperror.MapValidationError(errors.New("EOF"))
	assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
}

func TestMapValidationError_Rules(t *testing.T) {
	v := validator.New()
	type invite struct {
		TeamID string `validate:"required"`
		Role   string `validate:"oneof=WORKER TEAM_ADMIN"`
		Code   string `validate:"len=6"`
	}

	tests := []struct {
		name    string
		in      invite
		message string
		rule    string
	}{
		{"required", invite{Role: "WORKER", Code: "123456"}, "Team Id is required", ""},
		{"oneof", invite{TeamID: "t", Role: "BOSS", Code: "123456"}, "Role must be one of: WORKER, TEAM_ADMIN", "oneof"},
		{"len", invite{TeamID: "t", Role: "WORKER", Code: "12"}, "Code must be 6 characters long", "len"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apperror.ToHTTP(apperror.MapValidationError(v.Struct(tt.in)))
			assert.Equal(t, http.StatusBadRequest, got.Status)
			assert.Equal(t, apperror.CodeValidation, got.Code)
			assert.Equal(t, tt.message, got.Message)
			if tt.rule != "" {
				assert.Equal(t, tt.rule, got.Details.(map[string]string)["rule"])
			}
		})
	}
}
