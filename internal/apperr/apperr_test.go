package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatusMapping(t *testing.T) {
	cases := []struct {
		err    *Error
		kind   Kind
		status int
	}{
		{Validation("bad input", nil), KindValidation, http.StatusBadRequest},
		{NotFound("client not found"), KindNotFound, http.StatusNotFound},
		{Conflict("email already registered"), KindConflict, http.StatusConflict},
		{InvalidCredentials(), KindInvalidCredentials, http.StatusUnauthorized},
		{InvalidCode("invalid activation code"), KindInvalidCode, http.StatusBadRequest},
		{Forbidden("account not activated"), KindForbidden, http.StatusForbidden},
		{Internal("boom"), KindInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.kind, tc.err.Kind)
		assert.Equal(t, tc.status, tc.err.Status)
	}
}

func TestInvalidCredentialsMessageIsFixed(t *testing.T) {
	// Unknown email and wrong password must collapse to the same message.
	assert.Equal(t, InvalidCredentials().Message, InvalidCredentials().Message)
	assert.Equal(t, "invalid credentials", InvalidCredentials().Error())
}

func TestFromUnwrapsWrappedErrors(t *testing.T) {
	inner := NotFound("worker not found")
	wrapped := fmt.Errorf("service: %w", inner)

	ae := From(wrapped)
	assert.NotNil(t, ae)
	assert.Equal(t, KindNotFound, ae.Kind)

	assert.Nil(t, From(errors.New("plain")))
	assert.True(t, IsKind(wrapped, KindNotFound))
	assert.False(t, IsKind(wrapped, KindConflict))
}
