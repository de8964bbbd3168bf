package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuvica/kuvica-api/internal/apperr"
)

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
}

func doReq(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reqBody)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestErrorHandlerMapsApplicationErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", apperr.NotFound("client not found"), fiber.StatusNotFound},
		{"conflict", apperr.Conflict("email already registered"), fiber.StatusConflict},
		{"invalid credentials", apperr.InvalidCredentials(), fiber.StatusUnauthorized},
		{"invalid code", apperr.InvalidCode("invalid activation code"), fiber.StatusBadRequest},
		{"forbidden", apperr.Forbidden("account not activated"), fiber.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp()
			app.Get("/boom", func(c *fiber.Ctx) error { return tc.err })

			status, body := doReq(t, app, "GET", "/boom", "")
			assert.Equal(t, tc.status, status)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.err.Error(), body["message"])
		})
	}
}

func TestErrorHandlerIncludesValidationDetails(t *testing.T) {
	app := newTestApp()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return apperr.Validation("validation failed", map[string][]string{
			"email": {"must be a valid email"},
		})
	})

	status, body := doReq(t, app, "GET", "/boom", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	require.Contains(t, body, "errors")
}

func TestErrorHandlerHidesInternalDetail(t *testing.T) {
	app := newTestApp()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return assert.AnError
	})

	status, body := doReq(t, app, "GET", "/boom", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", body["message"])
}

func TestParseAndValidateCollectsFieldErrors(t *testing.T) {
	app := newTestApp()
	app.Post("/register", func(c *fiber.Ctx) error {
		var req registerClientReq
		if err := parseAndValidate(c, &req); err != nil {
			return err
		}
		return ok(c, "ok", nil)
	})

	status, body := doReq(t, app, "POST", "/register", `{"full_name":"","email":"nope","password":"123"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	errs, okCast := body["errors"].(map[string]interface{})
	require.True(t, okCast)
	assert.Contains(t, errs, "fullname")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}
