package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/kuvica/kuvica-api/internal/middleware"
	"github.com/kuvica/kuvica-api/internal/service"
)

// GoogleOAuthHandler signs clients in through Google. Verified Google
// accounts skip the activation-code flow entirely.
type GoogleOAuthHandler struct {
	clients         *service.ClientService
	clientID        string
	clientSecret    string
	redirectURL     string
	frontendBaseURL string
	expiresMin      int
}

func NewGoogleOAuthHandler(clients *service.ClientService, clientID, clientSecret, redirectURL, frontendBaseURL string, expiresMin int) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		clients:         clients,
		clientID:        clientID,
		clientSecret:    clientSecret,
		redirectURL:     redirectURL,
		frontendBaseURL: frontendBaseURL,
		expiresMin:      expiresMin,
	}
}

func (h *GoogleOAuthHandler) oauthCfg() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.clientID,
		ClientSecret: h.clientSecret,
		RedirectURL:  h.redirectURL,
		Endpoint:     google.Endpoint,
		Scopes:       []string{"openid", "email", "profile"},
	}
}

func randomState(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

func (h *GoogleOAuthHandler) Start(c *fiber.Ctx) error {
	next := c.Query("next", "/")
	state := randomState(32)

	c.Cookie(&fiber.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   10 * 60,
	})
	c.Cookie(&fiber.Cookie{
		Name:     "oauth_next",
		Value:    next,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   10 * 60,
	})

	return c.Redirect(h.oauthCfg().AuthCodeURL(state, oauth2.AccessTypeOffline), http.StatusTemporaryRedirect)
}

type googleUserInfo struct {
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

func (h *GoogleOAuthHandler) Callback(c *fiber.Ctx) error {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing code or state")
	}

	if cookie := c.Cookies("oauth_state"); cookie == "" || cookie != state {
		return fiber.NewError(fiber.StatusBadRequest, "invalid oauth state")
	}

	next := c.Cookies("oauth_next")
	if next == "" || !strings.HasPrefix(next, "/") {
		next = "/"
	}

	tok, err := h.oauthCfg().Exchange(c.Context(), code)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "code exchange failed")
	}

	httpClient := h.oauthCfg().Client(c.Context(), tok)
	resp, err := httpClient.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "userinfo fetch failed")
	}
	defer resp.Body.Close()

	var gu googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&gu); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "userinfo decode failed")
	}

	email := normalizeEmail(gu.Email)
	if email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "google account has no email")
	}

	client, err := h.clients.EnsureGoogleAccount(c.Context(), email, strings.TrimSpace(gu.Name))
	if err != nil {
		return err
	}
	if !client.IsActive {
		return c.Redirect(
			h.frontendBaseURL+"/auth/login?err="+url.QueryEscape("account not activated"),
			http.StatusTemporaryRedirect,
		)
	}

	token, err := h.clients.SignToken(client.ID)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   h.expiresMin * 60,
	})
	c.Cookie(&fiber.Cookie{Name: "oauth_state", Value: "", Path: "/", MaxAge: -1, HTTPOnly: true, SameSite: "Lax"})
	c.Cookie(&fiber.Cookie{Name: "oauth_next", Value: "", Path: "/", MaxAge: -1, HTTPOnly: true, SameSite: "Lax"})

	return c.Redirect(h.frontendBaseURL+next, http.StatusTemporaryRedirect)
}
