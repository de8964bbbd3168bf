package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/kuvica/kuvica-api/internal/apperr"
	"github.com/kuvica/kuvica-api/internal/middleware"
	"github.com/kuvica/kuvica-api/internal/service"
)

type ClientHandler struct {
	clients *service.ClientService
}

func NewClientHandler(clients *service.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

type registerClientReq struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type activateReq struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

type updateClientReq struct {
	FullName *string `json:"full_name"`
	Password *string `json:"password"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
}

// normalizeEmail is the single place emails get canonicalized; everything
// below the handlers sees lowercase trimmed addresses.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("userId").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return id, nil
}

func parseUUID(raw string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(raw))
}

func parseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid id", nil)
	}
	return id, nil
}

func setAuthCookie(c *fiber.Ctx, token string, expiresMin int) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Expires:  time.Now().Add(time.Duration(expiresMin) * time.Minute),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func (h *ClientHandler) Register(c *fiber.Ctx) error {
	var req registerClientReq
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.clients.Register(c.Context(), service.RegisterClientInput{
		FullName: strings.TrimSpace(req.FullName),
		Email:    normalizeEmail(req.Email),
		Password: req.Password,
		Phone:    strings.TrimSpace(req.Phone),
		Location: strings.TrimSpace(req.Location),
	})
	if err != nil {
		return err
	}
	return created(c, "client registered, activation code sent", resp)
}

func (h *ClientHandler) Activate(c *fiber.Ctx) error {
	var req activateReq
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.clients.Activate(c.Context(), normalizeEmail(req.Email), req.Code); err != nil {
		return err
	}
	return ok(c, "account activated", nil)
}

func (h *ClientHandler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	token, client, err := h.clients.Login(c.Context(), normalizeEmail(req.Email), req.Password)
	if err != nil {
		return err
	}

	setAuthCookie(c, token, h.clients.ExpiresMin())
	return ok(c, "login successful", fiber.Map{
		"token":  token,
		"client": client,
	})
}

func (h *ClientHandler) Logout(c *fiber.Ctx) error {
	clearAuthCookie(c)
	return ok(c, "logged out", nil)
}

func (h *ClientHandler) GetAll(c *fiber.Ctx) error {
	clients, err := h.clients.GetAll(c.Context())
	if err != nil {
		return err
	}
	return ok(c, "clients retrieved", clients)
}

func (h *ClientHandler) Me(c *fiber.Ctx) error {
	id, err := currentUserID(c)
	if err != nil {
		return err
	}
	client, err := h.clients.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return ok(c, "client retrieved", client)
}

func (h *ClientHandler) GetByEmail(c *fiber.Ctx) error {
	email := normalizeEmail(c.Query("email"))
	if email == "" {
		return apperr.Validation("email query parameter is required", nil)
	}
	client, err := h.clients.GetByEmail(c.Context(), email)
	if err != nil {
		return err
	}
	return ok(c, "client retrieved", client)
}

func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	client, err := h.clients.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return ok(c, "client retrieved", client)
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req updateClientReq
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.clients.Update(c.Context(), id, service.UpdateClientInput{
		FullName: req.FullName,
		Password: req.Password,
		Phone:    req.Phone,
		Location: req.Location,
	})
	if err != nil {
		return err
	}
	return ok(c, "client updated", resp)
}

func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := currentUserID(c)
	if err != nil {
		return err
	}
	if err := h.clients.Delete(c.Context(), id); err != nil {
		return err
	}
	clearAuthCookie(c)
	return ok(c, "client deleted", nil)
}
