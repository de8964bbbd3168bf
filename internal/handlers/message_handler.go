package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/kuvica/kuvica-api/internal/apperr"
	"github.com/kuvica/kuvica-api/internal/models"
	"github.com/kuvica/kuvica-api/internal/realtime"
	"github.com/kuvica/kuvica-api/internal/service"
	"github.com/kuvica/kuvica-api/internal/utils"
)

type MessageHandler struct {
	messages  *service.MessageService
	hub       *realtime.Hub
	jwtSecret string
}

func NewMessageHandler(messages *service.MessageService, hub *realtime.Hub, jwtSecret string) *MessageHandler {
	return &MessageHandler{messages: messages, hub: hub, jwtSecret: jwtSecret}
}

type sendMessageReq struct {
	RecipientID string `json:"recipient_id" validate:"required,uuid"`
	Content     string `json:"content" validate:"required"`
}

func (h *MessageHandler) Send(c *fiber.Ctx) error {
	senderID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req sendMessageReq
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	recipientID, err := parseUUID(req.RecipientID)
	if err != nil {
		return apperr.Validation("recipient_id must be a valid uuid", nil)
	}

	role, _ := c.Locals("role").(string)
	resp, err := h.messages.Send(c.Context(), service.SendMessageInput{
		Content:      req.Content,
		SenderID:     senderID,
		RecipientID:  recipientID,
		IsFromClient: role == string(models.RoleClient),
	})
	if err != nil {
		return err
	}
	return created(c, "message sent", resp)
}

// Conversation returns the full exchange between the caller and the other
// party, oldest first.
func (h *MessageHandler) Conversation(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	recipientID, err := parseIDParam(c, "recipientId")
	if err != nil {
		return err
	}
	msgs, err := h.messages.Conversation(c.Context(), userID, recipientID)
	if err != nil {
		return err
	}
	return ok(c, "conversation retrieved", msgs)
}

func (h *MessageHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.messages.Delete(c.Context(), id); err != nil {
		return err
	}
	return ok(c, "message deleted", nil)
}

// WebsocketUpgrade authenticates the upgrade request. Browsers cannot set
// headers on websocket dials, so the token rides a query parameter.
func (h *MessageHandler) WebsocketUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	claims, err := utils.ParseJWT(h.jwtSecret, c.Query("token"))
	if err != nil {
		return fiber.ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	c.Locals("wsUserId", userID)
	return c.Next()
}

// Websocket keeps the connection subscribed to the caller's room.
func (h *MessageHandler) Websocket() fiber.Handler {
	return websocket.New(func(ws *websocket.Conn) {
		userID, ok := ws.Locals("wsUserId").(uuid.UUID)
		if !ok {
			_ = ws.Close()
			return
		}
		realtime.ServeConn(h.hub, ws, userID)
	})
}
