package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kuvica/kuvica-api/internal/apperr"
	"github.com/kuvica/kuvica-api/internal/service"
)

type FavoriteHandler struct {
	favorites *service.FavoriteService
}

func NewFavoriteHandler(favorites *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

type createFavoriteReq struct {
	WorkerID string `json:"worker_id" validate:"required,uuid"`
}

func (h *FavoriteHandler) Create(c *fiber.Ctx) error {
	clientID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req createFavoriteReq
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	workerID, err := parseUUID(req.WorkerID)
	if err != nil {
		return apperr.Validation("worker_id must be a valid uuid", nil)
	}

	resp, err := h.favorites.Create(c.Context(), clientID, workerID)
	if err != nil {
		return err
	}
	return created(c, "favorite added", resp)
}

func (h *FavoriteHandler) ListByClient(c *fiber.Ctx) error {
	clientID, err := parseIDParam(c, "clientId")
	if err != nil {
		return err
	}
	list, err := h.favorites.ListByClient(c.Context(), clientID)
	if err != nil {
		return err
	}
	return ok(c, "favorites retrieved", list)
}

func (h *FavoriteHandler) Delete(c *fiber.Ctx) error {
	clientID, err := parseIDParam(c, "clientId")
	if err != nil {
		return err
	}
	workerID, err := parseIDParam(c, "workerId")
	if err != nil {
		return err
	}
	if err := h.favorites.Delete(c.Context(), clientID, workerID); err != nil {
		return err
	}
	return ok(c, "favorite removed", nil)
}
