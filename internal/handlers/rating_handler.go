package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kuvica/kuvica-api/internal/apperr"
	"github.com/kuvica/kuvica-api/internal/service"
)

type RatingHandler struct {
	ratings *service.RatingService
}

func NewRatingHandler(ratings *service.RatingService) *RatingHandler {
	return &RatingHandler{ratings: ratings}
}

type createRatingReq struct {
	WorkerID         string `json:"worker_id" validate:"required,uuid"`
	ServiceRequestID string `json:"service_request_id" validate:"required,uuid"`
	Score            int    `json:"score" validate:"required,min=1,max=5"`
	Comment          string `json:"comment" validate:"max=500"`
}

func (h *RatingHandler) Create(c *fiber.Ctx) error {
	clientID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req createRatingReq
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	workerID, err := parseUUID(req.WorkerID)
	if err != nil {
		return apperr.Validation("worker_id must be a valid uuid", nil)
	}
	requestID, err := parseUUID(req.ServiceRequestID)
	if err != nil {
		return apperr.Validation("service_request_id must be a valid uuid", nil)
	}

	resp, err := h.ratings.Create(c.Context(), service.CreateRatingInput{
		ClientID:         clientID,
		WorkerID:         workerID,
		ServiceRequestID: requestID,
		Score:            req.Score,
		Comment:          req.Comment,
	})
	if err != nil {
		return err
	}
	return created(c, "rating created", resp)
}

func (h *RatingHandler) ListByWorker(c *fiber.Ctx) error {
	workerID, err := parseIDParam(c, "workerId")
	if err != nil {
		return err
	}
	list, err := h.ratings.WorkerRatings(c.Context(), workerID)
	if err != nil {
		return err
	}
	return ok(c, "ratings retrieved", list)
}

func (h *RatingHandler) AverageByWorker(c *fiber.Ctx) error {
	workerID, err := parseIDParam(c, "workerId")
	if err != nil {
		return err
	}
	avg, err := h.ratings.AverageForWorker(c.Context(), workerID)
	if err != nil {
		return err
	}
	return ok(c, "average retrieved", fiber.Map{"average_rating": avg})
}
