package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kuvica/kuvica-api/internal/apperr"
	"github.com/kuvica/kuvica-api/internal/models"
	"github.com/kuvica/kuvica-api/internal/service"
)

type ServiceRequestHandler struct {
	requests *service.ServiceRequestService
}

func NewServiceRequestHandler(requests *service.ServiceRequestService) *ServiceRequestHandler {
	return &ServiceRequestHandler{requests: requests}
}

type createServiceRequestReq struct {
	WorkerID    string `json:"worker_id" validate:"required,uuid"`
	Date        string `json:"date" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type updateStatusReq struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

func (h *ServiceRequestHandler) Create(c *fiber.Ctx) error {
	clientID, err := parseIDParam(c, "clientId")
	if err != nil {
		return err
	}

	var req createServiceRequestReq
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	workerID, err := parseUUID(req.WorkerID)
	if err != nil {
		return apperr.Validation("worker_id must be a valid uuid", nil)
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return apperr.Validation("date must be RFC3339", nil)
	}

	resp, err := h.requests.Create(c.Context(), service.CreateServiceRequestInput{
		ClientID:    clientID,
		WorkerID:    workerID,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return created(c, "service request created", resp)
}

func (h *ServiceRequestHandler) ListByClient(c *fiber.Ctx) error {
	clientID, err := parseIDParam(c, "clientId")
	if err != nil {
		return err
	}
	reqs, err := h.requests.ClientList(c.Context(), clientID)
	if err != nil {
		return err
	}
	return ok(c, "service requests retrieved", reqs)
}

func (h *ServiceRequestHandler) ListByWorker(c *fiber.Ctx) error {
	workerID, err := parseIDParam(c, "workerId")
	if err != nil {
		return err
	}
	reqs, err := h.requests.WorkerList(c.Context(), workerID)
	if err != nil {
		return err
	}
	return ok(c, "service requests retrieved", reqs)
}

func (h *ServiceRequestHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateStatusReq
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.requests.UpdateStatus(c.Context(), id, models.ServiceRequestStatus(req.Status))
	if err != nil {
		return err
	}
	return ok(c, "service request updated", resp)
}

func (h *ServiceRequestHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.requests.Delete(c.Context(), id); err != nil {
		return err
	}
	return ok(c, "service request deleted", nil)
}
