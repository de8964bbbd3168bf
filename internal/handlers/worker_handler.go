package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kuvica/kuvica-api/internal/apperr"
	"github.com/kuvica/kuvica-api/internal/service"
)

type WorkerHandler struct {
	workers *service.WorkerService
}

func NewWorkerHandler(workers *service.WorkerService) *WorkerHandler {
	return &WorkerHandler{workers: workers}
}

type registerWorkerReq struct {
	FullName     string   `json:"full_name" validate:"required"`
	Email        string   `json:"email" validate:"required,email"`
	Password     string   `json:"password" validate:"required,min=6"`
	Phone        string   `json:"phone"`
	Location     string   `json:"location"`
	ServiceTypes []string `json:"service_types"`
	Availability string   `json:"availability"`
	Municipality *string  `json:"municipality"`
	Neighborhood *string  `json:"neighborhood"`
	Profession   *string  `json:"profession"`
	Experience   *int     `json:"experience"`
	BirthDate    *string  `json:"birth_date"`
	Gender       *string  `json:"gender"`
}

type updateWorkerReq struct {
	FullName     *string  `json:"full_name"`
	Password     *string  `json:"password"`
	Phone        *string  `json:"phone"`
	Location     *string  `json:"location"`
	ServiceTypes []string `json:"service_types"`
	Availability *string  `json:"availability"`
	Municipality *string  `json:"municipality"`
	Neighborhood *string  `json:"neighborhood"`
	Profession   *string  `json:"profession"`
	Experience   *int     `json:"experience"`
	BirthDate    *string  `json:"birth_date"`
	Gender       *string  `json:"gender"`
}

func parseBirthDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, apperr.Validation("birth_date must be YYYY-MM-DD", nil)
	}
	return &t, nil
}

func (h *WorkerHandler) Register(c *fiber.Ctx) error {
	var req registerWorkerReq
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return err
	}

	resp, err := h.workers.Register(c.Context(), service.RegisterWorkerInput{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        normalizeEmail(req.Email),
		Password:     req.Password,
		Phone:        strings.TrimSpace(req.Phone),
		Location:     strings.TrimSpace(req.Location),
		ServiceTypes: req.ServiceTypes,
		Availability: strings.TrimSpace(req.Availability),
		Municipality: req.Municipality,
		Neighborhood: req.Neighborhood,
		Profession:   req.Profession,
		Experience:   req.Experience,
		BirthDate:    birthDate,
		Gender:       req.Gender,
	})
	if err != nil {
		return err
	}
	return created(c, "worker registered, activation code sent", resp)
}

func (h *WorkerHandler) Activate(c *fiber.Ctx) error {
	var req activateReq
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.workers.Activate(c.Context(), normalizeEmail(req.Email), req.Code); err != nil {
		return err
	}
	return ok(c, "account activated", nil)
}

func (h *WorkerHandler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	token, worker, err := h.workers.Login(c.Context(), normalizeEmail(req.Email), req.Password)
	if err != nil {
		return err
	}

	setAuthCookie(c, token, h.workers.ExpiresMin())
	return ok(c, "login successful", fiber.Map{
		"token":  token,
		"worker": worker,
	})
}

func (h *WorkerHandler) Logout(c *fiber.Ctx) error {
	clearAuthCookie(c)
	return ok(c, "logged out", nil)
}

func (h *WorkerHandler) GetAll(c *fiber.Ctx) error {
	workers, err := h.workers.GetAll(c.Context())
	if err != nil {
		return err
	}
	return ok(c, "workers retrieved", workers)
}

func (h *WorkerHandler) Me(c *fiber.Ctx) error {
	id, err := currentUserID(c)
	if err != nil {
		return err
	}
	profile, err := h.workers.Profile(c.Context(), id)
	if err != nil {
		return err
	}
	return ok(c, "worker retrieved", profile)
}

func (h *WorkerHandler) GetByEmail(c *fiber.Ctx) error {
	email := normalizeEmail(c.Query("email"))
	if email == "" {
		return apperr.Validation("email query parameter is required", nil)
	}
	worker, err := h.workers.GetByEmail(c.Context(), email)
	if err != nil {
		return err
	}
	return ok(c, "worker retrieved", worker)
}

// GetByID returns the public profile, average rating included.
func (h *WorkerHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	profile, err := h.workers.Profile(c.Context(), id)
	if err != nil {
		return err
	}
	return ok(c, "worker retrieved", profile)
}

func (h *WorkerHandler) Update(c *fiber.Ctx) error {
	id, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req updateWorkerReq
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return err
	}

	resp, err := h.workers.Update(c.Context(), id, service.UpdateWorkerInput{
		FullName:     req.FullName,
		Password:     req.Password,
		Phone:        req.Phone,
		Location:     req.Location,
		ServiceTypes: req.ServiceTypes,
		Availability: req.Availability,
		Municipality: req.Municipality,
		Neighborhood: req.Neighborhood,
		Profession:   req.Profession,
		Experience:   req.Experience,
		BirthDate:    birthDate,
		Gender:       req.Gender,
	})
	if err != nil {
		return err
	}
	return ok(c, "worker updated", resp)
}

func (h *WorkerHandler) Delete(c *fiber.Ctx) error {
	id, err := currentUserID(c)
	if err != nil {
		return err
	}
	if err := h.workers.Delete(c.Context(), id); err != nil {
		return err
	}
	clearAuthCookie(c)
	return ok(c, "worker deleted", nil)
}

// Search filters workers by location, service type and minimum rating; all
// three are optional.
func (h *WorkerHandler) Search(c *fiber.Ctx) error {
	location := strings.TrimSpace(c.Query("location"))
	serviceType := strings.TrimSpace(c.Query("serviceType"))

	var minRating *float64
	if raw := c.Query("minRating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 5 {
			return apperr.Validation("minRating must be a number between 0 and 5", nil)
		}
		minRating = &v
	}

	results, err := h.workers.Search(c.Context(), location, serviceType, minRating)
	if err != nil {
		return err
	}
	return ok(c, "workers found", results)
}
