package handlers

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kuvica/kuvica-api/internal/apperr"
	"github.com/kuvica/kuvica-api/internal/service"
	"github.com/kuvica/kuvica-api/internal/storage"
)

var allowedAvatarTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type AvatarHandler struct {
	store   storage.AvatarStore
	clients *service.ClientService
	workers *service.WorkerService
}

func NewAvatarHandler(store storage.AvatarStore, clients *service.ClientService, workers *service.WorkerService) *AvatarHandler {
	return &AvatarHandler{store: store, clients: clients, workers: workers}
}

func (h *AvatarHandler) UploadClient(c *fiber.Ctx) error {
	return h.upload(c, "clients", func(ctx context.Context, id uuid.UUID, ref *string) (*string, error) {
		return h.clients.SetAvatar(ctx, id, ref)
	})
}

func (h *AvatarHandler) UploadWorker(c *fiber.Ctx) error {
	return h.upload(c, "workers", func(ctx context.Context, id uuid.UUID, ref *string) (*string, error) {
		return h.workers.SetAvatar(ctx, id, ref)
	})
}

func (h *AvatarHandler) DeleteClient(c *fiber.Ctx) error {
	return h.remove(c, func(ctx context.Context, id uuid.UUID) (*string, error) {
		return h.clients.SetAvatar(ctx, id, nil)
	})
}

func (h *AvatarHandler) DeleteWorker(c *fiber.Ctx) error {
	return h.remove(c, func(ctx context.Context, id uuid.UUID) (*string, error) {
		return h.workers.SetAvatar(ctx, id, nil)
	})
}

type setAvatarFunc func(ctx context.Context, id uuid.UUID, ref *string) (*string, error)

func (h *AvatarHandler) upload(c *fiber.Ctx, folder string, set setAvatarFunc) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return apperr.Validation("avatar file is required", nil)
	}
	if fileHeader.Size > storage.MaxAvatarSize {
		return apperr.Validation("avatar exceeds the 2MB limit", nil)
	}

	contentType := avatarContentType(fileHeader)
	if !allowedAvatarTypes[contentType] {
		return apperr.Validation("avatar must be a jpeg, png or webp image", nil)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	ext := filepath.Ext(fileHeader.Filename)
	filename := fmt.Sprintf("%s%s", uuid.NewString(), ext)

	ref, err := h.store.Save(c.Context(), folder, filename, src, fileHeader.Size, contentType)
	if err != nil {
		return err
	}

	old, err := set(c.Context(), userID, &ref)
	if err != nil {
		// The profile update failed; the orphaned upload gets reclaimed.
		if delErr := h.store.Delete(c.Context(), ref); delErr != nil {
			log.Warn().Err(delErr).Str("ref", ref).Msg("orphaned avatar not reclaimed")
		}
		return err
	}
	h.reclaim(c.Context(), old)

	return ok(c, "avatar uploaded", fiber.Map{"avatar": ref})
}

func (h *AvatarHandler) remove(c *fiber.Ctx, clear func(ctx context.Context, id uuid.UUID) (*string, error)) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	old, err := clear(c.Context(), userID)
	if err != nil {
		return err
	}
	h.reclaim(c.Context(), old)

	return ok(c, "avatar removed", nil)
}

func (h *AvatarHandler) reclaim(ctx context.Context, ref *string) {
	if ref == nil || *ref == "" {
		return
	}
	if err := h.store.Delete(ctx, *ref); err != nil {
		log.Warn().Err(err).Str("ref", *ref).Msg("old avatar not reclaimed")
	}
}

func avatarContentType(fh *multipart.FileHeader) string {
	ct := fh.Header.Get("Content-Type")
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(strings.ToLower(ct))
}
