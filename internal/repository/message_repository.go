package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kuvica/kuvica-api/internal/models"
)

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	// FindConversation is symmetric: it returns messages in both
	// directions between the two parties, oldest first.
	FindConversation(ctx context.Context, a, b uuid.UUID) ([]models.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) FindConversation(ctx context.Context, a, b uuid.UUID) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)", a, b, b, a).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *messageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Message{}, "id = ?", id).Error
}
