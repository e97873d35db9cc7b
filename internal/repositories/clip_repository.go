package repositories

import (
	"context"

	"github.com/cliphaven/backend/internal/models"
	"gorm.io/gorm"
)

// ClipRepository defines the interface for clip data operations
type ClipRepository interface {
	CreateClip(ctx context.Context, clip *models.Clip) error
	GetClipByID(ctx context.Context, id uint) (*models.Clip, error)
	GetClips(ctx context.Context) ([]models.Clip, error)
	DeleteClip(ctx context.Context, id uint) error
}

// PostgresClipRepository implements ClipRepository for PostgreSQL
type PostgresClipRepository struct {
	db *gorm.DB
}

// NewPostgresClipRepository creates a new PostgresClipRepository
func NewPostgresClipRepository(db *gorm.DB) *PostgresClipRepository {
	return &PostgresClipRepository{db: db}
}

// CreateClip creates a new clip
func (r *PostgresClipRepository) CreateClip(ctx context.Context, clip *models.Clip) error {
	return r.db.WithContext(ctx).Create(clip).Error
}

// GetClipByID retrieves a clip by ID
func (r *PostgresClipRepository) GetClipByID(ctx context.Context, id uint) (*models.Clip, error) {
	var clip models.Clip
	if err := r.db.WithContext(ctx).First(&clip, id).Error; err != nil {
		return nil, err
	}
	return &clip, nil
}

// GetClips retrieves all clips, newest first
func (r *PostgresClipRepository) GetClips(ctx context.Context) ([]models.Clip, error) {
	var clips []models.Clip
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&clips).Error; err != nil {
		return nil, err
	}
	return clips, nil
}

// DeleteClip deletes a clip by ID. Comments on the clip are removed by
// the foreign-key cascade.
func (r *PostgresClipRepository) DeleteClip(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Clip{}, id).Error
}
