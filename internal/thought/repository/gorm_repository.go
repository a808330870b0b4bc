package repository

import (
	"errors"
	"time"

	"happy-thoughts-backend/internal/thought/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormThoughtRepository implements ThoughtRepository using GORM
type gormThoughtRepository struct {
	db *gorm.DB
}

// NewGormThoughtRepository creates a new GORM-based ThoughtRepository
func NewGormThoughtRepository(db *gorm.DB) ThoughtRepository {
	return &gormThoughtRepository{db: db}
}

func (r *gormThoughtRepository) Create(thought *domain.Thought) error {
	if thought.ID == "" {
		thought.ID = uuid.New().String()
	}
	thought.CreatedAt = time.Now()
	return r.db.Create(thought).Error
}

func (r *gormThoughtRepository) FindByID(id string) (*domain.Thought, error) {
	var thought domain.Thought
	err := r.db.Preload("User").Where("id = ?", id).First(&thought).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &thought, nil
}

func (r *gormThoughtRepository) FindRecent(limit int) ([]*domain.Thought, error) {
	var thoughts []*domain.Thought
	err := r.db.Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&thoughts).Error
	return thoughts, err
}

func (r *gormThoughtRepository) UpdateMessage(id, message string) error {
	return r.db.Model(&domain.Thought{}).Where("id = ?", id).
		Update("message", message).Error
}

func (r *gormThoughtRepository) Delete(id string) error {
	return r.db.Delete(&domain.Thought{}, "id = ?", id).Error
}

// IncrementHearts issues hearts = hearts + 1 as one UPDATE so concurrent
// likes on the same thought never lose updates.
func (r *gormThoughtRepository) IncrementHearts(id string) (bool, error) {
	result := r.db.Model(&domain.Thought{}).Where("id = ?", id).
		UpdateColumn("hearts", gorm.Expr("hearts + ?", 1))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *gormThoughtRepository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&domain.Thought{}).Error
}
