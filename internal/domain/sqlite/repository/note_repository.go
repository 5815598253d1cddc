package repository

import (
	"errors"
	"strings"

	"notekeeper/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultNoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

func (d *DefaultNoteRepository) FindAllByOwner(userID string) ([]*entity.Note, error) {
	var notes []*entity.Note
	err := d.db.Where("user_id = ?", userID).Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// SearchByOwnerAndTitle matches the query as a case-insensitive
// substring of the title, restricted to the owner's notes.
func (d *DefaultNoteRepository) SearchByOwnerAndTitle(userID, query string) ([]*entity.Note, error) {
	var notes []*entity.Note
	pattern := "%" + strings.ToLower(query) + "%"
	err := d.db.
		Where("user_id = ? AND LOWER(title) LIKE ?", userID, pattern).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (d *DefaultNoteRepository) FindByID(id string) (*entity.Note, error) {
	var note entity.Note
	err := d.db.Where("id = ?", id).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (d *DefaultNoteRepository) Save(note *entity.Note) error {
	return d.db.Save(note).Error
}

// UpdateFields writes title and content by id alone. There is no owner
// filter here; mutations address notes globally.
func (d *DefaultNoteRepository) UpdateFields(id, title, content string, updatedAt int64) error {
	return d.db.Model(&entity.Note{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":      title,
			"content":    content,
			"updated_at": updatedAt,
		}).Error
}

// UpdateStatus flips the status flag by id alone, without an owner filter.
func (d *DefaultNoteRepository) UpdateStatus(id string, status bool, updatedAt int64) error {
	return d.db.Model(&entity.Note{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": updatedAt,
		}).Error
}

func (d *DefaultNoteRepository) Delete(note *entity.Note) error {
	return d.db.Delete(note).Error
}
