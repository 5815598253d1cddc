package service

import (
	"notekeeper/internal/contract"
	"notekeeper/internal/domain/entity"
	"notekeeper/internal/utils"
	"notekeeper/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type NoteRepository interface {
	FindAllByOwner(userID string) ([]*entity.Note, error)
	SearchByOwnerAndTitle(userID, query string) ([]*entity.Note, error)
	FindByID(id string) (*entity.Note, error)
	Save(note *entity.Note) error
	UpdateFields(id, title, content string, updatedAt int64) error
	UpdateStatus(id string, status bool, updatedAt int64) error
	Delete(note *entity.Note) error
}

type DefaultNoteService struct {
	NoteRepo NoteRepository
	Validate *validator.Validate
}

func NewNoteService(noteRepo NoteRepository, validate *validator.Validate) *DefaultNoteService {
	return &DefaultNoteService{
		NoteRepo: noteRepo,
		Validate: validate,
	}
}

func (n *DefaultNoteService) CreateNote(userID string, req *contract.NoteRequest) (*entity.Note, apierror.ErrorResponse) {
	if err := n.Validate.Struct(req); err != nil {
		return nil, apierror.MissingFieldsError
	}

	now := utils.NowUTC()
	note := &entity.Note{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to save note: %v", err)
		return nil, apierror.InternalServerError
	}
	return note, nil
}

func (n *DefaultNoteService) GetNotes(userID string) ([]*entity.Note, apierror.ErrorResponse) {
	notes, err := n.NoteRepo.FindAllByOwner(userID)
	if err != nil {
		log.Errorf("failed to fetch notes: %v", err)
		return nil, apierror.InternalServerError
	}
	return notes, nil
}

func (n *DefaultNoteService) SearchNotes(userID, query string) ([]*entity.Note, apierror.ErrorResponse) {
	notes, err := n.NoteRepo.SearchByOwnerAndTitle(userID, query)
	if err != nil {
		log.Errorf("failed to search notes: %v", err)
		return nil, apierror.InternalServerError
	}
	return notes, nil
}

// UpdateNote replaces title and content by id. The id is not checked
// against the requester before writing; the response echoes the
// request-shaped note either way.
func (n *DefaultNoteService) UpdateNote(id, userID string, req *contract.NoteRequest) (*entity.Note, apierror.ErrorResponse) {
	now := utils.NowUTC()
	if err := n.NoteRepo.UpdateFields(id, req.Title, req.Content, now); err != nil {
		log.Errorf("failed to update note: %v", err)
		return nil, apierror.InternalServerError
	}

	note := &entity.Note{
		ID:        id,
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		UpdatedAt: now,
	}
	return note, nil
}

// DeleteNote removes the note by id globally, without an owner filter.
func (n *DefaultNoteService) DeleteNote(id string) (*entity.Note, apierror.ErrorResponse) {
	note, err := n.NoteRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}
	if note == nil {
		return nil, apierror.NoteNotFoundError
	}

	if err := n.NoteRepo.Delete(note); err != nil {
		log.Errorf("failed to delete note: %v", err)
		return nil, apierror.InternalServerError
	}
	return note, nil
}

// UpdateStatus flips the status flag by id, without an owner filter,
// and returns whatever the post-update fetch finds (nil when absent).
func (n *DefaultNoteService) UpdateStatus(id string, status bool) (*entity.Note, apierror.ErrorResponse) {
	if err := n.NoteRepo.UpdateStatus(id, status, utils.NowUTC()); err != nil {
		log.Errorf("failed to update note status: %v", err)
		return nil, apierror.InternalServerError
	}

	note, err := n.NoteRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch note after status update: %v", err)
		return nil, apierror.InternalServerError
	}
	return note, nil
}
