package handler

import (
	"net/http"

	"notekeeper/internal/contract"
	"notekeeper/internal/domain/entity"
	"notekeeper/internal/utils"
	"notekeeper/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type NoteService interface {
	CreateNote(userID string, req *contract.NoteRequest) (*entity.Note, apierror.ErrorResponse)
	GetNotes(userID string) ([]*entity.Note, apierror.ErrorResponse)
	SearchNotes(userID, query string) ([]*entity.Note, apierror.ErrorResponse)
	UpdateNote(id, userID string, req *contract.NoteRequest) (*entity.Note, apierror.ErrorResponse)
	DeleteNote(id string) (*entity.Note, apierror.ErrorResponse)
	UpdateStatus(id string, status bool) (*entity.Note, apierror.ErrorResponse)
}

type DefaultNoteRoute struct {
	NoteService NoteService
}

func NewNoteDefault(noteService NoteService) *DefaultNoteRoute {
	return &DefaultNoteRoute{NoteService: noteService}
}

func (n *DefaultNoteRoute) GetNotes(c echo.Context) error {
	userID, cerr := utils.GetUserIDFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	notes, apierr := n.NoteService.GetNotes(userID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, notes)
}

func (n *DefaultNoteRoute) SearchNotes(c echo.Context) error {
	userID, cerr := utils.GetUserIDFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	notes, apierr := n.NoteService.SearchNotes(userID, c.Param("query"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, notes)
}

func (n *DefaultNoteRoute) CreateNote(c echo.Context) error {
	userID, cerr := utils.GetUserIDFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.NoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	note, apierr := n.NoteService.CreateNote(userID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "Note Added successfully!", "note": note}
	return c.JSON(http.StatusCreated, &resp)
}

func (n *DefaultNoteRoute) UpdateNote(c echo.Context) error {
	userID, cerr := utils.GetUserIDFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.NoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	note, apierr := n.NoteService.UpdateNote(c.Param("id"), userID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "Note Updated successfully!", "note": note}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNoteRoute) DeleteNote(c echo.Context) error {
	if _, cerr := utils.GetUserIDFromContext(c); cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	note, apierr := n.NoteService.DeleteNote(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "Note deleted successfully!", "note": note}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNoteRoute) UpdateStatus(c echo.Context) error {
	if _, cerr := utils.GetUserIDFromContext(c); cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	note, apierr := n.NoteService.UpdateStatus(c.Param("id"), req.Status)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "Status updated successfully", "note": note}
	return c.JSON(http.StatusOK, &resp)
}
