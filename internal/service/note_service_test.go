package service

import (
	"testing"

	"notekeeper/internal/contract"
	"notekeeper/internal/domain/sqlite"
	"notekeeper/internal/domain/sqlite/repository"
	"notekeeper/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func newNoteService(t *testing.T) (*DefaultNoteService, *repository.DefaultNoteRepository) {
	t.Helper()
	db, err := sqlite.Init(":memory:")
	require.NoError(t, err)

	repo := repository.NewNoteRepository(db)
	return NewNoteService(repo, validator.New()), repo
}

func TestCreateNoteValidation(t *testing.T) {
	svc, _ := newNoteService(t)

	_, apierr := svc.CreateNote("user-a", &contract.NoteRequest{Title: "", Content: "C"})
	require.Equal(t, apierror.MissingFieldsError, apierr)

	_, apierr = svc.CreateNote("user-a", &contract.NoteRequest{Title: "T", Content: ""})
	require.Equal(t, apierror.MissingFieldsError, apierr)
}

func TestNoteIsolation(t *testing.T) {
	svc, _ := newNoteService(t)

	a, apierr := svc.CreateNote("user-a", &contract.NoteRequest{Title: "Alpha", Content: "a"})
	require.Nil(t, apierr)
	_, apierr = svc.CreateNote("user-b", &contract.NoteRequest{Title: "Beta", Content: "b"})
	require.Nil(t, apierr)

	notesA, apierr := svc.GetNotes("user-a")
	require.Nil(t, apierr)
	require.Len(t, notesA, 1)
	require.Equal(t, a.ID, notesA[0].ID)

	notesB, apierr := svc.GetNotes("user-b")
	require.Nil(t, apierr)
	require.Len(t, notesB, 1)
	require.Equal(t, "Beta", notesB[0].Title)

	// A's note never shows up in B's search either.
	found, apierr := svc.SearchNotes("user-b", "alpha")
	require.Nil(t, apierr)
	require.Empty(t, found)
}

func TestSearchCaseInsensitive(t *testing.T) {
	svc, _ := newNoteService(t)

	note, apierr := svc.CreateNote("user-a", &contract.NoteRequest{Title: "Grocery List", Content: "milk"})
	require.Nil(t, apierr)

	for _, query := range []string{"grocery", "GROCERY", "Grocery", "ocery li"} {
		found, apierr := svc.SearchNotes("user-a", query)
		require.Nil(t, apierr)
		require.Len(t, found, 1, "query %q", query)
		require.Equal(t, note.ID, found[0].ID)
	}

	found, apierr := svc.SearchNotes("user-a", "laundry")
	require.Nil(t, apierr)
	require.Empty(t, found)
}

// TestUpdateIgnoresOwnership pins a preserved gap: updates address the
// note by id alone, so another user's id reaches the same row. The
// stored owner is untouched while the echoed response claims the
// requester.
func TestUpdateIgnoresOwnership(t *testing.T) {
	svc, repo := newNoteService(t)

	note, apierr := svc.CreateNote("user-a", &contract.NoteRequest{Title: "Mine", Content: "private"})
	require.Nil(t, apierr)

	echoed, apierr := svc.UpdateNote(note.ID, "user-b", &contract.NoteRequest{Title: "Taken", Content: "overwritten"})
	require.Nil(t, apierr)
	require.Equal(t, "user-b", echoed.UserID)

	stored, err := repo.FindByID(note.ID)
	require.NoError(t, err)
	require.Equal(t, "Taken", stored.Title)
	require.Equal(t, "overwritten", stored.Content)
	require.Equal(t, "user-a", stored.UserID)
}

// TestDeleteIgnoresOwnership pins the same gap for deletion: any
// authenticated user can remove any note by id.
func TestDeleteIgnoresOwnership(t *testing.T) {
	svc, repo := newNoteService(t)

	note, apierr := svc.CreateNote("user-a", &contract.NoteRequest{Title: "Mine", Content: "private"})
	require.Nil(t, apierr)

	deleted, apierr := svc.DeleteNote(note.ID)
	require.Nil(t, apierr)
	require.Equal(t, note.ID, deleted.ID)

	stored, err := repo.FindByID(note.ID)
	require.NoError(t, err)
	require.Nil(t, stored)
}

func TestDeleteMissingNote(t *testing.T) {
	svc, _ := newNoteService(t)

	_, apierr := svc.DeleteNote("no-such-id")
	require.Equal(t, apierror.NoteNotFoundError, apierr)
}

// TestUpdateStatusIgnoresOwnership pins the ownership gap on the
// status flag as well.
func TestUpdateStatusIgnoresOwnership(t *testing.T) {
	svc, repo := newNoteService(t)

	note, apierr := svc.CreateNote("user-a", &contract.NoteRequest{Title: "Mine", Content: "private"})
	require.Nil(t, apierr)
	require.False(t, note.Status)

	updated, apierr := svc.UpdateStatus(note.ID, true)
	require.Nil(t, apierr)
	require.True(t, updated.Status)

	stored, err := repo.FindByID(note.ID)
	require.NoError(t, err)
	require.True(t, stored.Status)
}

func TestUpdateStatusMissingNote(t *testing.T) {
	svc, _ := newNoteService(t)

	// Mirrors the original behavior: no 404, the response note is null.
	note, apierr := svc.UpdateStatus("no-such-id", true)
	require.Nil(t, apierr)
	require.Nil(t, note)
}
