package usecase

import (
	"context"
	"strings"
	"time"

	"gonotes/apperr"
	"gonotes/model"
	"gonotes/utils"

	"github.com/google/uuid"
)

// NotesRepository is the note store as seen by the service layer.
// repository.NotesRepo satisfies it; tests use in-memory fakes.
type NotesRepository interface {
	CreateNote(ctx context.Context, note *model.Note) error
	GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error)
	FindNote(ctx context.Context, noteID string) (*model.Note, error)
	UpdateNote(ctx context.Context, noteID, title, content string) error
	DeleteNote(ctx context.Context, noteID string) error
	SearchNotes(ctx context.Context, userID, query string) ([]*model.Note, error)
	AddShare(ctx context.Context, noteID, targetUserID string) error
}

// NotesService enforces ownership for every by-id note operation.
// Listing and search never need a per-note check because the store
// pre-filters them by owner.
type NotesService struct {
	NotesRepo NotesRepository
	UsersRepo UserRepository
}

// getOwnedNote is the ownership check applied uniformly to read-by-id,
// update, delete and share. A missing note and a foreign note are both
// forbidden, so callers cannot probe which note ids exist.
func (svc *NotesService) getOwnedNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	note, err := svc.NotesRepo.FindNote(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil || note.UserID != userID {
		return nil, apperr.New(apperr.KindForbidden, "not authorized")
	}
	return note, nil
}

func (svc *NotesService) validateNote(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return apperr.New(apperr.KindValidation, "note title is required")
	}
	if strings.TrimSpace(content) == "" {
		return apperr.New(apperr.KindValidation, "note content is required")
	}
	return nil
}

// CreateNote stores a new note owned by userID.
func (svc *NotesService) CreateNote(ctx context.Context, userID, title, content string) (*model.Note, error) {
	if err := svc.validateNote(title, content); err != nil {
		return nil, err
	}

	now := time.Now()
	note := &model.Note{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := svc.NotesRepo.CreateNote(ctx, note); err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("create")
	return note, nil
}

// GetUserNotes lists the caller's own notes. Notes shared with the
// caller by others are never included.
func (svc *NotesService) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	return svc.NotesRepo.GetUserNotes(ctx, userID)
}

// GetNote returns a note by id after the ownership check.
func (svc *NotesService) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	return svc.getOwnedNote(ctx, noteID, userID)
}

// UpdateNote overwrites title and content of an owned note. Both fields
// are replaced unconditionally; there is no partial update.
func (svc *NotesService) UpdateNote(ctx context.Context, noteID, userID, title, content string) (*model.Note, error) {
	note, err := svc.getOwnedNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	if err := svc.validateNote(title, content); err != nil {
		return nil, err
	}

	if err := svc.NotesRepo.UpdateNote(ctx, noteID, title, content); err != nil {
		return nil, err
	}

	note.Title = title
	note.Content = content
	note.UpdatedAt = time.Now()

	utils.TrackNoteOperation("update")
	return note, nil
}

// DeleteNote removes an owned note permanently. Deleting the same id
// again fails the ownership lookup and comes back forbidden.
func (svc *NotesService) DeleteNote(ctx context.Context, noteID, userID string) error {
	if _, err := svc.getOwnedNote(ctx, noteID, userID); err != nil {
		return err
	}

	if err := svc.NotesRepo.DeleteNote(ctx, noteID); err != nil {
		return err
	}

	utils.TrackNoteOperation("delete")
	return nil
}

// SearchNotes runs a relevance search over the caller's own notes. A
// blank query matches nothing and returns an empty result without
// touching the index.
func (svc *NotesService) SearchNotes(ctx context.Context, userID, query string) ([]*model.Note, error) {
	if strings.TrimSpace(query) == "" {
		return []*model.Note{}, nil
	}

	utils.TrackNoteOperation("search")
	return svc.NotesRepo.SearchNotes(ctx, userID, query)
}

// ShareNote records that the owner made the note visible to another
// user. Only the owner may share; the target account must exist at
// share time. Sharing is additive and idempotent: a repeat share of the
// same user is a successful no-op, and no operation ever removes or
// consumes the grant.
func (svc *NotesService) ShareNote(ctx context.Context, noteID, ownerID, targetUserID string) (*model.Note, error) {
	note, err := svc.getOwnedNote(ctx, noteID, ownerID)
	if err != nil {
		return nil, err
	}

	target, err := svc.UsersRepo.FindUserByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}

	for _, id := range note.SharedWith {
		if id == targetUserID {
			return note, nil
		}
	}

	if err := svc.NotesRepo.AddShare(ctx, noteID, targetUserID); err != nil {
		return nil, err
	}

	note.SharedWith = append(note.SharedWith, targetUserID)
	note.UpdatedAt = time.Now()

	utils.TrackNoteOperation("share")
	return note, nil
}
