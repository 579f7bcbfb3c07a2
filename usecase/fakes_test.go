package usecase

import (
	"context"
	"strings"
	"time"

	"gonotes/model"
)

// In-memory fakes satisfying the repository interfaces. They mirror the
// Mongo repositories' contracts: lookups return (nil, nil) when absent,
// search matches words in title or content, AddShare keeps membership
// unique.

type fakeUserRepo struct {
	users map[string]*model.User // keyed by user_id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) AddUser(_ context.Context, user *model.User) error {
	r.users[user.UserID] = user
	return nil
}

func (r *fakeUserRepo) FindUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindUserByID(_ context.Context, userID string) (*model.User, error) {
	if user, ok := r.users[userID]; ok {
		return user, nil
	}
	return nil, nil
}

type fakeNotesRepo struct {
	notes map[string]*model.Note // keyed by note id
}

func newFakeNotesRepo() *fakeNotesRepo {
	return &fakeNotesRepo{notes: make(map[string]*model.Note)}
}

func (r *fakeNotesRepo) CreateNote(_ context.Context, note *model.Note) error {
	stored := *note
	r.notes[note.ID] = &stored
	return nil
}

func (r *fakeNotesRepo) GetUserNotes(_ context.Context, userID string) ([]*model.Note, error) {
	result := []*model.Note{}
	for _, note := range r.notes {
		if note.UserID == userID {
			copied := *note
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeNotesRepo) FindNote(_ context.Context, noteID string) (*model.Note, error) {
	if note, ok := r.notes[noteID]; ok {
		copied := *note
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeNotesRepo) UpdateNote(_ context.Context, noteID, title, content string) error {
	note, ok := r.notes[noteID]
	if !ok {
		return nil
	}
	note.Title = title
	note.Content = content
	note.UpdatedAt = time.Now()
	return nil
}

func (r *fakeNotesRepo) DeleteNote(_ context.Context, noteID string) error {
	delete(r.notes, noteID)
	return nil
}

func (r *fakeNotesRepo) SearchNotes(_ context.Context, userID, query string) ([]*model.Note, error) {
	query = strings.ToLower(query)
	result := []*model.Note{}
	for _, note := range r.notes {
		if note.UserID != userID {
			continue
		}
		if strings.Contains(strings.ToLower(note.Title), query) ||
			strings.Contains(strings.ToLower(note.Content), query) {
			copied := *note
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeNotesRepo) AddShare(_ context.Context, noteID, targetUserID string) error {
	note, ok := r.notes[noteID]
	if !ok {
		return nil
	}
	for _, id := range note.SharedWith {
		if id == targetUserID {
			return nil
		}
	}
	note.SharedWith = append(note.SharedWith, targetUserID)
	return nil
}
