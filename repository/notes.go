package repository

import (
	"context"
	"fmt"
	"os"
	"time"

	"gonotes/apperr"
	"gonotes/model"
	"gonotes/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client) *NotesRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "gonotes")
	collectionName := utils.GetEnvAsString("NOTES_COLLECTION", "notes")
	if os.Getenv("GO_ENV") == "test" {
		dbName = utils.GetEnvAsString("MONGO_DB_TEST", dbName+"_test")
	}
	return &NotesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateNote inserts a note. The caller has already assigned the id,
// owner and timestamps.
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, note)
	if err != nil {
		utils.TrackError("database", "note_creation_failed")
		return fmt.Errorf("failed to create note: %w", err)
	}

	return nil
}

// GetUserNotes returns all notes owned by userID, newest first. Notes
// merely shared with the user are deliberately not included; no read
// path consumes shared_with.
func (r *NotesRepo) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "notes_lookup_error")
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	return notes, nil
}

// FindNote fetches a note by id without any owner filter; ownership is
// the access layer's decision. Returns (nil, nil) when absent.
func (r *NotesRepo) FindNote(ctx context.Context, noteID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": noteID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "note_lookup_error")
		return nil, fmt.Errorf("failed to find note: %w", err)
	}
	return &note, nil
}

// UpdateNote overwrites title and content unconditionally and refreshes
// the modification timestamp. There is no partial update and no version
// check; concurrent writers are last-write-wins.
func (r *NotesRepo) UpdateNote(ctx context.Context, noteID, title, content string) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	update := bson.M{
		"$set": bson.M{
			"title":      title,
			"content":    content,
			"updated_at": time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": noteID}, update)
	if err != nil {
		utils.TrackError("database", "note_update_failed")
		return fmt.Errorf("failed to update note: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperr.New(apperr.KindNotFound, "note not found")
	}

	return nil
}

// DeleteNote removes a note permanently.
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": noteID})
	if err != nil {
		utils.TrackError("database", "note_deletion_failed")
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperr.New(apperr.KindNotFound, "note not found")
	}

	return nil
}

// SearchNotes runs a relevance-ranked $text search over the weighted
// title/content index, pre-filtered to the caller's own notes.
func (r *NotesRepo) SearchNotes(ctx context.Context, userID, query string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id": userID,
		"$text":   bson.M{"$search": query},
	}

	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}})

	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "note_search_failed")
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return notes, nil
}

// AddShare appends a user id to the note's shared_with set. $addToSet
// makes repeat shares a no-op, so the membership stays unique without a
// separate read-modify-write cycle.
func (r *NotesRepo) AddShare(ctx context.Context, noteID, targetUserID string) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	update := bson.M{
		"$addToSet": bson.M{"shared_with": targetUserID},
		"$set":      bson.M{"updated_at": time.Now()},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": noteID}, update)
	if err != nil {
		utils.TrackError("database", "note_share_failed")
		return fmt.Errorf("failed to share note: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperr.New(apperr.KindNotFound, "note not found")
	}

	return nil
}
