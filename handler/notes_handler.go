package handler

import (
	"gonotes/apperr"
	"gonotes/dto"
	"gonotes/usecase"
	"gonotes/utils"

	"github.com/gin-gonic/gin"
)

// GetUserNotesHandler lists the caller's own notes. Notes shared with
// the caller by other users never appear here.
func GetUserNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")

	notes, err := notesService.GetUserNotes(c.Request.Context(), userID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, dto.ToNoteResponses(notes))
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, apperr.Wrap(apperr.KindValidation, "title and content are required", err))
		return
	}

	note, err := notesService.CreateNote(c.Request.Context(), userID, req.Title, req.Content)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Created(c, dto.ToNoteResponse(note))
}

func GetNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	note, err := notesService.GetNote(c.Request.Context(), noteID, userID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, apperr.Wrap(apperr.KindValidation, "title and content are required", err))
		return
	}

	note, err := notesService.UpdateNote(c.Request.Context(), noteID, userID, req.Title, req.Content)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	if err := notesService.DeleteNote(c.Request.Context(), noteID, userID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessMessage(c, "note deleted")
}

// SearchNotesHandler searches the caller's notes by relevance. An empty
// q matches nothing.
func SearchNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")
	query := c.Query("q")

	notes, err := notesService.SearchNotes(c.Request.Context(), userID, query)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, dto.ToNoteResponses(notes))
}

// ShareNoteHandler grants another user visibility of an owned note.
// Sharing the same user twice is a success no-op.
func ShareNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	var req dto.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, apperr.Wrap(apperr.KindValidation, "userId is required", err))
		return
	}

	note, err := notesService.ShareNote(c.Request.Context(), noteID, userID, req.UserID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, gin.H{
		"message": "note shared successfully",
		"note":    dto.ToNoteResponse(note),
	})
}
