package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"booktracker/internal/httpx"
	"booktracker/internal/usecase"
)

type BookHandler struct {
	repo usecase.BookRepository
}

func NewBookHandler(repo usecase.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

// saveBookRequest deliberately has no status field: whatever the caller
// sends, a new book always starts as Pending.
type saveBookRequest struct {
	ISBN            *string `json:"isbn"`
	Title           string  `json:"title" validate:"required"`
	Author          string  `json:"author" validate:"required"`
	PublicationYear *int    `json:"publication_year" validate:"omitempty,lte=2026"`
}

// Save persists a new book with status Pending and returns it with its
// assigned id.
func (h *BookHandler) Save(w http.ResponseWriter, r *http.Request) {
	var input saveBookRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := ValidateStruct(input); len(validationErrors) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	book, err := h.repo.Create(r.Context(), usecase.CreateBookInput{
		ISBN:            input.ISBN,
		Title:           input.Title,
		Author:          input.Author,
		PublicationYear: input.PublicationYear,
	})
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save book", nil)
		return
	}

	httpx.JSONSuccessCreated(w, book)
}

// List returns every saved book in creation order.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.repo.ListAll(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve books", nil)
		return
	}

	httpx.JSONSuccess(w, books, nil)
}

// MarkRead transitions a book from Pending to Read.
func (h *BookHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := bookIDFromPath(w, r)
	if !ok {
		return
	}

	book, err := h.repo.MarkRead(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, usecase.ErrAlreadyRead):
			httpx.JSONError(w, http.StatusConflict, "ALREADY_READ", "Book already marked as read", nil)
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update book", nil)
		}
		return
	}

	httpx.JSONSuccess(w, book, nil)
}

// Delete removes a book entry.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := bookIDFromPath(w, r)
	if !ok {
		return
	}

	deleted, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete book", nil)
		return
	}
	if !deleted {
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}

	httpx.JSONSuccess(w, nil, map[string]string{"message": "Book deleted successfully"})
}

// bookIDFromPath extracts the numeric id from /api/books/{id}. It writes the
// error response itself so handlers can bail out with a plain return.
func bookIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	const prefix = "/api/books/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		http.NotFound(w, r)
		return 0, false
	}
	raw := strings.TrimPrefix(r.URL.Path, prefix)
	if raw == "" || strings.Contains(raw, "/") {
		http.NotFound(w, r)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid book id", nil)
		return 0, false
	}
	return id, true
}
