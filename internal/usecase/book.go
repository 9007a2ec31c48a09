package usecase

import (
	"booktracker/internal/entity"
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("book not found")
	ErrAlreadyRead = errors.New("book already marked as read")
)

// CreateBookInput holds the caller-supplied fields for a new book.
// Status is not part of the input: every new book starts as Pending.
type CreateBookInput struct {
	ISBN            *string
	Title           string
	Author          string
	PublicationYear *int
}

// Repository interface
// Defines the contract for the persistent book store.
type BookRepository interface {
	// Create persists a new book with status Pending and returns it with
	// its assigned id.
	Create(ctx context.Context, input CreateBookInput) (entity.Book, error)
	// ListAll returns every book ordered by ascending id.
	ListAll(ctx context.Context) ([]entity.Book, error)
	// GetByID returns the book or ErrNotFound.
	GetByID(ctx context.Context, id int64) (entity.Book, error)
	// MarkRead transitions status Pending -> Read with a single conditional
	// write. Returns ErrNotFound if no such book exists and ErrAlreadyRead
	// if it exists but is not Pending.
	MarkRead(ctx context.Context, id int64) (entity.Book, error)
	// Delete removes the book and reports whether a row was actually removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
