package store

// Repository implementation (Postgres)

import (
	"booktracker/internal/entity"
	"booktracker/internal/usecase"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookColumns = "id, isbn, title, author, publication_year, status"

type BookPG struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db, timeout: 5 * time.Second}
}

func (r *BookPG) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// EnsureSchema creates the books table if it does not exist yet. Safe to run
// on every startup; cmd/migrate carries the same schema for managed setups.
func (r *BookPG) EnsureSchema(ctx context.Context) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS books (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		isbn TEXT,
		title TEXT NOT NULL,
		author TEXT NOT NULL,
		publication_year INTEGER,
		status TEXT NOT NULL DEFAULT 'Pending'
	)
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, ddl)
	return err
}

func (r *BookPG) Create(ctx context.Context, input usecase.CreateBookInput) (entity.Book, error) {
	const query = `
	INSERT INTO books (isbn, title, author, publication_year, status)
	VALUES ($1, $2, $3, $4, 'Pending')
	RETURNING ` + bookColumns

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b entity.Book
	err := r.db.QueryRow(timeoutCtx, query,
		input.ISBN, input.Title, input.Author, input.PublicationYear,
	).Scan(&b.ID, &b.ISBN, &b.Title, &b.Author, &b.PublicationYear, &b.Status)
	if err != nil {
		return entity.Book{}, err
	}
	return b, nil
}

func (r *BookPG) ListAll(ctx context.Context) ([]entity.Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books ORDER BY id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []entity.Book{}
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.ISBN, &b.Title, &b.Author, &b.PublicationYear, &b.Status); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *BookPG) GetByID(ctx context.Context, id int64) (entity.Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b entity.Book
	err := r.db.QueryRow(timeoutCtx, query, id).
		Scan(&b.ID, &b.ISBN, &b.Title, &b.Author, &b.PublicationYear, &b.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, usecase.ErrNotFound
	}
	if err != nil {
		return entity.Book{}, err
	}
	return b, nil
}

// MarkRead is a single conditional write: the Pending gate lives in the WHERE
// clause, so two concurrent calls on the same book yield exactly one success.
func (r *BookPG) MarkRead(ctx context.Context, id int64) (entity.Book, error) {
	const query = `
	UPDATE books
	SET status = 'Read'
	WHERE id = $1 AND status = 'Pending'
	RETURNING ` + bookColumns

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b entity.Book
	err := r.db.QueryRow(timeoutCtx, query, id).
		Scan(&b.ID, &b.ISBN, &b.Title, &b.Author, &b.PublicationYear, &b.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		// Zero rows means either the book is missing or it is past Pending.
		// The probe only classifies the failure; the gate above stays atomic.
		return entity.Book{}, r.classifyMarkReadMiss(ctx, id)
	}
	if err != nil {
		return entity.Book{}, err
	}
	return b, nil
}

func (r *BookPG) classifyMarkReadMiss(ctx context.Context, id int64) error {
	const query = `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var exists bool
	if err := r.db.QueryRow(timeoutCtx, query, id).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return usecase.ErrAlreadyRead
	}
	return usecase.ErrNotFound
}

func (r *BookPG) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM books WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	commandTag, err := r.db.Exec(timeoutCtx, query, id)
	if err != nil {
		return false, err
	}
	return commandTag.RowsAffected() > 0, nil
}
