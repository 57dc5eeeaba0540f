package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Document kinds.
const (
	KindResume = "resume"
	KindJob    = "job"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

// Document is a stored resume or job posting. Identity is the row id;
// deduplication is by the content hash of normalized text.
type Document struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Text      string    `json:"text"`
	Filename  string    `json:"filename,omitempty"`
	Company   string    `json:"company,omitempty"`
	Role      string    `json:"role,omitempty"`
	SourceURL string    `json:"source_url,omitempty"`
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"created_at"`
}

// DocumentMeta is the source metadata recorded alongside a document.
type DocumentMeta struct {
	Filename  string
	Company   string
	Role      string
	SourceURL string
}

// HashText returns the SHA-256 content hash used as the dedup key. Callers
// pass normalized text (see ingestion.NormalizeText); the store hashes what
// it is given.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

const documentColumns = `id, kind, text, filename, company, role, source_url, hash, created_at`

func scanDocument(row pgx.Row) (*Document, error) {
	var d Document
	err := row.Scan(&d.ID, &d.Kind, &d.Text, &d.Filename, &d.Company, &d.Role, &d.SourceURL, &d.Hash, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan document: %w", err)
	}
	return &d, nil
}

// UpsertDocument stores a document keyed by the content hash of text.
// If a document with the same hash already exists its record is returned
// with created=false; otherwise a new record is inserted and created=true.
// A concurrent insert of the same content surfaces as a unique violation,
// which is retried once by reading the now-visible row.
func (s *Store) UpsertDocument(ctx context.Context, kind, text string, meta DocumentMeta) (*Document, bool, error) {
	doc, created, err := s.insertDocument(ctx, kind, text, meta)
	var conflict *StoreConflictError
	if errors.As(err, &conflict) {
		existing, lookupErr := s.GetDocumentByHash(ctx, conflict.Hash)
		if lookupErr != nil {
			return nil, false, lookupErr
		}
		if existing != nil {
			return existing, false, nil
		}
		return nil, false, err
	}
	return doc, created, err
}

func (s *Store) insertDocument(ctx context.Context, kind, text string, meta DocumentMeta) (*Document, bool, error) {
	hash := HashText(text)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	existing, err := scanDocument(tx.QueryRow(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE hash = $1`, hash))
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	doc, err := scanDocument(tx.QueryRow(ctx,
		`INSERT INTO documents (kind, text, filename, company, role, source_url, hash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+documentColumns,
		kind, text, meta.Filename, meta.Company, meta.Role, meta.SourceURL, hash))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, false, &StoreConflictError{Hash: hash, Cause: err}
		}
		return nil, false, fmt.Errorf("failed to insert document: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("failed to commit document insert: %w", err)
	}
	return doc, true, nil
}

// GetDocument retrieves a document by id. Returns nil when absent.
func (s *Store) GetDocument(ctx context.Context, id uuid.UUID) (*Document, error) {
	return scanDocument(s.pool.QueryRow(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE id = $1`, id))
}

// GetDocumentByHash retrieves a document by its content hash. Returns nil
// when absent.
func (s *Store) GetDocumentByHash(ctx context.Context, hash string) (*Document, error) {
	return scanDocument(s.pool.QueryRow(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE hash = $1`, hash))
}

// ListDocuments retrieves documents of one kind, newest first. A non-empty
// contains filters on company, role or filename by substring.
func (s *Store) ListDocuments(ctx context.Context, kind, contains string, limit int) ([]Document, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + documentColumns + ` FROM documents WHERE kind = $1`
	args := []any{kind}
	if contains != "" {
		query += ` AND (company ILIKE $2 OR role ILIKE $2 OR filename ILIKE $2)`
		args = append(args, "%"+contains+"%")
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Kind, &d.Text, &d.Filename, &d.Company, &d.Role, &d.SourceURL, &d.Hash, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
