package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
)

// CatalogDocument is a stored catalog document. Document holds the snappy
// compressed storage representation; Hash is the SHA-512 of its normalized
// JSON and identifies the content.
type CatalogDocument struct {
	DocumentID uuid.UUID    `db:"document_id"`
	Name       string       `db:"name"`
	Version    string       `db:"version"`
	Kind       string       `db:"kind"`
	Scheme     string       `db:"scheme"`
	Hash       string       `db:"hash"`
	Document   []byte       `db:"document"`
	Info       pgtype.JSONB `db:"info"`
	CreatedAt  time.Time    `db:"created_at"`
	UpdatedAt  time.Time    `db:"updated_at"`
}
