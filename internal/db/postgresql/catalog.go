package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/mugiliam/contentcatalog/internal/db/dberror"
	"github.com/mugiliam/contentcatalog/internal/db/models"
	"github.com/rs/zerolog/log"
)

const uniqueViolation = "23505"

// nullInfo marks an unset info column as SQL NULL; pgtype refuses to encode
// an undefined value.
func nullInfo(doc *models.CatalogDocument) {
	if doc.Info.Status == pgtype.Undefined {
		doc.Info = pgtype.JSONB{Status: pgtype.Null}
	}
}

// CreateCatalogDocument inserts a new document.
// If a document with the same name already exists, it returns an error.
func (h *catalogDb) CreateCatalogDocument(ctx context.Context, doc *models.CatalogDocument) error {
	if doc.Name == "" || doc.Hash == "" {
		return dberror.ErrInvalidInput.Msg("name and hash are required")
	}
	doc.DocumentID = uuid.New()
	nullInfo(doc)

	query := `
		INSERT INTO catalog_documents (document_id, name, version, kind, scheme, hash, document, info)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at;`

	err := h.conn().QueryRow(ctx, query, doc.DocumentID, doc.Name, doc.Version, doc.Kind, doc.Scheme, doc.Hash, doc.Document, doc.Info).
		Scan(&doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			log.Ctx(ctx).Info().Str("name", doc.Name).Msg("catalog document already exists")
			return dberror.ErrAlreadyExists.Msg("catalog document already exists")
		}
		log.Ctx(ctx).Error().Err(err).Str("name", doc.Name).Msg("failed to insert catalog document")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

// UpsertCatalogDocument stores doc under its name. An existing document
// with the same hash is left untouched and changed is false.
func (h *catalogDb) UpsertCatalogDocument(ctx context.Context, doc *models.CatalogDocument) (changed bool, err error) {
	if doc.Name == "" || doc.Hash == "" {
		return false, dberror.ErrInvalidInput.Msg("name and hash are required")
	}
	if doc.DocumentID == uuid.Nil {
		doc.DocumentID = uuid.New()
	}
	nullInfo(doc)

	query := `
		INSERT INTO catalog_documents (document_id, name, version, kind, scheme, hash, document, info)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (name) DO UPDATE
		SET version = EXCLUDED.version, kind = EXCLUDED.kind, scheme = EXCLUDED.scheme,
			hash = EXCLUDED.hash, document = EXCLUDED.document, info = EXCLUDED.info, updated_at = NOW()
		WHERE catalog_documents.hash <> EXCLUDED.hash
		RETURNING document_id, created_at, updated_at;`

	err = h.conn().QueryRow(ctx, query, doc.DocumentID, doc.Name, doc.Version, doc.Kind, doc.Scheme, doc.Hash, doc.Document, doc.Info).
		Scan(&doc.DocumentID, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Ctx(ctx).Debug().Str("name", doc.Name).Msg("catalog document unchanged")
			return false, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("name", doc.Name).Msg("failed to upsert catalog document")
		return false, dberror.ErrDatabase.Err(err)
	}
	return true, nil
}

// GetCatalogDocument retrieves a document by name.
func (h *catalogDb) GetCatalogDocument(ctx context.Context, name string) (*models.CatalogDocument, error) {
	if name == "" {
		return nil, dberror.ErrInvalidInput.Msg("name must be provided")
	}

	query := `
		SELECT document_id, name, version, kind, scheme, hash, document, info, created_at, updated_at
		FROM catalog_documents
		WHERE name = $1;`

	doc := &models.CatalogDocument{}
	err := h.conn().QueryRow(ctx, query, name).
		Scan(&doc.DocumentID, &doc.Name, &doc.Version, &doc.Kind, &doc.Scheme, &doc.Hash, &doc.Document, &doc.Info, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Ctx(ctx).Debug().Str("name", name).Msg("catalog document not found")
			return nil, dberror.ErrNotFound.Msg("catalog document not found")
		}
		log.Ctx(ctx).Error().Err(err).Str("name", name).Msg("failed to retrieve catalog document")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return doc, nil
}

// ListCatalogDocuments returns every stored document ordered by name.
func (h *catalogDb) ListCatalogDocuments(ctx context.Context) ([]models.CatalogDocument, error) {
	query := `
		SELECT document_id, name, version, kind, scheme, hash, document, info, created_at, updated_at
		FROM catalog_documents
		ORDER BY name;`

	rows, err := h.conn().Query(ctx, query)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list catalog documents")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var docs []models.CatalogDocument
	for rows.Next() {
		var doc models.CatalogDocument
		if err := rows.Scan(&doc.DocumentID, &doc.Name, &doc.Version, &doc.Kind, &doc.Scheme, &doc.Hash, &doc.Document, &doc.Info, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, dberror.ErrDatabase.Err(err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return docs, nil
}

// DeleteCatalogDocument deletes a document by name.
func (h *catalogDb) DeleteCatalogDocument(ctx context.Context, name string) error {
	if name == "" {
		return dberror.ErrInvalidInput.Msg("name must be provided")
	}
	tag, err := h.conn().Exec(ctx, `DELETE FROM catalog_documents WHERE name = $1;`, name)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("name", name).Msg("failed to delete catalog document")
		return dberror.ErrDatabase.Err(err)
	}
	if tag.RowsAffected() == 0 {
		return dberror.ErrNotFound.Msg("catalog document not found")
	}
	return nil
}
