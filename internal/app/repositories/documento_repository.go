package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ufvjm/estagiopro/internal/app/models"
	"github.com/ufvjm/estagiopro/internal/pkg/apperrors"
)

const documentoColumns = "id, estagio_id, tipo, nome_arquivo, url_arquivo, status, observacoes, created_at, updated_at"

// DocumentoRepository handles database operations for internship documents.
// Documents are always scoped to their parent internship.
type DocumentoRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDocumentoRepository creates a new DocumentoRepository
func NewDocumentoRepository(db *pgxpool.Pool) *DocumentoRepository {
	return &DocumentoRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanDocumento(row pgx.Row) (*models.EstagioDocumento, error) {
	var d models.EstagioDocumento
	err := row.Scan(&d.ID, &d.EstagioID, &d.Tipo, &d.NomeArquivo, &d.URLArquivo,
		&d.Status, &d.Observacoes, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListByEstagio retrieves every document of one internship, newest first
func (r *DocumentoRepository) ListByEstagio(ctx context.Context, estagioID int64) ([]models.EstagioDocumento, error) {
	sql, args, err := r.sb.Select(documentoColumns).
		From("estagio_documentos").
		Where(squirrel.Eq{"estagio_id": estagioID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	documentos := []models.EstagioDocumento{}
	for rows.Next() {
		d, err := scanDocumento(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		documentos = append(documentos, *d)
	}

	return documentos, rows.Err()
}

// GetByID retrieves a document scoped to its internship
func (r *DocumentoRepository) GetByID(ctx context.Context, estagioID, id int64) (*models.EstagioDocumento, error) {
	sql, args, err := r.sb.Select(documentoColumns).
		From("estagio_documentos").
		Where(squirrel.Eq{"id": id, "estagio_id": estagioID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	d, err := scanDocumento(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDocumentoNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return d, nil
}

// Create inserts a new document and fills in the server-assigned fields.
func (r *DocumentoRepository) Create(ctx context.Context, d *models.EstagioDocumento) error {
	sql, args, err := r.sb.Insert("estagio_documentos").
		Columns("estagio_id", "tipo", "nome_arquivo", "url_arquivo", "status", "observacoes").
		Values(d.EstagioID, d.Tipo, d.NomeArquivo, d.URLArquivo, d.Status, d.Observacoes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

// Update rewrites a document row and stamps updated_at
func (r *DocumentoRepository) Update(ctx context.Context, d *models.EstagioDocumento) error {
	sql, args, err := r.sb.Update("estagio_documentos").
		Set("tipo", d.Tipo).
		Set("nome_arquivo", d.NomeArquivo).
		Set("url_arquivo", d.URLArquivo).
		Set("status", d.Status).
		Set("observacoes", d.Observacoes).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": d.ID, "estagio_id": d.EstagioID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDocumentoNotFound
	}
	return nil
}

// Delete removes a document scoped to its internship
func (r *DocumentoRepository) Delete(ctx context.Context, estagioID, id int64) error {
	sql, args, err := r.sb.Delete("estagio_documentos").
		Where(squirrel.Eq{"id": id, "estagio_id": estagioID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDocumentoNotFound
	}
	return nil
}
