package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ufvjm/estagiopro/internal/app/models"
	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/pkg/apperrors"
	"github.com/ufvjm/estagiopro/internal/pkg/helpers"
	"github.com/ufvjm/estagiopro/internal/pkg/listing"
)

var certificadoSortFields = listing.Fields{
	"data_emissao":       "c.data_emissao",
	"numero_certificado": "c.numero_certificado",
	"created_at":         "c.created_at",
}

const certificadoColumns = "c.id, c.estudante_id, c.estagio_id, c.tipo, c.numero_certificado, c.data_emissao, c.url_arquivo, c.created_at, c.updated_at"

// CertificadoRepository handles database operations for certificates
type CertificadoRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCertificadoRepository creates a new CertificadoRepository
func NewCertificadoRepository(db *pgxpool.Pool) *CertificadoRepository {
	return &CertificadoRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCertificado(row pgx.Row, extra ...interface{}) (*models.Certificado, error) {
	var (
		c   models.Certificado
		est models.Estudante
	)
	dest := []interface{}{
		&c.ID, &c.EstudanteID, &c.EstagioID, &c.Tipo, &c.NumeroCertificado,
		&c.DataEmissao, &c.URLArquivo, &c.CreatedAt, &c.UpdatedAt,
		&est.ID, &est.Nome, &est.Email, &est.Telefone, &est.CPF,
		&est.Matricula, &est.Curso, &est.Periodo, &est.Status,
		&est.CreatedAt, &est.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	c.Estudante = &est
	return &c, nil
}

func (r *CertificadoRepository) joinedSelect() squirrel.SelectBuilder {
	return r.sb.Select(certificadoColumns + ", " +
		"est.id, est.nome, est.email, est.telefone, est.cpf, est.matricula, est.curso, est.periodo, est.status, est.created_at, est.updated_at").
		From("certificados c").
		Join("estudantes est ON est.id = c.estudante_id")
}

// List retrieves certificates with filtering, sorting, and pagination,
// each row joined with its student.
func (r *CertificadoRepository) List(ctx context.Context, filter dto.CertificadoFilter, sort *listing.Sort, page, limit int) ([]models.Certificado, int64, error) {
	orderBy, err := certificadoSortFields.OrderBy(sort, "c.data_emissao DESC")
	if err != nil {
		return nil, 0, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, limit)

	query := r.joinedSelect().Column("COUNT(*) OVER()")

	if filter.EstudanteID > 0 {
		query = query.Where(squirrel.Eq{"c.estudante_id": filter.EstudanteID})
	}
	if filter.Tipo != "" {
		query = query.Where(squirrel.Eq{"c.tipo": filter.Tipo})
	}

	query = query.OrderBy(orderBy).Limit(uint64(limit)).Offset(offset)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	certificados := []models.Certificado{}
	var total int64
	for rows.Next() {
		c, err := scanCertificado(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		certificados = append(certificados, *c)
	}

	return certificados, total, rows.Err()
}

// GetByID retrieves a certificate by ID with its student joined
func (r *CertificadoRepository) GetByID(ctx context.Context, id int64) (*models.Certificado, error) {
	sql, args, err := r.joinedSelect().
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	c, err := scanCertificado(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCertificadoNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return c, nil
}

// Create inserts a new certificate and fills in the server-assigned fields.
func (r *CertificadoRepository) Create(ctx context.Context, c *models.Certificado) error {
	sql, args, err := r.sb.Insert("certificados").
		Columns("estudante_id", "estagio_id", "tipo", "numero_certificado", "data_emissao", "url_arquivo").
		Values(c.EstudanteID, c.EstagioID, c.Tipo, c.NumeroCertificado, c.DataEmissao, c.URLArquivo).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// Delete removes a certificate by ID
func (r *CertificadoRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("certificados").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCertificadoNotFound
	}
	return nil
}
