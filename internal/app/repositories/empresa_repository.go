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
	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/pkg/apperrors"
	"github.com/ufvjm/estagiopro/internal/pkg/helpers"
	"github.com/ufvjm/estagiopro/internal/pkg/listing"
)

var (
	empresaSortFields = listing.Fields{
		"nome":       "nome",
		"cnpj":       "cnpj",
		"email":      "email",
		"cidade":     "cidade",
		"estado":     "estado",
		"status":     "status",
		"created_at": "created_at",
	}
	empresaSearchColumns = []string{"nome", "cnpj", "email"}
)

const empresaColumns = "id, nome, cnpj, email, telefone, endereco, cidade, estado, cep, representante, status, created_at, updated_at"

// EmpresaRepository handles database operations for companies
type EmpresaRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEmpresaRepository creates a new EmpresaRepository
func NewEmpresaRepository(db *pgxpool.Pool) *EmpresaRepository {
	return &EmpresaRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanEmpresa(row pgx.Row, extra ...interface{}) (*models.Empresa, error) {
	var e models.Empresa
	dest := []interface{}{
		&e.ID, &e.Nome, &e.CNPJ, &e.Email, &e.Telefone,
		&e.Endereco, &e.Cidade, &e.Estado, &e.CEP, &e.Representante,
		&e.Status, &e.CreatedAt, &e.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &e, nil
}

// List retrieves companies with filtering, sorting, and pagination
func (r *EmpresaRepository) List(ctx context.Context, filter dto.EmpresaFilter, sort *listing.Sort, page, limit int) ([]models.Empresa, int64, error) {
	orderBy, err := empresaSortFields.OrderBy(sort, "nome ASC")
	if err != nil {
		return nil, 0, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, limit)

	query := r.sb.Select(empresaColumns).
		Column("COUNT(*) OVER()").
		From("empresas")

	query = listing.ApplySearch(query, filter.Search, empresaSearchColumns)
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
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

	empresas := []models.Empresa{}
	var total int64
	for rows.Next() {
		e, err := scanEmpresa(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		empresas = append(empresas, *e)
	}

	return empresas, total, rows.Err()
}

// GetByID retrieves a company by ID
func (r *EmpresaRepository) GetByID(ctx context.Context, id int64) (*models.Empresa, error) {
	sql, args, err := r.sb.Select(empresaColumns).
		From("empresas").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	e, err := scanEmpresa(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmpresaNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return e, nil
}

// Create inserts a new company and fills in the server-assigned fields.
func (r *EmpresaRepository) Create(ctx context.Context, e *models.Empresa) error {
	sql, args, err := r.sb.Insert("empresas").
		Columns("nome", "cnpj", "email", "telefone", "endereco", "cidade", "estado", "cep", "representante", "status").
		Values(e.Nome, e.CNPJ, e.Email, e.Telefone, e.Endereco, e.Cidade, e.Estado, e.CEP, e.Representante, e.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// Update rewrites a company row and stamps updated_at.
func (r *EmpresaRepository) Update(ctx context.Context, e *models.Empresa) error {
	sql, args, err := r.sb.Update("empresas").
		Set("nome", e.Nome).
		Set("cnpj", e.CNPJ).
		Set("email", e.Email).
		Set("telefone", e.Telefone).
		Set("endereco", e.Endereco).
		Set("cidade", e.Cidade).
		Set("estado", e.Estado).
		Set("cep", e.CEP).
		Set("representante", e.Representante).
		Set("status", e.Status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEmpresaNotFound
	}
	return nil
}

// Delete removes a company by ID
func (r *EmpresaRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("empresas").
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
		return apperrors.ErrEmpresaNotFound
	}
	return nil
}
