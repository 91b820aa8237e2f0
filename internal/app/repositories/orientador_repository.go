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
	orientadorSortFields = listing.Fields{
		"nome":         "nome",
		"email":        "email",
		"departamento": "departamento",
		"tipo":         "tipo",
		"status":       "status",
		"created_at":   "created_at",
	}
	orientadorSearchColumns = []string{"nome", "email"}
)

// orientadorPublicColumns is the restricted projection used everywhere
// except credential lookups: the senha columns never leave GetByEmail.
const orientadorPublicColumns = "id, nome, email, telefone, departamento, tipo, status, created_at, updated_at"

// OrientadorRepository handles database operations for advisor accounts
type OrientadorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewOrientadorRepository creates a new OrientadorRepository
func NewOrientadorRepository(db *pgxpool.Pool) *OrientadorRepository {
	return &OrientadorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanOrientadorPublic(row pgx.Row, extra ...interface{}) (*models.Orientador, error) {
	var o models.Orientador
	dest := []interface{}{
		&o.ID, &o.Nome, &o.Email, &o.Telefone, &o.Departamento,
		&o.Tipo, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &o, nil
}

// List retrieves advisors with filtering, sorting, and pagination
func (r *OrientadorRepository) List(ctx context.Context, filter dto.OrientadorFilter, sort *listing.Sort, page, limit int) ([]models.Orientador, int64, error) {
	orderBy, err := orientadorSortFields.OrderBy(sort, "nome ASC")
	if err != nil {
		return nil, 0, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, limit)

	query := r.sb.Select(orientadorPublicColumns).
		Column("COUNT(*) OVER()").
		From("orientadores")

	query = listing.ApplySearch(query, filter.Search, orientadorSearchColumns)
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

	orientadores := []models.Orientador{}
	var total int64
	for rows.Next() {
		o, err := scanOrientadorPublic(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		orientadores = append(orientadores, *o)
	}

	return orientadores, total, rows.Err()
}

// GetByID retrieves an advisor by ID, restricted projection.
func (r *OrientadorRepository) GetByID(ctx context.Context, id int64) (*models.Orientador, error) {
	sql, args, err := r.sb.Select(orientadorPublicColumns).
		From("orientadores").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	o, err := scanOrientadorPublic(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrientadorNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return o, nil
}

// GetByEmail retrieves an advisor by email including stored credentials.
// Only the auth service calls this.
func (r *OrientadorRepository) GetByEmail(ctx context.Context, email string) (*models.Orientador, error) {
	sql, args, err := r.sb.Select("id", "nome", "email", "telefone", "departamento", "tipo", "status",
		"COALESCE(senha, '')", "COALESCE(senha_hash, '')", "created_at", "updated_at").
		From("orientadores").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var o models.Orientador
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&o.ID, &o.Nome, &o.Email, &o.Telefone, &o.Departamento,
		&o.Tipo, &o.Status, &o.Senha, &o.SenhaHash,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrientadorNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &o, nil
}

// Create inserts a new advisor account. SenhaHash must already be hashed.
func (r *OrientadorRepository) Create(ctx context.Context, o *models.Orientador) error {
	sql, args, err := r.sb.Insert("orientadores").
		Columns("nome", "email", "telefone", "departamento", "tipo", "status", "senha_hash").
		Values(o.Nome, o.Email, o.Telefone, o.Departamento, o.Tipo, o.Status, helpers.StringPtr(o.SenhaHash)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

// CreateLegacy inserts an account on the legacy credential path, storing
// the SHA-256 digest in the senha column. Only the seeder uses this;
// regular provisioning goes through Create.
func (r *OrientadorRepository) CreateLegacy(ctx context.Context, o *models.Orientador) error {
	sql, args, err := r.sb.Insert("orientadores").
		Columns("nome", "email", "telefone", "departamento", "tipo", "status", "senha").
		Values(o.Nome, o.Email, o.Telefone, o.Departamento, o.Tipo, o.Status, o.Senha).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

// Update rewrites an advisor row and stamps updated_at. The senha_hash
// column is only touched when a new hash is present.
func (r *OrientadorRepository) Update(ctx context.Context, o *models.Orientador) error {
	update := r.sb.Update("orientadores").
		Set("nome", o.Nome).
		Set("email", o.Email).
		Set("telefone", o.Telefone).
		Set("departamento", o.Departamento).
		Set("tipo", o.Tipo).
		Set("status", o.Status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": o.ID})

	if o.SenhaHash != "" {
		update = update.Set("senha_hash", o.SenhaHash)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOrientadorNotFound
	}
	return nil
}

// Delete removes an advisor account by ID
func (r *OrientadorRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("orientadores").
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
		return apperrors.ErrOrientadorNotFound
	}
	return nil
}

// EmailExists checks whether an advisor email is already registered
func (r *OrientadorRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("orientadores").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return true, nil
}
