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
	estudanteSortFields = listing.Fields{
		"nome":       "nome",
		"email":      "email",
		"matricula":  "matricula",
		"curso":      "curso",
		"periodo":    "periodo",
		"status":     "status",
		"created_at": "created_at",
	}
	estudanteSearchColumns = []string{"nome", "email", "matricula"}
)

const estudanteColumns = "id, nome, email, telefone, cpf, matricula, curso, periodo, status, created_at, updated_at"

// EstudanteRepository handles database operations for students
type EstudanteRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEstudanteRepository creates a new EstudanteRepository
func NewEstudanteRepository(db *pgxpool.Pool) *EstudanteRepository {
	return &EstudanteRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanEstudante(row pgx.Row, extra ...interface{}) (*models.Estudante, error) {
	var e models.Estudante
	dest := []interface{}{
		&e.ID, &e.Nome, &e.Email, &e.Telefone, &e.CPF,
		&e.Matricula, &e.Curso, &e.Periodo, &e.Status,
		&e.CreatedAt, &e.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &e, nil
}

// List retrieves students with filtering, sorting, and pagination. The row
// count rides along on every row via a window function so one query serves
// both data and total.
func (r *EstudanteRepository) List(ctx context.Context, filter dto.EstudanteFilter, sort *listing.Sort, page, limit int) ([]models.Estudante, int64, error) {
	orderBy, err := estudanteSortFields.OrderBy(sort, "nome ASC")
	if err != nil {
		return nil, 0, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, limit)

	query := r.sb.Select(estudanteColumns).
		Column("COUNT(*) OVER()").
		From("estudantes")

	query = listing.ApplySearch(query, filter.Search, estudanteSearchColumns)
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

	estudantes := []models.Estudante{}
	var total int64
	for rows.Next() {
		e, err := scanEstudante(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		estudantes = append(estudantes, *e)
	}

	return estudantes, total, rows.Err()
}

// GetByID retrieves a student by ID
func (r *EstudanteRepository) GetByID(ctx context.Context, id int64) (*models.Estudante, error) {
	sql, args, err := r.sb.Select(estudanteColumns).
		From("estudantes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	e, err := scanEstudante(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEstudanteNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return e, nil
}

// Create inserts a new student and fills in the server-assigned fields.
func (r *EstudanteRepository) Create(ctx context.Context, e *models.Estudante) error {
	sql, args, err := r.sb.Insert("estudantes").
		Columns("nome", "email", "telefone", "cpf", "matricula", "curso", "periodo", "status").
		Values(e.Nome, e.Email, e.Telefone, e.CPF, e.Matricula, e.Curso, e.Periodo, e.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return err
	}
	return nil
}

// Update rewrites a student row and stamps updated_at.
func (r *EstudanteRepository) Update(ctx context.Context, e *models.Estudante) error {
	sql, args, err := r.sb.Update("estudantes").
		Set("nome", e.Nome).
		Set("email", e.Email).
		Set("telefone", e.Telefone).
		Set("cpf", e.CPF).
		Set("matricula", e.Matricula).
		Set("curso", e.Curso).
		Set("periodo", e.Periodo).
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
		return apperrors.ErrEstudanteNotFound
	}
	return nil
}

// Delete removes a student by ID
func (r *EstudanteRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("estudantes").
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
		return apperrors.ErrEstudanteNotFound
	}
	return nil
}
