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

var alertaSortFields = listing.Fields{
	"prioridade":      "prioridade",
	"status":          "status",
	"data_vencimento": "data_vencimento",
	"created_at":      "created_at",
}

const alertaColumns = "id, tipo, prioridade, titulo, mensagem, destinatario_id, destinatario_tipo, status, data_vencimento, created_at, updated_at"

// AlertaRepository handles database operations for alerts
type AlertaRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAlertaRepository creates a new AlertaRepository
func NewAlertaRepository(db *pgxpool.Pool) *AlertaRepository {
	return &AlertaRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanAlerta(row pgx.Row, extra ...interface{}) (*models.Alerta, error) {
	var a models.Alerta
	dest := []interface{}{
		&a.ID, &a.Tipo, &a.Prioridade, &a.Titulo, &a.Mensagem,
		&a.DestinatarioID, &a.DestinatarioTipo, &a.Status,
		&a.DataVencimento, &a.CreatedAt, &a.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &a, nil
}

// List retrieves alerts with filtering, sorting, and pagination
func (r *AlertaRepository) List(ctx context.Context, filter dto.AlertaFilter, sort *listing.Sort, page, limit int) ([]models.Alerta, int64, error) {
	orderBy, err := alertaSortFields.OrderBy(sort, "created_at DESC")
	if err != nil {
		return nil, 0, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, limit)

	query := r.sb.Select(alertaColumns).
		Column("COUNT(*) OVER()").
		From("alertas")

	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Tipo != "" {
		query = query.Where(squirrel.Eq{"tipo": filter.Tipo})
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

	alertas := []models.Alerta{}
	var total int64
	for rows.Next() {
		a, err := scanAlerta(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		alertas = append(alertas, *a)
	}

	return alertas, total, rows.Err()
}

// GetByID retrieves an alert by ID
func (r *AlertaRepository) GetByID(ctx context.Context, id int64) (*models.Alerta, error) {
	sql, args, err := r.sb.Select(alertaColumns).
		From("alertas").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	a, err := scanAlerta(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAlertaNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return a, nil
}

// Create inserts a new alert and fills in the server-assigned fields.
func (r *AlertaRepository) Create(ctx context.Context, a *models.Alerta) error {
	sql, args, err := r.sb.Insert("alertas").
		Columns("tipo", "prioridade", "titulo", "mensagem", "destinatario_id", "destinatario_tipo", "status", "data_vencimento").
		Values(a.Tipo, a.Prioridade, a.Titulo, a.Mensagem, a.DestinatarioID, a.DestinatarioTipo, a.Status, a.DataVencimento).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// Update rewrites the mutable alert fields and stamps updated_at
func (r *AlertaRepository) Update(ctx context.Context, a *models.Alerta) error {
	sql, args, err := r.sb.Update("alertas").
		Set("status", a.Status).
		Set("prioridade", a.Prioridade).
		Set("data_vencimento", a.DataVencimento).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAlertaNotFound
	}
	return nil
}

// Delete removes an alert by ID
func (r *AlertaRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("alertas").
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
		return apperrors.ErrAlertaNotFound
	}
	return nil
}
