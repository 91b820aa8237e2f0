package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ufvjm/estagiopro/internal/app/models"
)

// DashboardRepository runs the aggregate count queries behind the
// dashboard statistics endpoint.
type DashboardRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *DashboardRepository) count(ctx context.Context, table string, where squirrel.Sqlizer) (int64, error) {
	query := r.sb.Select("COUNT(*)").From(table)
	if where != nil {
		query = query.Where(where)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting %s: %w", table, err)
	}
	return total, nil
}

// CountEstudantesAtivos counts students with status 'Ativo'
func (r *DashboardRepository) CountEstudantesAtivos(ctx context.Context) (int64, error) {
	return r.count(ctx, "estudantes", squirrel.Eq{"status": models.StatusEstudanteAtivo})
}

// CountEmpresasAtivas counts companies with status 'Ativa'
func (r *DashboardRepository) CountEmpresasAtivas(ctx context.Context) (int64, error) {
	return r.count(ctx, "empresas", squirrel.Eq{"status": models.StatusEmpresaAtiva})
}

// CountOrientadoresAtivos counts advisor accounts with status 'Ativo'
func (r *DashboardRepository) CountOrientadoresAtivos(ctx context.Context) (int64, error) {
	return r.count(ctx, "orientadores", squirrel.Eq{"status": models.StatusUsuarioAtivo})
}

// CountAlertasPendentes counts alerts still in status 'Pendente'
func (r *DashboardRepository) CountAlertasPendentes(ctx context.Context) (int64, error) {
	return r.count(ctx, "alertas", squirrel.Eq{"status": models.StatusAlertaPendente})
}

// CountCertificados counts all issued certificates
func (r *DashboardRepository) CountCertificados(ctx context.Context) (int64, error) {
	return r.count(ctx, "certificados", nil)
}

// EstagioStatusCounts returns per-status row counts for one internship
// kind in a single grouped query.
func (r *DashboardRepository) EstagioStatusCounts(ctx context.Context, tipo models.TipoEstagio) (map[string]int64, error) {
	sql, args, err := r.sb.Select("status", "COUNT(*)").
		From("estagios").
		Where(squirrel.Eq{"tipo": tipo}).
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error counting estagios: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		counts[status] = n
	}

	return counts, rows.Err()
}
