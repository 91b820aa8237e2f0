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

var estagioSortFields = listing.Fields{
	"data_inicio":   "e.data_inicio",
	"data_termino":  "e.data_termino",
	"carga_horaria": "e.carga_horaria",
	"status":        "e.status",
	"created_at":    "e.created_at",
}

const estagioColumns = "e.id, e.estudante_id, e.empresa_id, e.orientador_id, e.tipo, e.data_inicio, e.data_termino, e.carga_horaria, e.atividades, e.status, e.created_at, e.updated_at"

// estagioJoinedColumns embeds the related estudante and empresa rows plus a
// restricted orientador projection (credential columns excluded).
const estagioJoinedColumns = estagioColumns + ", " +
	"est.id, est.nome, est.email, est.telefone, est.cpf, est.matricula, est.curso, est.periodo, est.status, est.created_at, est.updated_at, " +
	"emp.id, emp.nome, emp.cnpj, emp.email, emp.telefone, emp.endereco, emp.cidade, emp.estado, emp.cep, emp.representante, emp.status, emp.created_at, emp.updated_at, " +
	"o.id, o.nome, o.email, o.telefone, o.departamento, o.tipo, o.status, o.created_at, o.updated_at"

// EstagioRepository handles database operations for internships. Mandatory
// and non-mandatory internships share the table; every method takes the
// tipo discriminator.
type EstagioRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEstagioRepository creates a new EstagioRepository
func NewEstagioRepository(db *pgxpool.Pool) *EstagioRepository {
	return &EstagioRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanEstagioJoined(row pgx.Row, extra ...interface{}) (*models.Estagio, error) {
	var (
		e   models.Estagio
		est models.Estudante
		emp models.Empresa
		o   models.Orientador
	)
	dest := []interface{}{
		&e.ID, &e.EstudanteID, &e.EmpresaID, &e.OrientadorID, &e.Tipo,
		&e.DataInicio, &e.DataTermino, &e.CargaHoraria, &e.Atividades,
		&e.Status, &e.CreatedAt, &e.UpdatedAt,
		&est.ID, &est.Nome, &est.Email, &est.Telefone, &est.CPF,
		&est.Matricula, &est.Curso, &est.Periodo, &est.Status,
		&est.CreatedAt, &est.UpdatedAt,
		&emp.ID, &emp.Nome, &emp.CNPJ, &emp.Email, &emp.Telefone,
		&emp.Endereco, &emp.Cidade, &emp.Estado, &emp.CEP,
		&emp.Representante, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
		&o.ID, &o.Nome, &o.Email, &o.Telefone, &o.Departamento,
		&o.Tipo, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	e.Estudante = &est
	e.Empresa = &emp
	e.Orientador = &o
	return &e, nil
}

func (r *EstagioRepository) joinedSelect() squirrel.SelectBuilder {
	return r.sb.Select(estagioJoinedColumns).
		From("estagios e").
		Join("estudantes est ON est.id = e.estudante_id").
		Join("empresas emp ON emp.id = e.empresa_id").
		Join("orientadores o ON o.id = e.orientador_id")
}

// List retrieves internships of one kind with filtering, sorting, and
// pagination, each row joined with its student, company, and advisor.
func (r *EstagioRepository) List(ctx context.Context, tipo models.TipoEstagio, filter dto.EstagioFilter, sort *listing.Sort, page, limit int) ([]models.Estagio, int64, error) {
	orderBy, err := estagioSortFields.OrderBy(sort, "e.data_inicio DESC")
	if err != nil {
		return nil, 0, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, limit)

	query := r.joinedSelect().
		Column("COUNT(*) OVER()").
		Where(squirrel.Eq{"e.tipo": tipo})

	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"e.status": filter.Status})
	}
	if filter.OrientadorID > 0 {
		query = query.Where(squirrel.Eq{"e.orientador_id": filter.OrientadorID})
	}
	if filter.DataInicio != "" {
		query = query.Where(squirrel.GtOrEq{"e.data_inicio": filter.DataInicio})
	}
	if filter.DataTermino != "" {
		query = query.Where(squirrel.LtOrEq{"e.data_termino": filter.DataTermino})
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

	estagios := []models.Estagio{}
	var total int64
	for rows.Next() {
		e, err := scanEstagioJoined(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		estagios = append(estagios, *e)
	}

	return estagios, total, rows.Err()
}

// GetByID retrieves one internship of the given kind with joined relations
func (r *EstagioRepository) GetByID(ctx context.Context, tipo models.TipoEstagio, id int64) (*models.Estagio, error) {
	sql, args, err := r.joinedSelect().
		Where(squirrel.Eq{"e.id": id, "e.tipo": tipo}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	e, err := scanEstagioJoined(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEstagioNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return e, nil
}

// Create inserts a new internship and fills in the server-assigned fields.
func (r *EstagioRepository) Create(ctx context.Context, e *models.Estagio) error {
	sql, args, err := r.sb.Insert("estagios").
		Columns("estudante_id", "empresa_id", "orientador_id", "tipo", "data_inicio", "data_termino", "carga_horaria", "atividades", "status").
		Values(e.EstudanteID, e.EmpresaID, e.OrientadorID, e.Tipo, e.DataInicio, e.DataTermino, e.CargaHoraria, e.Atividades, e.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// Update rewrites an internship row and stamps updated_at. Tipo is
// immutable; the WHERE clause pins it.
func (r *EstagioRepository) Update(ctx context.Context, e *models.Estagio) error {
	sql, args, err := r.sb.Update("estagios").
		Set("estudante_id", e.EstudanteID).
		Set("empresa_id", e.EmpresaID).
		Set("orientador_id", e.OrientadorID).
		Set("data_inicio", e.DataInicio).
		Set("data_termino", e.DataTermino).
		Set("carga_horaria", e.CargaHoraria).
		Set("atividades", e.Atividades).
		Set("status", e.Status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": e.ID, "tipo": e.Tipo}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEstagioNotFound
	}
	return nil
}

// Delete removes an internship of the given kind by ID
func (r *EstagioRepository) Delete(ctx context.Context, tipo models.TipoEstagio, id int64) error {
	sql, args, err := r.sb.Delete("estagios").
		Where(squirrel.Eq{"id": id, "tipo": tipo}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEstagioNotFound
	}
	return nil
}

// GetTipoByID resolves the kind of an internship regardless of route
// scope; certificate issuance inherits it from the referenced internship.
func (r *EstagioRepository) GetTipoByID(ctx context.Context, id int64) (models.TipoEstagio, error) {
	sql, args, err := r.sb.Select("tipo").
		From("estagios").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("error building SQL: %w", err)
	}

	var tipo models.TipoEstagio
	err = r.db.QueryRow(ctx, sql, args...).Scan(&tipo)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", apperrors.ErrEstagioNotFound
	}
	if err != nil {
		return "", fmt.Errorf("error executing query: %w", err)
	}
	return tipo, nil
}

// Exists reports whether an internship row exists regardless of kind; used
// when attaching documents and certificates.
func (r *EstagioRepository) Exists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("estagios").
		Where(squirrel.Eq{"id": id}).
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
