package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	OrientadorRepository  *OrientadorRepository
	EstudanteRepository   *EstudanteRepository
	EmpresaRepository     *EmpresaRepository
	EstagioRepository     *EstagioRepository
	DocumentoRepository   *DocumentoRepository
	CertificadoRepository *CertificadoRepository
	AlertaRepository      *AlertaRepository
	TokenRepository       *TokenRepository
	DashboardRepository   *DashboardRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		OrientadorRepository:  NewOrientadorRepository(db),
		EstudanteRepository:   NewEstudanteRepository(db),
		EmpresaRepository:     NewEmpresaRepository(db),
		EstagioRepository:     NewEstagioRepository(db),
		DocumentoRepository:   NewDocumentoRepository(db),
		CertificadoRepository: NewCertificadoRepository(db),
		AlertaRepository:      NewAlertaRepository(db),
		TokenRepository:       NewTokenRepository(db),
		DashboardRepository:   NewDashboardRepository(db),
	}
}
