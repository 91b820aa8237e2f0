package services

// Services defined in this package:
// - AuthService: login, token refresh, logout, current profile
// - EstudanteService, EmpresaService, OrientadorService: entity CRUD
// - EstagioService: internship CRUD, shared by both internship kinds
// - DocumentoService: documents nested under an internship
// - CertificadoService: certificate issuance and lookup
// - AlertaService: system alerts
// - DashboardService: concurrent statistics aggregation
