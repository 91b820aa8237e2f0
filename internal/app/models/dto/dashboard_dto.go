package dto

// EstagioStats is the per-kind internship bucket breakdown.
type EstagioStats struct {
	EmAndamento int64 `json:"em_andamento"`
	Concluidos  int64 `json:"concluidos"`
	Cancelados  int64 `json:"cancelados"`
	Total       int64 `json:"total"`
}

// DashboardStats is the consolidated statistics object assembled by the
// dashboard aggregator.
type DashboardStats struct {
	TotalEstudantes         int64        `json:"total_estudantes"`
	TotalEmpresas           int64        `json:"total_empresas"`
	TotalOrientadores       int64        `json:"total_orientadores"`
	EstagiosObrigatorios    EstagioStats `json:"estagios_obrigatorios"`
	EstagiosNaoObrigatorios EstagioStats `json:"estagios_nao_obrigatorios"`
	AlertasPendentes        int64        `json:"alertas_pendentes"`
	CertificadosEmitidos    int64        `json:"certificados_emitidos"`
}
