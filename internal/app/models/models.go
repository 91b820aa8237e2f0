package models

// TipoUsuario defines the role of an orientador account
type TipoUsuario string

const (
	TipoAdministrador TipoUsuario = "administrador"
	TipoProfessor     TipoUsuario = "professor"
)

// StatusUsuario is the lifecycle status of an orientador account
type StatusUsuario string

const (
	StatusUsuarioAtivo    StatusUsuario = "Ativo"
	StatusUsuarioPendente StatusUsuario = "Pendente"
	StatusUsuarioInativo  StatusUsuario = "Inativo"
)

// StatusEstudante is the lifecycle status of a student record
type StatusEstudante string

const (
	StatusEstudanteAtivo   StatusEstudante = "Ativo"
	StatusEstudanteInativo StatusEstudante = "Inativo"
)

// StatusEmpresa is the lifecycle status of a company record
type StatusEmpresa string

const (
	StatusEmpresaAtiva   StatusEmpresa = "Ativa"
	StatusEmpresaInativa StatusEmpresa = "Inativa"
)

// TipoEstagio distinguishes mandatory from non-mandatory internships
type TipoEstagio string

const (
	TipoEstagioObrigatorio    TipoEstagio = "Obrigatório"
	TipoEstagioNaoObrigatorio TipoEstagio = "Não Obrigatório"
)

// StatusEstagio is the lifecycle status of an internship
type StatusEstagio string

const (
	StatusEstagioEmAndamento StatusEstagio = "Em Andamento"
	StatusEstagioConcluido   StatusEstagio = "Concluído"
	StatusEstagioCancelado   StatusEstagio = "Cancelado"
)

// TipoDocumento classifies internship documents
type TipoDocumento string

const (
	TipoDocumentoTermoCompromisso TipoDocumento = "Termo de Compromisso"
	TipoDocumentoPlanoAtividades  TipoDocumento = "Plano de Atividades"
	TipoDocumentoRelatorio        TipoDocumento = "Relatório"
	TipoDocumentoAvaliacao        TipoDocumento = "Avaliação"
	TipoDocumentoOutros           TipoDocumento = "Outros"
)

// StatusDocumento is the review status of an internship document
type StatusDocumento string

const (
	StatusDocumentoPendente  StatusDocumento = "Pendente"
	StatusDocumentoAprovado  StatusDocumento = "Aprovado"
	StatusDocumentoRejeitado StatusDocumento = "Rejeitado"
)

// PrioridadeAlerta is the priority of a system alert
type PrioridadeAlerta string

const (
	PrioridadeAlta  PrioridadeAlerta = "Alta"
	PrioridadeMedia PrioridadeAlerta = "Média"
	PrioridadeBaixa PrioridadeAlerta = "Baixa"
)

// StatusAlerta is the delivery status of a system alert
type StatusAlerta string

const (
	StatusAlertaPendente StatusAlerta = "Pendente"
	StatusAlertaEnviado  StatusAlerta = "Enviado"
	StatusAlertaLido     StatusAlerta = "Lido"
)

// DestinatarioTipo is the kind of recipient an alert is addressed to
type DestinatarioTipo string

const (
	DestinatarioEstudante  DestinatarioTipo = "estudante"
	DestinatarioOrientador DestinatarioTipo = "orientador"
)
