package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ufvjm/estagiopro/internal/app/controllers"
	"github.com/ufvjm/estagiopro/internal/app/models"
	"github.com/ufvjm/estagiopro/internal/middleware"
)

// Controllers groups everything SetupRouter mounts.
type Controllers struct {
	Health                *controllers.HealthController
	Auth                  *controllers.AuthController
	Estudante             *controllers.EstudanteController
	Empresa               *controllers.EmpresaController
	Orientador            *controllers.OrientadorController
	EstagioObrigatorio    *controllers.EstagioController
	EstagioNaoObrigatorio *controllers.EstagioController
	Documento             *controllers.DocumentoController
	Certificado           *controllers.CertificadoController
	Alerta                *controllers.AlertaController
	Dashboard             *controllers.DashboardController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	// Health stays outside the versioned group; monitors hit it unauthenticated.
	router.GET("/api/health", c.Health.Check)

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.Auth.Login)
		auth.POST("/refresh", c.Auth.Refresh)
	}

	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", c.Auth.Logout)
		authenticated.GET("/auth/me", c.Auth.Me)

		authenticated.GET("/dashboard/stats", c.Dashboard.Stats)

		estudantes := authenticated.Group("/estudantes")
		{
			estudantes.GET("", c.Estudante.List)
			estudantes.GET("/:id", c.Estudante.Get)
			estudantes.POST("", c.Estudante.Create)
			estudantes.PUT("/:id", c.Estudante.Update)
			estudantes.DELETE("/:id", c.Estudante.Delete)
		}

		empresas := authenticated.Group("/empresas")
		{
			empresas.GET("", c.Empresa.List)
			empresas.GET("/:id", c.Empresa.Get)
			empresas.POST("", c.Empresa.Create)
			empresas.PUT("/:id", c.Empresa.Update)
			empresas.DELETE("/:id", c.Empresa.Delete)
		}

		orientadores := authenticated.Group("/orientadores")
		{
			orientadores.GET("", c.Orientador.List)
			orientadores.GET("/:id", c.Orientador.Get)

			// Account provisioning is restricted to administrators.
			orientadoresAdmin := orientadores.Group("")
			orientadoresAdmin.Use(authMiddleware.RoleRequired(string(models.TipoAdministrador)))
			{
				orientadoresAdmin.POST("", c.Orientador.Create)
				orientadoresAdmin.PUT("/:id", c.Orientador.Update)
				orientadoresAdmin.DELETE("/:id", c.Orientador.Delete)
			}
		}

		mountEstagios(authenticated.Group("/estagios-obrigatorios"), c.EstagioObrigatorio, c.Documento)
		mountEstagios(authenticated.Group("/estagios-nao-obrigatorios"), c.EstagioNaoObrigatorio, c.Documento)

		certificados := authenticated.Group("/certificados")
		{
			certificados.GET("", c.Certificado.List)
			certificados.GET("/:id", c.Certificado.Get)
			certificados.POST("", c.Certificado.Create)
			certificados.DELETE("/:id", c.Certificado.Delete)
		}

		alertas := authenticated.Group("/alertas")
		{
			alertas.GET("", c.Alerta.List)
			alertas.GET("/:id", c.Alerta.Get)
			alertas.POST("", c.Alerta.Create)
			alertas.PUT("/:id", c.Alerta.Update)
			alertas.DELETE("/:id", c.Alerta.Delete)
		}
	}
}

// mountEstagios wires one internship collection plus its nested document
// routes. Both collections share the document controller; documents hang
// off the internship row regardless of kind.
func mountEstagios(group *gin.RouterGroup, estagio *controllers.EstagioController, documento *controllers.DocumentoController) {
	group.GET("", estagio.List)
	group.GET("/:estagioId", estagio.Get)
	group.POST("", estagio.Create)
	group.PUT("/:estagioId", estagio.Update)
	group.DELETE("/:estagioId", estagio.Delete)

	documentos := group.Group("/:estagioId/documentos")
	{
		documentos.GET("", documento.List)
		documentos.GET("/:id", documento.Get)
		documentos.POST("", documento.Create)
		documentos.PUT("/:id", documento.Update)
		documentos.DELETE("/:id", documento.Delete)
	}
}
