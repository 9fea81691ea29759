package router

import (
	"time"

	"mecanicagil/internal/config"
	"mecanicagil/internal/handler"
	"mecanicagil/internal/middleware"
	"mecanicagil/internal/model"
	"mecanicagil/internal/repository"
	"mecanicagil/internal/service"
	"mecanicagil/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	servicioRepo := repository.NewServicioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	vehiculoRepo := repository.NewVehiculoRepository(db)
	ordenRepo := repository.NewOrdenRepository(db)
	pagoRepo := repository.NewPagoRepository(db)
	reporteRepo := repository.NewReporteRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	catalogoSvc := service.NewCatalogoService(servicioRepo)
	clienteSvc := service.NewClienteService(clienteRepo, vehiculoRepo)
	ordenSvc := service.NewOrdenService(ordenRepo, vehiculoRepo, servicioRepo, dispatcher, cfg.PDFStoragePath)
	pagoSvc := service.NewPagoService(pagoRepo, ordenRepo)
	reporteSvc := service.NewReporteService(reporteRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	serviciosH := handler.NewServiciosHandler(catalogoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	vehiculosH := handler.NewVehiculosHandler(clienteSvc)
	ordenesH := handler.NewOrdenesHandler(ordenSvc)
	pagosH := handler.NewPagosHandler(pagoSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Catalogo — reads open to every authenticated role, writes admin only
		v1.GET("/servicios", serviciosH.Listar)
		v1.GET("/servicios/:id", serviciosH.Obtener)
		servicios := v1.Group("/servicios", middleware.Requiere(model.Rol.PuedeGestionarCatalogo))
		{
			servicios.POST("", serviciosH.Crear)
			servicios.PUT("/:id", serviciosH.Actualizar)
			servicios.DELETE("/:id", serviciosH.Eliminar)
		}

		// Ordenes de trabajo
		v1.POST("/ordenes", ordenesH.Crear)
		v1.GET("/ordenes", ordenesH.Listar)
		v1.GET("/ordenes/:id", ordenesH.Obtener)
		v1.GET("/ordenes/:id/recibo", ordenesH.Recibo)
		v1.POST("/ordenes/:id/items", middleware.Requiere(model.Rol.PuedeOperarOrdenes), ordenesH.AgregarItem)
		v1.PUT("/ordenes/:id/estado", middleware.Requiere(model.Rol.PuedeOperarOrdenes), ordenesH.ActualizarEstado)

		// Clientes y vehiculos — desk operations
		v1.GET("/clientes", clientesH.Listar)
		v1.POST("/clientes", middleware.Requiere(model.Rol.PuedeRecepcionar), clientesH.Crear)
		v1.GET("/clientes/:id/vehiculos", clientesH.ListarVehiculos)
		v1.POST("/clientes/:id/vehiculos", middleware.Requiere(model.Rol.PuedeRecepcionar), clientesH.AgregarVehiculo)

		v1.GET("/vehiculos", vehiculosH.Listar)
		v1.PUT("/vehiculos/:id", middleware.Requiere(model.Rol.PuedeRecepcionar), vehiculosH.Actualizar)
		v1.DELETE("/vehiculos/:id", middleware.Requiere(model.Rol.EsAdmin), vehiculosH.Eliminar)

		// Pagos
		pagos := v1.Group("/pagos", middleware.Requiere(model.Rol.PuedeRecepcionar))
		{
			pagos.POST("", pagosH.Registrar)
			pagos.GET("/historial", pagosH.Historial)
		}
		v1.GET("/pagos/ingresos", middleware.Requiere(model.Rol.PuedeVerReportes), pagosH.ResumenIngresos)

		// Reportes
		v1.GET("/reportes/dashboard", middleware.Requiere(model.Rol.PuedeVerReportes), reportesH.Dashboard)

		// Usuarios — administration
		usuarios := v1.Group("/usuarios", middleware.Requiere(model.Rol.EsAdmin))
		{
			usuarios.POST("", usuariosH.CrearUsuario)
			usuarios.GET("", usuariosH.ListarUsuarios)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
