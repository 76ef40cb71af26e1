package main

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viamercantil/pos-interno/internal/adapter/api/controller"
	"github.com/viamercantil/pos-interno/internal/adapter/api/route"
	"github.com/viamercantil/pos-interno/internal/adapter/repository"
	"github.com/viamercantil/pos-interno/internal/domain/session"
	"github.com/viamercantil/pos-interno/internal/infrastructure/database"
	"github.com/viamercantil/pos-interno/pkg/auth"
	"github.com/viamercantil/pos-interno/pkg/logger"
	"github.com/viamercantil/pos-interno/pkg/metrics"
)

// App representa a aplicação e suas dependências
type App struct {
	router   *gin.Engine
	db       *pgxpool.Pool
	logger   logger.Logger
	sessions *auth.SessionService
	resolver *auth.PermissionResolver

	authController     *controller.AuthController
	userController     *controller.UserController
	roleController     *controller.RoleController
	productController  *controller.ProductController
	clientController   *controller.ClientController
	supplierController *controller.SupplierController
	entryController    *controller.EntryController
	saleController     *controller.SaleController
	reportController   *controller.ReportController
}

// sessionDuration lê a duração da sessão do ambiente, em horas. Sem a
// variável, vale a janela padrão de 8 horas
func sessionDuration() time.Duration {
	if value := os.Getenv("SESSION_DURATION_HOURS"); value != "" {
		if hours, err := strconv.Atoi(value); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return session.DefaultDuration
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Configurar banco de dados
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	// Criar repositórios
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	productRepo := repository.NewProductRepository(db)
	clientRepo := repository.NewClientRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	entryRepo := repository.NewEntryRepository(db, productRepo)
	saleRepo := repository.NewSaleRepository(db, productRepo)

	// Criar serviços de autenticação
	sessions := auth.NewSessionService(sessionRepo, userRepo, sessionDuration())
	resolver := auth.NewPermissionResolver(roleRepo)

	// Criar controllers
	authController := controller.NewAuthController(userRepo, roleRepo, sessions, resolver, log)
	userController := controller.NewUserController(userRepo, log)
	roleController := controller.NewRoleController(roleRepo, resolver, log)
	productController := controller.NewProductController(productRepo, log)
	clientController := controller.NewClientController(clientRepo, log)
	supplierController := controller.NewSupplierController(supplierRepo, log)
	entryController := controller.NewEntryController(entryRepo, log)
	saleController := controller.NewSaleController(saleRepo, log)
	reportController := controller.NewReportController(saleRepo, log)

	// Configurar router
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS aberto: a API atende apenas o front-end interno, que roda em
	// origens variadas (rede local e acesso remoto)
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"authorization", "x-client-info", "apikey", "content-type"},
		MaxAge:          12 * time.Hour,
		// O preflight responde 200 com corpo vazio
		OptionsResponseStatusCode: http.StatusOK,
	}))

	// Métricas HTTP
	metrics.Init()
	router.Use(metrics.Middleware())

	return &App{
		router:             router,
		db:                 db,
		logger:             log,
		sessions:           sessions,
		resolver:           resolver,
		authController:     authController,
		userController:     userController,
		roleController:     roleController,
		productController:  productController,
		clientController:   clientController,
		supplierController: supplierController,
		entryController:    entryController,
		saleController:     saleController,
		reportController:   reportController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})
	a.router.GET("/metrics", metrics.Handler())

	api := a.router.Group(basePath)

	route.RegisterAuthRoutes(api, a.authController)
	route.RegisterUserRoutes(api, a.userController, a.sessions, a.resolver)
	route.RegisterRoleRoutes(api, a.roleController, a.sessions, a.resolver)
	route.RegisterProductRoutes(api, a.productController, a.sessions, a.resolver)
	route.RegisterClientRoutes(api, a.clientController, a.sessions, a.resolver)
	route.RegisterSupplierRoutes(api, a.supplierController, a.sessions, a.resolver)
	route.RegisterEntryRoutes(api, a.entryController, a.sessions, a.resolver)
	route.RegisterSaleRoutes(api, a.saleController, a.sessions, a.resolver)
	route.RegisterReportRoutes(api, a.reportController, a.sessions, a.resolver)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
