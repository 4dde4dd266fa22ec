package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-commerce-ledger/internal/handler"
	"go-commerce-ledger/internal/middleware"
	"go-commerce-ledger/internal/model"
	"go-commerce-ledger/internal/repository"
	"go-commerce-ledger/internal/service"
	"go-commerce-ledger/internal/ws"
	"go-commerce-ledger/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultTokenSupply is minted to the treasury on first boot when
// TOKEN_SUPPLY is unset (10^24 minor units).
const DefaultTokenSupply = "1000000000000000000000000"

// PlatformAdminAccount is the ledger identity of the seeded administrator.
const PlatformAdminAccount = "platform-admin"

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Company{}, &model.Product{}, &model.Client{},
		&model.Invoice{}, &model.InvoiceItem{},
		&model.TokenAccount{}, &model.TokenAllowance{},
		&model.User{}, &model.Role{}, &model.Privilege{},
	)

	// 3. Setup WebSocket Hub (the core's notification channel)
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	companyRepo := repository.NewCompanyRepo(db)
	productRepo := repository.NewProductRepo(db)
	clientRepo := repository.NewClientRepo(db)
	invoiceRepo := repository.NewInvoiceRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	privilegeRepo := repository.NewPrivilegeRepo(db)

	tokenService := service.NewTokenService(tokenRepo, db)
	companyService := service.NewCompanyService(companyRepo, db, wsHub)
	catalogService := service.NewCatalogService(companyRepo, productRepo, db, wsHub)
	clientService := service.NewClientService(companyRepo, clientRepo, wsHub)
	invoiceService := service.NewInvoiceService(companyRepo, invoiceRepo)
	purchaseService := service.NewPurchaseService(
		companyRepo, productRepo, clientRepo, invoiceRepo,
		catalogService, clientService, invoiceService, tokenService,
		db, wsHub,
	)
	authService := service.NewAuthService(userRepo, roleRepo)

	// 5. Seed roles, privileges, admin user and the token supply; then
	// authorize the orchestrator as the registries' writer.
	seedPlatform(db, privilegeRepo, roleRepo, userRepo, tokenService)
	admin := service.Caller{AccountID: PlatformAdminAccount, Role: model.RolePlatformAdmin}
	catalogService.SetAuthorizedWriter(admin, service.OrchestratorWriter)
	clientService.SetAuthorizedWriter(admin, service.OrchestratorWriter)
	invoiceService.SetAuthorizedWriter(admin, service.OrchestratorWriter)

	authHandler := handler.NewAuthHandler(authService)
	companyHandler := handler.NewCompanyHandler(companyService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	clientHandler := handler.NewClientHandler(clientService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService, invoiceService)
	statsHandler := handler.NewStatsHandler(purchaseService)
	tokenHandler := handler.NewTokenHandler(tokenService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Commerce Ledger Core v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// User administration
	protected.Post("/users", middleware.RequirePrivilege("user:create"), authHandler.RegisterUser)

	// Company registry
	protected.Post("/companies", middleware.RequirePrivilege("company:register"), companyHandler.Register)
	protected.Get("/companies/:owner", companyHandler.Get)
	protected.Post("/companies/:owner/deactivate", middleware.RequirePrivilege("company:deactivate"), companyHandler.Deactivate)

	// Product catalog
	protected.Get("/companies/:owner/products", catalogHandler.ListProducts)
	protected.Post("/companies/:owner/products", middleware.RequirePrivilege("product:create"), catalogHandler.CreateProduct)
	protected.Get("/companies/:owner/products/:id", catalogHandler.GetProduct)

	// Client registry
	protected.Post("/companies/:owner/clients", middleware.RequirePrivilege("client:register"), clientHandler.Register)
	protected.Get("/companies/:owner/clients/:client", clientHandler.Get)

	// Purchases and invoices
	protected.Post("/purchases", middleware.RequirePrivilege("purchase:execute"), purchaseHandler.ProcessPurchase)
	protected.Get("/companies/:owner/invoices/:number", purchaseHandler.GetInvoice)

	// Token ledger
	protected.Get("/token/supply", tokenHandler.Supply)
	protected.Get("/token/balance/:holder", tokenHandler.Balance)
	protected.Get("/token/allowance/:owner/:spender", tokenHandler.Allowance)
	protected.Post("/token/approve", middleware.RequirePrivilege("token:approve"), tokenHandler.Approve)
	protected.Post("/token/transfer", middleware.RequirePrivilege("token:transfer"), tokenHandler.Transfer)

	// Statistics
	protected.Get("/stats/platform", middleware.RequirePrivilege("stats:view"), statsHandler.Platform)
	protected.Get("/stats/companies/:owner", middleware.RequirePrivilege("stats:view"), statsHandler.Company)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedPlatform creates default privileges, roles, the admin user, and
// mints the fixed token supply to the treasury if missing
func seedPlatform(db *gorm.DB, privilegeRepo repository.PrivilegeRepository, roleRepo repository.RoleRepository, userRepo repository.UserRepository, tokens service.TokenService) {
	// 1. Seed privileges first
	if err := privilegeRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed privileges: %v", err)
	}

	// 2. Seed roles
	if err := roleRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed roles: %v", err)
	}

	// 3. Assign privileges to roles
	allPrivileges, _ := privilegeRepo.FindAll()

	// PLATFORM_ADMIN gets ALL privileges
	adminRole, err := roleRepo.FindByCode(model.RolePlatformAdmin)
	if err == nil && len(adminRole.Privileges) == 0 {
		db.Model(&adminRole).Association("Privileges").Replace(allPrivileges)
		log.Println("PLATFORM_ADMIN role assigned all privileges")
	}

	// MERCHANT runs its own company: registries, purchases and stats,
	// but no user administration or company deactivation
	merchantRole, err := roleRepo.FindByCode(model.RoleMerchant)
	if err == nil && len(merchantRole.Privileges) == 0 {
		merchantCodes := []string{
			"company:view", "company:register",
			"product:view", "product:create",
			"client:view", "client:register",
			"purchase:execute", "invoice:view",
			"token:view", "stats:view",
		}
		merchantPrivileges, _ := privilegeRepo.FindByCodes(merchantCodes)
		db.Model(&merchantRole).Association("Privileges").Replace(merchantPrivileges)
		log.Println("MERCHANT role assigned catalog and sales privileges")
	}

	// CLIENT holds balance and grants allowances
	clientRole, err := roleRepo.FindByCode(model.RoleClient)
	if err == nil && len(clientRole.Privileges) == 0 {
		clientCodes := []string{
			"company:view", "product:view", "invoice:view",
			"token:view", "token:transfer", "token:approve",
		}
		clientPrivileges, _ := privilegeRepo.FindByCodes(clientCodes)
		db.Model(&clientRole).Association("Privileges").Replace(clientPrivileges)
		log.Println("CLIENT role assigned token privileges")
	}

	// 4. Create the default platform administrator
	if _, err := userRepo.FindByEmail("admin@example.com"); err != nil {
		adminRole, _ := roleRepo.FindByCode(model.RolePlatformAdmin)

		admin := &model.User{
			Email:      "admin@example.com",
			FullName:   "Platform Administrator",
			AccountID:  PlatformAdminAccount,
			RoleID:     &adminRole.ID,
			IsActive:   true,
			Privileges: adminRole.Privileges,
		}
		if err := admin.SetPassword("admin123"); err != nil {
			log.Printf("Warning: Failed to hash admin password: %v", err)
			return
		}
		if err := userRepo.Create(admin); err != nil {
			log.Printf("Warning: Failed to create admin user: %v", err)
		} else {
			log.Println("Admin user created: admin@example.com / admin123 (PLATFORM_ADMIN)")
		}
	}

	// 5. Mint the fixed supply to the treasury (no-op when already minted)
	supplyRaw := os.Getenv("TOKEN_SUPPLY")
	if supplyRaw == "" {
		supplyRaw = DefaultTokenSupply
	}
	supply, err := decimal.NewFromString(supplyRaw)
	if err != nil {
		log.Printf("Warning: invalid TOKEN_SUPPLY %q: %v", supplyRaw, err)
		return
	}
	if err := tokens.InitSupply(service.TreasuryAccount, supply); err != nil {
		log.Printf("Warning: Failed to mint token supply: %v", err)
	}
}
