package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"sop_inventory/internal/auth"
	"sop_inventory/internal/cache"
	"sop_inventory/internal/config"
	"sop_inventory/internal/database"
	"sop_inventory/internal/handlers"
	"sop_inventory/internal/middleware"
	"sop_inventory/internal/migrations"
	"sop_inventory/internal/models"
	"sop_inventory/internal/repository"
	"sop_inventory/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := migrations.Seed(db); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	// Initialize Redis
	cacheClient, err := cache.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer cacheClient.Close()

	// Crypto helpers
	emailCipher, err := auth.NewEmailCipher(cfg.EmailKey)
	if err != nil {
		log.Fatal("Failed to initialize email cipher:", err)
	}
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, time.Duration(cfg.JWTLifetime)*time.Minute)

	// Initialize repositories
	itemRepo := repository.NewItemRepository(db)
	itemGroupRepo := repository.NewItemGroupRepository(db)
	itemTypeRepo := repository.NewItemTypeRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	loanRepo := repository.NewLoanRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	buildingRepo := repository.NewBuildingRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	partTypeRepo := repository.NewPartTypeRepository(db)
	partGroupRepo := repository.NewPartGroupRepository(db)
	partRepo := repository.NewComputerPartRepository(db)
	computerRepo := repository.NewComputerRepository(db)
	presetRepo := repository.NewPresetRepository(db)

	// Initialize services
	authService := services.NewAuthService(
		userRepo, roleRepo, jwtManager, emailCipher, cacheClient,
		cfg.TwoFactorIssuer, time.Duration(cfg.EnrollmentTTL)*time.Second,
	)
	dashboardService := services.NewDashboardService(
		itemRepo, loanRepo, statusRepo, cacheClient,
		time.Duration(cfg.DashboardTTL)*time.Second, logger,
	)

	// Initialize handlers
	itemHandler := handlers.NewItemHandler(itemRepo, statusRepo)
	itemGroupHandler := handlers.NewItemGroupHandler(itemGroupRepo)
	itemTypeHandler := handlers.NewItemTypeHandler(itemTypeRepo)
	statusHandler := handlers.NewStatusHandler(statusRepo)
	loanHandler := handlers.NewLoanHandler(loanRepo)
	requestHandler := handlers.NewRequestHandler(requestRepo)
	userHandler := handlers.NewUserHandler(userRepo, authService)
	locationHandler := handlers.NewLocationHandler(addressRepo, buildingRepo, roomRepo)
	partHandler := handlers.NewPartHandler(partTypeRepo, partGroupRepo, partRepo)
	computerHandler := handlers.NewComputerHandler(computerRepo)
	presetHandler := handlers.NewPresetHandler(presetRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Setup routes
	router := gin.New()
	router.Use(middleware.RequestLogger(logger), gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := router.Group("/api")

	// Public authentication endpoints
	api.POST("/users/authenticate", userHandler.Authenticate)

	// Endpoints reachable with a pending (password-only) token
	pending := api.Group("", middleware.Authenticate(jwtManager, true))
	pending.POST("/users/2fa/verify", userHandler.TwoFactorVerify)

	authed := api.Group("", middleware.Authenticate(jwtManager, false))
	authed.POST("/users/extend-token", userHandler.ExtendToken)
	authed.POST("/users/2fa", userHandler.TwoFactorSetup)
	authed.GET("/dashboard", dashboardHandler.Summary)

	// Read access for every role
	authed.GET("/items", itemHandler.GetAll)
	authed.GET("/items/:id", itemHandler.GetByID)
	authed.GET("/itemgroups", itemGroupHandler.GetAll)
	authed.GET("/itemgroups/:id", itemGroupHandler.GetByID)
	authed.GET("/itemtypes", itemTypeHandler.GetAll)
	authed.GET("/itemtypes/:id", itemTypeHandler.GetByID)
	authed.GET("/statuses", statusHandler.GetAll)
	authed.GET("/statuses/:id", statusHandler.GetByID)
	authed.GET("/buildings", locationHandler.GetBuildings)
	authed.GET("/buildings/:id", locationHandler.GetBuilding)
	authed.GET("/rooms", locationHandler.GetRooms)
	authed.GET("/rooms/:id", locationHandler.GetRoom)

	// Any role may file a request
	authed.POST("/requests", requestHandler.Create)

	// Inventory management
	inventory := authed.Group("", middleware.RequireRoles(models.RoleAdmin, models.RoleOperations))
	inventory.POST("/items", itemHandler.Create)
	inventory.PUT("/items/:id", itemHandler.Update)
	inventory.POST("/items/:id/status", itemHandler.SetStatus)
	inventory.DELETE("/items/:id", itemHandler.Archive)
	inventory.POST("/itemgroups", itemGroupHandler.Create)
	inventory.PUT("/itemgroups/:id", itemGroupHandler.Update)
	inventory.DELETE("/itemgroups/:id", itemGroupHandler.Archive)
	inventory.POST("/itemtypes", itemTypeHandler.Create)
	inventory.PUT("/itemtypes/:id", itemTypeHandler.Update)
	inventory.DELETE("/itemtypes/:id", itemTypeHandler.Archive)
	inventory.POST("/statuses", statusHandler.Create)
	inventory.PUT("/statuses/:id", statusHandler.Update)
	inventory.POST("/addresses", locationHandler.CreateAddress)
	inventory.GET("/addresses", locationHandler.GetAddresses)
	inventory.PUT("/addresses/:id", locationHandler.UpdateAddress)
	inventory.DELETE("/addresses/:id", locationHandler.DeleteAddress)
	inventory.POST("/buildings", locationHandler.CreateBuilding)
	inventory.PUT("/buildings/:id", locationHandler.UpdateBuilding)
	inventory.DELETE("/buildings/:id", locationHandler.DeleteBuilding)
	inventory.POST("/rooms", locationHandler.CreateRoom)
	inventory.PUT("/rooms/:id", locationHandler.UpdateRoom)
	inventory.DELETE("/rooms/:id", locationHandler.DeleteRoom)
	inventory.POST("/parttypes", partHandler.CreatePartType)
	inventory.GET("/parttypes", partHandler.GetPartTypes)
	inventory.PUT("/parttypes/:id", partHandler.UpdatePartType)
	inventory.DELETE("/parttypes/:id", partHandler.DeletePartType)
	inventory.POST("/partgroups", partHandler.CreatePartGroup)
	inventory.GET("/partgroups", partHandler.GetPartGroups)
	inventory.GET("/partgroups/:id", partHandler.GetPartGroup)
	inventory.PUT("/partgroups/:id", partHandler.UpdatePartGroup)
	inventory.POST("/parts", partHandler.CreatePart)
	inventory.GET("/parts", partHandler.GetParts)
	inventory.PUT("/parts/:id", partHandler.UpdatePart)
	inventory.DELETE("/parts/:id", partHandler.DeletePart)
	inventory.POST("/computers", computerHandler.Create)
	inventory.GET("/computers", computerHandler.GetAll)
	inventory.GET("/computers/:id", computerHandler.GetByID)
	inventory.PUT("/computers/:id", computerHandler.Update)
	inventory.DELETE("/computers/:id", computerHandler.Delete)
	inventory.POST("/computers/:id/parts", computerHandler.AssignPart)
	inventory.DELETE("/computers/:id/parts", computerHandler.RemovePart)
	inventory.POST("/presets", presetHandler.Create)
	inventory.GET("/presets", presetHandler.GetAll)
	inventory.GET("/presets/:id", presetHandler.GetByID)
	inventory.PUT("/presets/:id", presetHandler.Update)
	inventory.DELETE("/presets/:id", presetHandler.Delete)

	// Loans and request handling
	lending := authed.Group("", middleware.RequireRoles(models.RoleAdmin, models.RoleInstructor, models.RoleOperations))
	lending.POST("/loans", loanHandler.Create)
	lending.GET("/loans", loanHandler.GetAll)
	lending.GET("/loans/:id", loanHandler.GetByID)
	lending.PUT("/loans/:id", loanHandler.Update)
	lending.DELETE("/loans/:id", loanHandler.Archive)
	lending.GET("/requests", requestHandler.GetAll)
	lending.GET("/requests/:id", requestHandler.GetByID)
	lending.PUT("/requests/:id", requestHandler.UpdateStatus)
	lending.DELETE("/requests/:id", requestHandler.Archive)

	// User administration
	admin := authed.Group("", middleware.RequireRoles(models.RoleAdmin))
	admin.POST("/users", userHandler.Create)
	admin.GET("/users", userHandler.GetAll)
	admin.GET("/users/:id", userHandler.GetByID)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Archive)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
