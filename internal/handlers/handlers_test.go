package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sop_inventory/internal/auth"
	"sop_inventory/internal/database"
	"sop_inventory/internal/middleware"
	"sop_inventory/internal/migrations"
	"sop_inventory/internal/models"
	"sop_inventory/internal/repository"
	"sop_inventory/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	jwt         *auth.JWTManager
	authService services.AuthService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := migrations.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cipher, err := auth.NewEmailCipher("handler-test-secret")
	if err != nil {
		t.Fatalf("cipher: %v", err)
	}
	jwtManager := auth.NewJWTManager("handler-test-secret", time.Hour)

	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	itemTypeRepo := repository.NewItemTypeRepository(db)

	authService := services.NewAuthService(userRepo, roleRepo, jwtManager, cipher, nil, "SOP", time.Minute)

	userHandler := NewUserHandler(userRepo, authService)
	itemTypeHandler := NewItemTypeHandler(itemTypeRepo)

	router := gin.New()
	api := router.Group("/api")
	api.POST("/users/authenticate", userHandler.Authenticate)

	authed := api.Group("", middleware.Authenticate(jwtManager, false))
	authed.GET("/itemtypes", itemTypeHandler.GetAll)

	inventory := authed.Group("", middleware.RequireRoles(models.RoleAdmin, models.RoleOperations))
	inventory.POST("/itemtypes", itemTypeHandler.Create)
	inventory.DELETE("/itemtypes/:id", itemTypeHandler.Archive)

	return &testEnv{db: db, router: router, jwt: jwtManager, authService: authService}
}

func (e *testEnv) createUser(t *testing.T, email, password, role string) *models.User {
	t.Helper()
	user := models.User{FirstName: "Test", LastName: "Bruger"}
	if err := e.authService.CreateUser(context.Background(), &user, email, password, role); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

func (e *testEnv) token(t *testing.T, userID uint, email, role string) string {
	t.Helper()
	token, err := e.jwt.Generate(userID, email, role)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return token
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticateEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "admin@skole.dk", "korrekthest", models.RoleAdmin)

	w := doJSON(t, env.router, http.MethodPost, "/api/users/authenticate", "", gin.H{
		"email":    "admin@skole.dk",
		"password": "korrekthest",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token             string `json:"token"`
		TwoFactorRequired bool   `json:"two_factor_required"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
	if resp.TwoFactorRequired {
		t.Error("2FA not enrolled, should not be required")
	}

	w = doJSON(t, env.router, http.MethodPost, "/api/users/authenticate", "", gin.H{
		"email":    "admin@skole.dk",
		"password": "forkert",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", w.Code)
	}
}

func TestItemTypeArchiveEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.createUser(t, "admin@skole.dk", "korrekthest", models.RoleAdmin)
	token := env.token(t, admin.ID, "admin@skole.dk", models.RoleAdmin)

	w := doJSON(t, env.router, http.MethodPost, "/api/itemtypes", token, gin.H{"name": "Bord"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created models.ItemType
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	path := fmt.Sprintf("/api/itemtypes/%d", created.ID)
	w = doJSON(t, env.router, http.MethodDelete, path, token, gin.H{"archiveNote": "oprydning"})
	if w.Code != http.StatusOK {
		t.Fatalf("archive: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var archived models.ArchiveItemType
	if err := json.Unmarshal(w.Body.Bytes(), &archived); err != nil {
		t.Fatalf("decode archive: %v", err)
	}
	if archived.ArchiveNote != "oprydning" {
		t.Errorf("expected note to round-trip, got %q", archived.ArchiveNote)
	}

	// Second delete hits nothing.
	w = doJSON(t, env.router, http.MethodDelete, path, token, gin.H{"archiveNote": "igen"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on re-archive, got %d", w.Code)
	}
}

func TestRoleGate(t *testing.T) {
	env := setupTestEnv(t)
	student := env.createUser(t, "elev@skole.dk", "korrekthest", models.RoleStudent)
	token := env.token(t, student.ID, "elev@skole.dk", models.RoleStudent)

	// Students may read...
	w := doJSON(t, env.router, http.MethodGet, "/api/itemtypes", token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for read, got %d", w.Code)
	}

	// ...but not write.
	w = doJSON(t, env.router, http.MethodPost, "/api/itemtypes", token, gin.H{"name": "Stol"})
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for student write, got %d", w.Code)
	}

	// And no token means no access at all.
	w = doJSON(t, env.router, http.MethodGet, "/api/itemtypes", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
}
