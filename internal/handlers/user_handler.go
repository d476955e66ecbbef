package handlers

import (
	"net/http"

	"sop_inventory/internal/middleware"
	"sop_inventory/internal/models"
	"sop_inventory/internal/repository"
	"sop_inventory/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userRepo    repository.UserRepository
	authService services.AuthService
}

func NewUserHandler(userRepo repository.UserRepository, authService services.AuthService) *UserHandler {
	return &UserHandler{userRepo: userRepo, authService: authService}
}

// userResponse is the outward shape of a user: email decrypted, secrets
// omitted.
type userResponse struct {
	ID               uint   `json:"id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Role             string `json:"role,omitempty"`
	TwoFactorEnabled bool   `json:"two_factor_enabled"`
}

func (h *UserHandler) toResponse(user *models.User) userResponse {
	resp := userResponse{
		ID:               user.ID,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		TwoFactorEnabled: user.TwoFactorEnabled,
	}
	if user.Role != nil {
		resp.Role = user.Role.Name
	}
	if email, err := h.authService.Email(user); err == nil {
		resp.Email = email
	}
	return resp
}

func (h *UserHandler) Create(c *gin.Context) {
	var req struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required"`
		Role      string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{FirstName: req.FirstName, LastName: req.LastName}
	err := h.authService.CreateUser(c.Request.Context(), &user, req.Email, req.Password, req.Role)
	if err != nil {
		switch err {
		case services.ErrEmailExists, services.ErrUnknownRole:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, h.toResponse(&user))
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	user, err := h.userRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	resp := struct {
		userResponse
		Loans    []models.Loan    `json:"loans,omitempty"`
		Requests []models.Request `json:"requests,omitempty"`
	}{
		userResponse: h.toResponse(user),
		Loans:        user.Loans,
		Requests:     user.Requests,
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.userRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]userResponse, 0, len(users))
	for i := range users {
		responses = append(responses, h.toResponse(&users[i]))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if err := h.authService.UpdateUserEmail(c.Request.Context(), user, req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.userRepo.Update(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.toResponse(user))
}

func (h *UserHandler) Archive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req archiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	archived, err := h.userRepo.ArchiveByID(c.Request.Context(), id, req.ArchiveNote)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if archived == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": archived.ID, "delete_time": archived.DeleteTime})
}

// Authentication endpoints

func (h *UserHandler) Authenticate(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":               result.Token,
		"two_factor_required": result.TwoFactorRequired,
		"user":                h.toResponse(result.User),
	})
}

func (h *UserHandler) ExtendToken(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	token, err := h.authService.ExtendToken(claims)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// TwoFactorSetup starts an enrollment: generates a secret and returns it with
// a provisioning URI and QR code. Nothing is persisted until verification.
func (h *UserHandler) TwoFactorSetup(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	enrollmentID, enrollment, err := h.authService.BeginTwoFactorEnrollment(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"enrollment_id":    enrollmentID,
		"secret":           enrollment.Secret,
		"provisioning_uri": enrollment.ProvisioningURI,
		"qr_code_png":      enrollment.QRCodePNG,
	})
}

// TwoFactorVerify serves two flows keyed on the body: with an enrollment_id it
// completes enrollment; with a pending login token it finishes a 2FA login.
func (h *UserHandler) TwoFactorVerify(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	var req struct {
		EnrollmentID string `json:"enrollment_id"`
		Code         string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.EnrollmentID != "" {
		err := h.authService.CompleteTwoFactorEnrollment(c.Request.Context(), claims.UserID, req.EnrollmentID, req.Code)
		if err != nil {
			switch err {
			case services.ErrInvalidCode, services.ErrEnrollmentExpired:
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"two_factor_enabled": true})
		return
	}

	token, err := h.authService.CompleteTwoFactorLogin(c.Request.Context(), claims.UserID, req.Code)
	if err != nil {
		if err == services.ErrInvalidCode {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
