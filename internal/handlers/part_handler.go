package handlers

import (
	"net/http"

	"sop_inventory/internal/models"
	"sop_inventory/internal/repository"

	"github.com/gin-gonic/gin"
)

// PartHandler serves part types, part groups and individual parts.
type PartHandler struct {
	partTypeRepo  repository.PartTypeRepository
	partGroupRepo repository.PartGroupRepository
	partRepo      repository.ComputerPartRepository
}

func NewPartHandler(
	partTypeRepo repository.PartTypeRepository,
	partGroupRepo repository.PartGroupRepository,
	partRepo repository.ComputerPartRepository,
) *PartHandler {
	return &PartHandler{
		partTypeRepo:  partTypeRepo,
		partGroupRepo: partGroupRepo,
		partRepo:      partRepo,
	}
}

// Part types

func (h *PartHandler) CreatePartType(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	partType := models.PartType{Name: req.Name}
	if err := h.partTypeRepo.Create(c.Request.Context(), &partType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, partType)
}

func (h *PartHandler) GetPartTypes(c *gin.Context) {
	partTypes, err := h.partTypeRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, partTypes)
}

func (h *PartHandler) UpdatePartType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	partType, err := h.partTypeRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if partType == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "part type not found"})
		return
	}

	partType.Name = req.Name
	if err := h.partTypeRepo.Update(c.Request.Context(), partType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, partType)
}

func (h *PartHandler) DeletePartType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	partType, err := h.partTypeRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if partType == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "part type not found"})
		return
	}
	if err := h.partTypeRepo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Part groups

func (h *PartHandler) CreatePartGroup(c *gin.Context) {
	var req struct {
		PartTypeID   uint    `json:"part_type_id" binding:"required"`
		ModelName    string  `json:"model_name" binding:"required"`
		Manufacturer string  `json:"manufacturer"`
		Price        float64 `json:"price"`
		Quantity     int     `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	partGroup := models.PartGroup{
		PartTypeID:   req.PartTypeID,
		ModelName:    req.ModelName,
		Manufacturer: req.Manufacturer,
		Price:        req.Price,
		Quantity:     req.Quantity,
	}
	if err := h.partGroupRepo.Create(c.Request.Context(), &partGroup); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, partGroup)
}

func (h *PartHandler) GetPartGroup(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	partGroup, err := h.partGroupRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if partGroup == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "part group not found"})
		return
	}
	c.JSON(http.StatusOK, partGroup)
}

func (h *PartHandler) GetPartGroups(c *gin.Context) {
	partGroups, err := h.partGroupRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, partGroups)
}

func (h *PartHandler) UpdatePartGroup(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req struct {
		PartTypeID   uint    `json:"part_type_id" binding:"required"`
		ModelName    string  `json:"model_name" binding:"required"`
		Manufacturer string  `json:"manufacturer"`
		Price        float64 `json:"price"`
		Quantity     int     `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	partGroup, err := h.partGroupRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if partGroup == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "part group not found"})
		return
	}

	partGroup.PartTypeID = req.PartTypeID
	partGroup.ModelName = req.ModelName
	partGroup.Manufacturer = req.Manufacturer
	partGroup.Price = req.Price
	partGroup.Quantity = req.Quantity
	if err := h.partGroupRepo.Update(c.Request.Context(), partGroup); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, partGroup)
}

// Parts

func (h *PartHandler) CreatePart(c *gin.Context) {
	var req struct {
		PartGroupID  uint   `json:"part_group_id" binding:"required"`
		SerialNumber string `json:"serial_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	part := models.ComputerPart{
		PartGroupID:  req.PartGroupID,
		SerialNumber: req.SerialNumber,
	}
	if err := h.partRepo.Create(c.Request.Context(), &part); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, part)
}

func (h *PartHandler) GetParts(c *gin.Context) {
	if c.Query("unassigned") == "true" {
		parts, err := h.partRepo.GetUnassigned(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, parts)
		return
	}

	parts, err := h.partRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, parts)
}

func (h *PartHandler) UpdatePart(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req struct {
		PartGroupID  uint   `json:"part_group_id" binding:"required"`
		SerialNumber string `json:"serial_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	part, err := h.partRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if part == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "part not found"})
		return
	}

	part.PartGroupID = req.PartGroupID
	part.SerialNumber = req.SerialNumber
	if err := h.partRepo.Update(c.Request.Context(), part); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, part)
}

func (h *PartHandler) DeletePart(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	part, err := h.partRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if part == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "part not found"})
		return
	}
	if err := h.partRepo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
