package handlers

import (
	"net/http"

	"sop_inventory/internal/models"
	"sop_inventory/internal/repository"

	"github.com/gin-gonic/gin"
)

type ItemGroupHandler struct {
	groupRepo repository.ItemGroupRepository
}

func NewItemGroupHandler(groupRepo repository.ItemGroupRepository) *ItemGroupHandler {
	return &ItemGroupHandler{groupRepo: groupRepo}
}

type itemGroupRequest struct {
	ModelName      string  `json:"model_name" binding:"required"`
	ItemTypeID     uint    `json:"item_type_id" binding:"required"`
	Price          float64 `json:"price"`
	Manufacturer   string  `json:"manufacturer"`
	WarrantyPeriod int     `json:"warranty_period"`
	Quantity       int     `json:"quantity"`
}

func (h *ItemGroupHandler) Create(c *gin.Context) {
	var req itemGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group := models.ItemGroup{
		ModelName:      req.ModelName,
		ItemTypeID:     req.ItemTypeID,
		Price:          req.Price,
		Manufacturer:   req.Manufacturer,
		WarrantyPeriod: req.WarrantyPeriod,
		Quantity:       req.Quantity,
	}
	if err := h.groupRepo.Create(c.Request.Context(), &group); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, group)
}

func (h *ItemGroupHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	group, err := h.groupRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if group == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item group not found"})
		return
	}
	c.JSON(http.StatusOK, group)
}

func (h *ItemGroupHandler) GetAll(c *gin.Context) {
	groups, err := h.groupRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *ItemGroupHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req itemGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.groupRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if group == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item group not found"})
		return
	}

	group.ModelName = req.ModelName
	group.ItemTypeID = req.ItemTypeID
	group.Price = req.Price
	group.Manufacturer = req.Manufacturer
	group.WarrantyPeriod = req.WarrantyPeriod
	group.Quantity = req.Quantity
	if err := h.groupRepo.Update(c.Request.Context(), group); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, group)
}

func (h *ItemGroupHandler) Archive(c *gin.Context) {
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

	archived, err := h.groupRepo.ArchiveByID(c.Request.Context(), id, req.ArchiveNote)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if archived == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item group not found"})
		return
	}
	c.JSON(http.StatusOK, archived)
}
