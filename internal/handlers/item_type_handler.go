package handlers

import (
	"net/http"

	"sop_inventory/internal/models"
	"sop_inventory/internal/repository"

	"github.com/gin-gonic/gin"
)

type ItemTypeHandler struct {
	typeRepo repository.ItemTypeRepository
}

func NewItemTypeHandler(typeRepo repository.ItemTypeRepository) *ItemTypeHandler {
	return &ItemTypeHandler{typeRepo: typeRepo}
}

func (h *ItemTypeHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	itemType := models.ItemType{Name: req.Name}
	if err := h.typeRepo.Create(c.Request.Context(), &itemType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, itemType)
}

func (h *ItemTypeHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	itemType, err := h.typeRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if itemType == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item type not found"})
		return
	}
	c.JSON(http.StatusOK, itemType)
}

func (h *ItemTypeHandler) GetAll(c *gin.Context) {
	itemTypes, err := h.typeRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, itemTypes)
}

func (h *ItemTypeHandler) Update(c *gin.Context) {
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

	itemType, err := h.typeRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if itemType == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item type not found"})
		return
	}

	itemType.Name = req.Name
	if err := h.typeRepo.Update(c.Request.Context(), itemType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, itemType)
}

func (h *ItemTypeHandler) Archive(c *gin.Context) {
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

	archived, err := h.typeRepo.ArchiveByID(c.Request.Context(), id, req.ArchiveNote)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if archived == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item type not found"})
		return
	}
	c.JSON(http.StatusOK, archived)
}
