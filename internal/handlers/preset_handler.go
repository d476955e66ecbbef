package handlers

import (
	"net/http"

	"sop_inventory/internal/models"
	"sop_inventory/internal/repository"

	"github.com/gin-gonic/gin"
)

type PresetHandler struct {
	presetRepo repository.PresetRepository
}

func NewPresetHandler(presetRepo repository.PresetRepository) *PresetHandler {
	return &PresetHandler{presetRepo: presetRepo}
}

func (h *PresetHandler) Create(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		ItemTypeID   uint   `json:"item_type_id" binding:"required"`
		PartGroupIDs []uint `json:"part_group_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preset := models.Preset{Name: req.Name, ItemTypeID: req.ItemTypeID}
	if err := h.presetRepo.Create(c.Request.Context(), &preset); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(req.PartGroupIDs) > 0 {
		if err := h.presetRepo.SetPartGroups(c.Request.Context(), preset.ID, req.PartGroupIDs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusCreated, preset)
}

func (h *PresetHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	preset, err := h.presetRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if preset == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
		return
	}
	c.JSON(http.StatusOK, preset)
}

func (h *PresetHandler) GetAll(c *gin.Context) {
	if itemTypeID, ok := parseQueryID(c, "item_type_id"); ok {
		presets, err := h.presetRepo.GetByItemTypeID(c.Request.Context(), itemTypeID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, presets)
		return
	}

	presets, err := h.presetRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, presets)
}

func (h *PresetHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req struct {
		Name         string `json:"name" binding:"required"`
		PartGroupIDs []uint `json:"part_group_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preset, err := h.presetRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if preset == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
		return
	}

	preset.Name = req.Name
	preset.PartGroups = nil
	if err := h.presetRepo.Update(c.Request.Context(), preset); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.presetRepo.SetPartGroups(c.Request.Context(), preset.ID, req.PartGroupIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, preset)
}

func (h *PresetHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	preset, err := h.presetRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if preset == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
		return
	}
	if err := h.presetRepo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
