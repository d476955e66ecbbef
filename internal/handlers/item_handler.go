package handlers

import (
	"net/http"

	"sop_inventory/internal/models"
	"sop_inventory/internal/repository"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	itemRepo   repository.ItemRepository
	statusRepo repository.StatusRepository
}

func NewItemHandler(itemRepo repository.ItemRepository, statusRepo repository.StatusRepository) *ItemHandler {
	return &ItemHandler{itemRepo: itemRepo, statusRepo: statusRepo}
}

func (h *ItemHandler) Create(c *gin.Context) {
	var req struct {
		ItemGroupID   uint    `json:"item_group_id" binding:"required"`
		RoomID        uint    `json:"room_id" binding:"required"`
		SerialNumber  string  `json:"serial_number" binding:"required"`
		ItemImageURL  *string `json:"item_image_url"`
		ItemImageInfo *string `json:"item_image_info"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.Item{
		ItemGroupID:   req.ItemGroupID,
		RoomID:        req.RoomID,
		SerialNumber:  req.SerialNumber,
		ItemImageURL:  req.ItemImageURL,
		ItemImageInfo: req.ItemImageInfo,
	}
	if err := h.itemRepo.Create(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// New stock starts out working.
	if err := h.statusRepo.SetItemStatus(c.Request.Context(), item.ID, models.StatusNameAvailable, nil); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	item, err := h.itemRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) GetAll(c *gin.Context) {
	items, err := h.itemRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req struct {
		ItemGroupID   uint    `json:"item_group_id" binding:"required"`
		RoomID        uint    `json:"room_id" binding:"required"`
		SerialNumber  string  `json:"serial_number" binding:"required"`
		ItemImageURL  *string `json:"item_image_url"`
		ItemImageInfo *string `json:"item_image_info"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.itemRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	item.ItemGroupID = req.ItemGroupID
	item.RoomID = req.RoomID
	item.SerialNumber = req.SerialNumber
	item.ItemImageURL = req.ItemImageURL
	item.ItemImageInfo = req.ItemImageInfo
	if err := h.itemRepo.Update(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// SetStatus appends a status-history entry for the item.
func (h *ItemHandler) SetStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req struct {
		StatusName string  `json:"status_name" binding:"required"`
		Note       *string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.itemRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	if err := h.statusRepo.SetItemStatus(c.Request.Context(), id, req.StatusName, req.Note); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *ItemHandler) Archive(c *gin.Context) {
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

	archived, err := h.itemRepo.ArchiveByID(c.Request.Context(), id, req.ArchiveNote)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if archived == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.JSON(http.StatusOK, archived)
}
