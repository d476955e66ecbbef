package handlers

import (
	"net/http"

	"sop_inventory/internal/models"
	"sop_inventory/internal/repository"

	"github.com/gin-gonic/gin"
)

// LocationHandler serves addresses, buildings and rooms.
type LocationHandler struct {
	addressRepo  repository.AddressRepository
	buildingRepo repository.BuildingRepository
	roomRepo     repository.RoomRepository
}

func NewLocationHandler(
	addressRepo repository.AddressRepository,
	buildingRepo repository.BuildingRepository,
	roomRepo repository.RoomRepository,
) *LocationHandler {
	return &LocationHandler{
		addressRepo:  addressRepo,
		buildingRepo: buildingRepo,
		roomRepo:     roomRepo,
	}
}

// Addresses

func (h *LocationHandler) CreateAddress(c *gin.Context) {
	var req struct {
		Road    string `json:"road" binding:"required"`
		Number  string `json:"number" binding:"required"`
		City    string `json:"city" binding:"required"`
		ZipCode string `json:"zip_code" binding:"required"`
		Region  string `json:"region"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	address := models.Address{
		Road:    req.Road,
		Number:  req.Number,
		City:    req.City,
		ZipCode: req.ZipCode,
		Region:  req.Region,
	}
	if err := h.addressRepo.Create(c.Request.Context(), &address); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, address)
}

func (h *LocationHandler) GetAddresses(c *gin.Context) {
	addresses, err := h.addressRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (h *LocationHandler) UpdateAddress(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req struct {
		Road    string `json:"road" binding:"required"`
		Number  string `json:"number" binding:"required"`
		City    string `json:"city" binding:"required"`
		ZipCode string `json:"zip_code" binding:"required"`
		Region  string `json:"region"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	address, err := h.addressRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if address == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
		return
	}

	address.Road = req.Road
	address.Number = req.Number
	address.City = req.City
	address.ZipCode = req.ZipCode
	address.Region = req.Region
	if err := h.addressRepo.Update(c.Request.Context(), address); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, address)
}

func (h *LocationHandler) DeleteAddress(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	address, err := h.addressRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if address == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
		return
	}
	if err := h.addressRepo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Buildings

func (h *LocationHandler) CreateBuilding(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		AddressID uint   `json:"address_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	building := models.Building{Name: req.Name, AddressID: req.AddressID}
	if err := h.buildingRepo.Create(c.Request.Context(), &building); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, building)
}

func (h *LocationHandler) GetBuilding(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	building, err := h.buildingRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if building == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "building not found"})
		return
	}
	c.JSON(http.StatusOK, building)
}

func (h *LocationHandler) GetBuildings(c *gin.Context) {
	buildings, err := h.buildingRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, buildings)
}

func (h *LocationHandler) UpdateBuilding(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req struct {
		Name      string `json:"name" binding:"required"`
		AddressID uint   `json:"address_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	building, err := h.buildingRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if building == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "building not found"})
		return
	}

	building.Name = req.Name
	building.AddressID = req.AddressID
	if err := h.buildingRepo.Update(c.Request.Context(), building); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, building)
}

func (h *LocationHandler) DeleteBuilding(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	building, err := h.buildingRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if building == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "building not found"})
		return
	}
	if err := h.buildingRepo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Rooms

func (h *LocationHandler) CreateRoom(c *gin.Context) {
	var req struct {
		RoomNumber string `json:"room_number" binding:"required"`
		BuildingID uint   `json:"building_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room := models.Room{RoomNumber: req.RoomNumber, BuildingID: req.BuildingID}
	if err := h.roomRepo.Create(c.Request.Context(), &room); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (h *LocationHandler) GetRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	room, err := h.roomRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if room == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *LocationHandler) GetRooms(c *gin.Context) {
	rooms, err := h.roomRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *LocationHandler) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req struct {
		RoomNumber string `json:"room_number" binding:"required"`
		BuildingID uint   `json:"building_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.roomRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if room == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	room.RoomNumber = req.RoomNumber
	room.BuildingID = req.BuildingID
	if err := h.roomRepo.Update(c.Request.Context(), room); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *LocationHandler) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	room, err := h.roomRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if room == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	if err := h.roomRepo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
