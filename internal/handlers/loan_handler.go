package handlers

import (
	"net/http"
	"time"

	"sop_inventory/internal/models"
	"sop_inventory/internal/repository"

	"github.com/gin-gonic/gin"
)

type LoanHandler struct {
	loanRepo repository.LoanRepository
}

func NewLoanHandler(loanRepo repository.LoanRepository) *LoanHandler {
	return &LoanHandler{loanRepo: loanRepo}
}

type loanRequest struct {
	ItemID     uint       `json:"item_id" binding:"required"`
	BorrowerID uint       `json:"borrower_id" binding:"required"`
	ApproverID uint       `json:"approver_id" binding:"required"`
	LoanDate   *time.Time `json:"loan_date"`
	ReturnDate *time.Time `json:"return_date"`
}

func (h *LoanHandler) Create(c *gin.Context) {
	var req loanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loan := models.Loan{
		ItemID:     req.ItemID,
		BorrowerID: req.BorrowerID,
		ApproverID: req.ApproverID,
		ReturnDate: req.ReturnDate,
	}
	if req.LoanDate != nil {
		loan.LoanDate = *req.LoanDate
	}

	if err := h.loanRepo.Create(c.Request.Context(), &loan); err != nil {
		if err == repository.ErrItemOnLoan {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, loan)
}

func (h *LoanHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	loan, err := h.loanRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if loan == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "loan not found"})
		return
	}
	c.JSON(http.StatusOK, loan)
}

func (h *LoanHandler) GetAll(c *gin.Context) {
	loans, err := h.loanRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, loans)
}

func (h *LoanHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req loanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := models.Loan{
		ItemID:     req.ItemID,
		BorrowerID: req.BorrowerID,
		ApproverID: req.ApproverID,
		ReturnDate: req.ReturnDate,
	}
	if req.LoanDate != nil {
		update.LoanDate = *req.LoanDate
	}

	loan, err := h.loanRepo.UpdateByID(c.Request.Context(), id, &update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if loan == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "loan not found"})
		return
	}
	c.JSON(http.StatusOK, loan)
}

func (h *LoanHandler) Archive(c *gin.Context) {
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

	archived, err := h.loanRepo.ArchiveByID(c.Request.Context(), id, req.ArchiveNote)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if archived == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "loan not found"})
		return
	}
	c.JSON(http.StatusOK, archived)
}
