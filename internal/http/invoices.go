package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"finance-ledger-go/internal/database"
	"finance-ledger-go/internal/export"
	"finance-ledger-go/internal/models"
	"finance-ledger-go/internal/money"
)

type invoiceInput struct {
	AccountID     string `json:"account_id"`
	InvoiceNumber string `json:"invoice_number" binding:"required"`
	Date          string `json:"date" binding:"required"`
	DueDate       string `json:"due_date"`
	ClientName    string `json:"client_name" binding:"required"`
	ClientEmail   string `json:"client_email"`
	ClientAddress string `json:"client_address"`
	Notes         string `json:"notes"`
	Items         []struct {
		Description string  `json:"description" binding:"required"`
		Quantity    float64 `json:"quantity" binding:"required,gt=0"`
		Rate        float64 `json:"rate" binding:"required,gte=0"`
	} `json:"items" binding:"required,min=1"`
}

// buildInvoice computes line amounts and the total; clients never send
// them.
func buildInvoice(in invoiceInput, userID string) models.Invoice {
	inv := models.Invoice{
		UserID:        userID,
		AccountID:     in.AccountID,
		InvoiceNumber: in.InvoiceNumber,
		Date:          in.Date,
		DueDate:       in.DueDate,
		ClientName:    in.ClientName,
		ClientEmail:   in.ClientEmail,
		ClientAddress: in.ClientAddress,
		Notes:         in.Notes,
	}
	for _, item := range in.Items {
		amount := money.LineAmount(item.Quantity, item.Rate)
		inv.Items = append(inv.Items, models.InvoiceItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      amount,
		})
		inv.TotalAmount += amount
	}
	return inv
}

func (s *Server) listInvoices(c *gin.Context) {
	userID := c.MustGet("userID").(string)

	var invoices []models.Invoice
	if err := database.DB.Preload("Items").Where("user_id = ?", userID).Order("date desc").Find(&invoices).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, invoices)
}

func (s *Server) saveInvoice(c *gin.Context) {
	userID := c.MustGet("userID").(string)

	var input invoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	inv := buildInvoice(input, userID)
	if err := database.DB.Create(&inv).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, inv)
}

func (s *Server) userInvoice(c *gin.Context, id string) (*models.Invoice, bool) {
	userID := c.MustGet("userID").(string)
	var inv models.Invoice
	if err := database.DB.Preload("Items").Where("id = ? AND user_id = ?", id, userID).First(&inv).Error; err != nil {
		c.JSON(404, gin.H{"error": "invoice_not_found"})
		return nil, false
	}
	return &inv, true
}

func (s *Server) getInvoice(c *gin.Context) {
	inv, ok := s.userInvoice(c, c.Param("id"))
	if !ok {
		return
	}
	c.JSON(200, inv)
}

// updateInvoice replaces the document wholesale, items included.
func (s *Server) updateInvoice(c *gin.Context) {
	inv, ok := s.userInvoice(c, c.Param("id"))
	if !ok {
		return
	}

	var input invoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	replacement := buildInvoice(input, inv.UserID)
	replacement.ID = inv.ID

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", inv.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.Save(&replacement).Error
	})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, replacement)
}

// deleteInvoice cascades to the line items.
func (s *Server) deleteInvoice(c *gin.Context) {
	inv, ok := s.userInvoice(c, c.Param("id"))
	if !ok {
		return
	}

	if err := database.DB.Delete(inv).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "invoice_deleted"})
}

func (s *Server) invoicePDF(c *gin.Context) {
	inv, ok := s.userInvoice(c, c.Param("id"))
	if !ok {
		return
	}

	profile := s.profileFor(inv.UserID)
	cur := money.FromProfile(profile.Currency)

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice_%s.pdf"`, inv.InvoiceNumber))
	if err := export.InvoicePDF(c.Writer, cur, *inv); err != nil {
		s.log.Error().Err(err).Msg("invoice pdf failed")
		c.Status(500)
	}
}
