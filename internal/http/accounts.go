package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"finance-ledger-go/internal/database"
	"finance-ledger-go/internal/models"
)

func (s *Server) listAccounts(c *gin.Context) {
	userID := c.MustGet("userID").(string)

	var accounts []models.Account
	if err := database.DB.Where("user_id = ?", userID).Order("account_number asc").Find(&accounts).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, accounts)
}

func (s *Server) createAccount(c *gin.Context) {
	userID := c.MustGet("userID").(string)

	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	var count int64
	database.DB.Model(&models.Account{}).Where("user_id = ?", userID).Count(&count)

	acc := models.Account{
		UserID:        userID,
		Name:          input.Name,
		AccountNumber: int(count) + 1,
		IsActive:      count == 0, // first account becomes active
	}
	if err := database.DB.Create(&acc).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, acc)
}

func (s *Server) updateAccount(c *gin.Context) {
	userID := c.MustGet("userID").(string)

	var acc models.Account
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&acc).Error; err != nil {
		c.JSON(404, gin.H{"error": "account_not_found"})
		return
	}

	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	acc.Name = input.Name
	if err := database.DB.Save(&acc).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, acc)
}

// deleteAccount removes an account and, through the FK constraints, its
// transactions and their salary entries.
func (s *Server) deleteAccount(c *gin.Context) {
	userID := c.MustGet("userID").(string)

	var acc models.Account
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&acc).Error; err != nil {
		c.JSON(404, gin.H{"error": "account_not_found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&acc).Error; err != nil {
			return err
		}
		// Deleting the active account promotes the lowest-numbered survivor.
		if acc.IsActive {
			var next models.Account
			if err := tx.Where("user_id = ?", userID).Order("account_number asc").First(&next).Error; err == nil {
				next.IsActive = true
				return tx.Save(&next).Error
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "account_deleted"})
}

// activateAccount switches which account feeds all summaries. Exactly one
// account per user is active at a time.
func (s *Server) activateAccount(c *gin.Context) {
	userID := c.MustGet("userID").(string)

	var acc models.Account
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&acc).Error; err != nil {
		c.JSON(404, gin.H{"error": "account_not_found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Account{}).Where("user_id = ?", userID).Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&acc).Update("is_active", true).Error
	})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	acc.IsActive = true
	c.JSON(200, acc)
}

func (s *Server) getProfile(c *gin.Context) {
	userID := c.MustGet("userID").(string)
	c.JSON(200, s.profileFor(userID))
}

func (s *Server) updateProfile(c *gin.Context) {
	userID := c.MustGet("userID").(string)

	var p models.Profile
	if err := database.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		c.JSON(404, gin.H{"error": "profile_not_found"})
		return
	}

	var input struct {
		FullName    *string `json:"full_name"`
		Currency    *string `json:"currency"`
		DebtEnabled *bool   `json:"debt_enabled"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if input.FullName != nil {
		p.FullName = *input.FullName
	}
	if input.Currency != nil {
		p.Currency = *input.Currency
	}
	if input.DebtEnabled != nil {
		p.DebtEnabled = *input.DebtEnabled
	}

	if err := database.DB.Save(&p).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, p)
}
