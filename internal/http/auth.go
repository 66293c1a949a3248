package http

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"finance-ledger-go/internal/database"
	"finance-ledger-go/internal/models"
)

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func randomHex() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func generateToken(user *models.User) string {
	return "token_" + user.ID + "_" + randomHex()
}

// defaultAccount seeds the first account so summaries have something to
// feed on immediately after signup.
func defaultAccount(tx *gorm.DB, userID string) error {
	return tx.Create(&models.Account{
		UserID:        userID,
		Name:          "Personal",
		IsActive:      true,
		AccountNumber: 1,
	}).Error
}

func defaultProfile(tx *gorm.DB, userID string) error {
	return tx.Create(&models.Profile{
		UserID:   userID,
		Currency: "INR (₹)",
	}).Error
}

// POST /v1/auth/guest
func (s *Server) authGuest(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
	}
	if err := c.ShouldBindJSON(&input); err != nil && err != io.EOF {
		c.JSON(400, gin.H{"error": "invalid_request"})
		return
	}

	username := input.Username
	if username == "" {
		username = "Guest_" + randomHex()[:8]
	}

	user := models.User{Username: username, IsGuest: true}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if err := defaultProfile(tx, user.ID); err != nil {
			return err
		}
		return defaultAccount(tx, user.ID)
	})
	if err != nil {
		c.JSON(500, gin.H{"error": "failed_create_guest"})
		return
	}

	c.JSON(200, AuthResponse{Token: generateToken(&user), User: &user})
}

// POST /v1/auth/register
func (s *Server) authRegister(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Username string `json:"username" binding:"required"`
		Pin      string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ? OR username = ?", input.Email, input.Username).First(&existing).Error; err == nil {
		c.JSON(409, gin.H{"error": "user_already_exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Pin), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(500, gin.H{"error": "failed_hash_pin"})
		return
	}

	user := models.User{
		Email:    &input.Email,
		Username: input.Username,
		PinHash:  string(hash),
	}
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if err := defaultProfile(tx, user.ID); err != nil {
			return err
		}
		return defaultAccount(tx, user.ID)
	})
	if err != nil {
		c.JSON(500, gin.H{"error": "failed_create_user"})
		return
	}

	user.HasPin = true
	c.JSON(201, AuthResponse{Token: generateToken(&user), User: &user})
}

// POST /v1/auth/login
func (s *Server) authLogin(c *gin.Context) {
	var input struct {
		Identifier string `json:"identifier" binding:"required"` // email or username
		Pin        string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	err := database.DB.Where("email = ? OR username = ?", input.Identifier, input.Identifier).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(401, gin.H{"error": "invalid_credentials"})
		return
	} else if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PinHash), []byte(input.Pin)) != nil {
		c.JSON(401, gin.H{"error": "invalid_credentials"})
		return
	}

	user.HasPin = user.PinHash != ""
	c.JSON(200, AuthResponse{Token: generateToken(&user), User: &user})
}
