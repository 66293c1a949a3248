package http

import (
	"encoding/json"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"
	"gorm.io/gorm"

	"finance-ledger-go/internal/database"
	"finance-ledger-go/internal/models"
)

// userAccount verifies the account belongs to the requesting user.
func (s *Server) userAccount(c *gin.Context, accountID string) (*models.Account, bool) {
	userID := c.MustGet("userID").(string)
	var acc models.Account
	if err := database.DB.Where("id = ? AND user_id = ?", accountID, userID).First(&acc).Error; err != nil {
		c.JSON(404, gin.H{"error": "account_not_found"})
		return nil, false
	}
	return &acc, true
}

// userTransaction resolves a transaction id through the account ownership
// chain.
func (s *Server) userTransaction(c *gin.Context, id string) (*models.Transaction, bool) {
	userID := c.MustGet("userID").(string)
	var t models.Transaction
	err := database.DB.Preload("SalaryEntries").
		Joins("JOIN accounts ON accounts.id = transactions.account_id").
		Where("transactions.id = ? AND accounts.user_id = ?", id, userID).
		First(&t).Error
	if err != nil {
		c.JSON(404, gin.H{"error": "transaction_not_found"})
		return nil, false
	}
	return &t, true
}

func (s *Server) listTransactions(c *gin.Context) {
	accountID := c.Query("account_id")
	if accountID == "" {
		acc, ok := s.activeAccount(c)
		if !ok {
			return
		}
		accountID = acc.ID
	}
	if _, ok := s.userAccount(c, accountID); !ok {
		return
	}

	query := database.DB.Preload("SalaryEntries").
		Where("account_id = ?", accountID).
		Order("date asc, created_at asc")

	if start := c.Query("start_date"); start != "" {
		query = query.Where("date >= ?", start)
	}
	if end := c.Query("end_date"); end != "" {
		query = query.Where("date <= ?", end)
	}

	var txs []models.Transaction
	if err := query.Find(&txs).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, txs)
}

func (s *Server) saveTransaction(c *gin.Context) {
	var t models.Transaction
	if err := c.BindJSON(&t); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if t.AccountID == "" {
		acc, ok := s.activeAccount(c)
		if !ok {
			return
		}
		t.AccountID = acc.ID
	} else if _, ok := s.userAccount(c, t.AccountID); !ok {
		return
	}

	if _, err := time.Parse("2006-01-02", t.Date); err != nil {
		c.JSON(400, gin.H{"error": "invalid_date"})
		return
	}

	t.ID = ""
	if err := database.DB.Create(&t).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, t)
}

func (s *Server) getTransaction(c *gin.Context) {
	t, ok := s.userTransaction(c, c.Param("id"))
	if !ok {
		return
	}
	c.JSON(200, t)
}

func (s *Server) updateTransaction(c *gin.Context) {
	t, ok := s.userTransaction(c, c.Param("id"))
	if !ok {
		return
	}

	var input map[string]interface{}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	// Amount fields are forgiving: a non-number in the payload just leaves
	// the stored value alone.
	if v, ok := input["date"].(string); ok {
		if _, err := time.Parse("2006-01-02", v); err != nil {
			c.JSON(400, gin.H{"error": "invalid_date"})
			return
		}
		t.Date = v
	}
	if v, ok := input["investment"].(float64); ok {
		t.Investment = v
	}
	if v, ok := input["earnings"].(float64); ok {
		t.Earnings = v
	}
	if v, ok := input["spending"].(float64); ok {
		t.Spending = v
	}
	if v, ok := input["to_be_credit"].(float64); ok {
		t.ToBeCredit = v
	}
	if v, ok := input["salary"].(float64); ok {
		t.Salary = v
	}
	if v, ok := input["debt"].(float64); ok {
		t.Debt = v
	}
	if v, ok := input["interest_rate"].(float64); ok {
		t.InterestRate = v
	}

	if err := database.DB.Save(t).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, t)
}

// deleteTransaction cascades to the associated salary entries.
func (s *Server) deleteTransaction(c *gin.Context) {
	t, ok := s.userTransaction(c, c.Param("id"))
	if !ok {
		return
	}

	if err := database.DB.Delete(t).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "transaction_deleted"})
}

// transferCredit moves an amount from toBeCredit into realized earnings.
func (s *Server) transferCredit(c *gin.Context) {
	t, ok := s.userTransaction(c, c.Param("id"))
	if !ok {
		return
	}

	var input struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if t.ToBeCredit < input.Amount {
		c.JSON(422, gin.H{"error": "insufficient_credit"})
		return
	}

	t.ToBeCredit -= input.Amount
	t.Earnings += input.Amount
	if err := database.DB.Save(t).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, t)
}

// findOrCreateByDate returns the account's transaction for a date,
// creating an empty one when the day has no record yet. Salary and debt
// entry flows go through this so an entry never dangles without a parent.
func findOrCreateByDate(tx *gorm.DB, accountID, date string) (*models.Transaction, error) {
	var t models.Transaction
	err := tx.Where("account_id = ? AND date = ?", accountID, date).First(&t).Error
	if err == gorm.ErrRecordNotFound {
		t = models.Transaction{AccountID: accountID, Date: date}
		if err := tx.Create(&t).Error; err != nil {
			return nil, err
		}
		return &t, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// addSalaryEntry appends an itemized entry and increments the day's
// salary total.
func (s *Server) addSalaryEntry(c *gin.Context) {
	var input struct {
		AccountID     string  `json:"account_id"`
		TransactionID string  `json:"transaction_id"`
		Name          string  `json:"name" binding:"required"`
		Purpose       string  `json:"purpose"`
		Amount        float64 `json:"amount" binding:"required,gt=0"`
		Date          string  `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		c.JSON(400, gin.H{"error": "invalid_date"})
		return
	}

	accountID := input.AccountID
	if accountID == "" {
		acc, ok := s.activeAccount(c)
		if !ok {
			return
		}
		accountID = acc.ID
	} else if _, ok := s.userAccount(c, accountID); !ok {
		return
	}

	var entry models.SalaryEntry
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var t *models.Transaction
		var err error
		if input.TransactionID != "" {
			var found models.Transaction
			if err := tx.Where("id = ? AND account_id = ?", input.TransactionID, accountID).First(&found).Error; err != nil {
				return err
			}
			t = &found
		} else {
			t, err = findOrCreateByDate(tx, accountID, input.Date)
			if err != nil {
				return err
			}
		}

		entry = models.SalaryEntry{
			TransactionID: t.ID,
			Name:          input.Name,
			Purpose:       input.Purpose,
			Amount:        input.Amount,
			Date:          input.Date,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		t.Salary += input.Amount
		return tx.Save(t).Error
	})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, entry)
}

// addDebtEntry records a debt principal with its annual rate on the day's
// transaction.
func (s *Server) addDebtEntry(c *gin.Context) {
	var input struct {
		AccountID    string  `json:"account_id"`
		Amount       float64 `json:"amount" binding:"required,gt=0"`
		InterestRate float64 `json:"interest_rate" binding:"gte=0"`
		Date         string  `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		c.JSON(400, gin.H{"error": "invalid_date"})
		return
	}

	accountID := input.AccountID
	if accountID == "" {
		acc, ok := s.activeAccount(c)
		if !ok {
			return
		}
		accountID = acc.ID
	} else if _, ok := s.userAccount(c, accountID); !ok {
		return
	}

	var out *models.Transaction
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		t, err := findOrCreateByDate(tx, accountID, input.Date)
		if err != nil {
			return err
		}
		t.Debt += input.Amount
		t.InterestRate = input.InterestRate
		out = t
		return tx.Save(t).Error
	})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, out)
}

type importedTransaction struct {
	Date         string  `json:"date"`
	Investment   float64 `json:"investment"`
	Earnings     float64 `json:"earnings"`
	Spending     float64 `json:"spending"`
	ToBeCredit   float64 `json:"to_be_credit"`
	Salary       float64 `json:"salary"`
	Debt         float64 `json:"debt"`
	InterestRate float64 `json:"interest_rate"`
}

// importTransactions bulk-loads transactions into the active account. The
// payload is validated against the JSON Schema before anything is written.
func (s *Server) importTransactions(c *gin.Context) {
	acc, ok := s.activeAccount(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(400, gin.H{"error": "failed_read_body"})
		return
	}

	res, err := s.validator.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		c.JSON(500, gin.H{"error": "validation_failed"})
		return
	}
	if !res.Valid() {
		details := []string{}
		for _, e := range res.Errors() {
			details = append(details, e.String())
		}
		c.JSON(422, gin.H{"error": "schema_invalid", "details": details})
		return
	}

	var imported []importedTransaction
	if err := json.Unmarshal(body, &imported); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	txs := make([]models.Transaction, len(imported))
	for i, in := range imported {
		txs[i] = models.Transaction{
			AccountID:    acc.ID,
			Date:         in.Date,
			Investment:   in.Investment,
			Earnings:     in.Earnings,
			Spending:     in.Spending,
			ToBeCredit:   in.ToBeCredit,
			Salary:       in.Salary,
			Debt:         in.Debt,
			InterestRate: in.InterestRate,
		}
	}

	if len(txs) > 0 {
		if err := database.DB.Create(&txs).Error; err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(201, gin.H{"imported": len(txs)})
}
