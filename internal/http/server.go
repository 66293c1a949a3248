package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/xeipuuv/gojsonschema"

	"finance-ledger-go/internal/analytics"
	"finance-ledger-go/internal/config"
	"finance-ledger-go/internal/database"
	"finance-ledger-go/internal/export"
	"finance-ledger-go/internal/localstore"
	"finance-ledger-go/internal/models"
)

type Server struct {
	cfg       *config.Config
	log       zerolog.Logger
	store     *localstore.Store
	exporter  *export.Service
	validator *gojsonschema.Schema
}

// dbSource adapts the gorm layer to the export.Source interface.
type dbSource struct{}

func (dbSource) Transactions(ctx context.Context, accountID string) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := database.DB.WithContext(ctx).
		Preload("SalaryEntries").
		Where("account_id = ?", accountID).
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("could not load transactions for account %s: %w", accountID, err)
	}
	return txs, nil
}

func NewServer(cfg *config.Config, log zerolog.Logger, store *localstore.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors(cfg))
	r.Use(logging(log))

	loader := gojsonschema.NewReferenceLoader("file://./schemas/transaction_import.schema.json")
	schema, err := gojsonschema.NewSchema(loader)
	if err != nil {
		panic(err)
	}

	s := &Server{
		cfg:       cfg,
		log:       log,
		store:     store,
		exporter:  export.NewService(dbSource{}, analytics.CreditCounted),
		validator: schema,
	}

	r.POST("/v1/auth/guest", s.authGuest)
	r.POST("/v1/auth/register", s.authRegister)
	r.POST("/v1/auth/login", s.authLogin)

	authorized := r.Group("/v1")
	authorized.Use(AuthMiddleware())
	{
		authorized.GET("/accounts", s.listAccounts)
		authorized.POST("/accounts", s.createAccount)
		authorized.PUT("/accounts/:id", s.updateAccount)
		authorized.DELETE("/accounts/:id", s.deleteAccount)
		authorized.POST("/accounts/:id/activate", s.activateAccount)

		authorized.GET("/transactions", s.listTransactions)
		authorized.POST("/transactions", s.saveTransaction)
		authorized.GET("/transactions/:id", s.getTransaction)
		authorized.PUT("/transactions/:id", s.updateTransaction)
		authorized.DELETE("/transactions/:id", s.deleteTransaction)
		authorized.POST("/transactions/:id/transfer-credit", s.transferCredit)
		authorized.POST("/transactions/import", s.importTransactions)

		authorized.POST("/salary-entries", s.addSalaryEntry)
		authorized.POST("/debt-entries", s.addDebtEntry)

		authorized.GET("/summary", s.getSummary)
		authorized.GET("/analytics/daily", s.getDaily)
		authorized.GET("/analytics/yearly", s.getYearly)
		authorized.GET("/analytics/monthly", s.getMonthly)
		authorized.GET("/analytics/monthly-table", s.getMonthlyTable)
		authorized.GET("/analytics/performance", s.getPerformance)
		authorized.GET("/analytics/income-sources", s.getIncomeSources)
		authorized.GET("/analytics/spending", s.getSpendingBreakdown)
		authorized.GET("/analytics/all-accounts", s.getAllAccounts)
		authorized.GET("/analytics/calendar", s.getCalendar)

		authorized.GET("/goals", s.getGoals)
		authorized.PUT("/goals", s.putGoals)
		authorized.POST("/goals/allocate", s.allocateGoals)
		authorized.GET("/notes", s.getNotes)
		authorized.PUT("/notes", s.putNotes)
		authorized.GET("/calculator", s.getCalculatorHistory)
		authorized.PUT("/calculator", s.putCalculatorHistory)

		authorized.GET("/export/monthly.csv", s.exportMonthlyCSV)
		authorized.GET("/export/yearly.csv", s.exportYearlyCSV)
		authorized.GET("/export/summary.pdf", s.exportSummaryPDF)

		authorized.GET("/invoices", s.listInvoices)
		authorized.POST("/invoices", s.saveInvoice)
		authorized.GET("/invoices/:id", s.getInvoice)
		authorized.PUT("/invoices/:id", s.updateInvoice)
		authorized.DELETE("/invoices/:id", s.deleteInvoice)
		authorized.GET("/invoices/:id/pdf", s.invoicePDF)

		authorized.GET("/profile", s.getProfile)
		authorized.PUT("/profile", s.updateProfile)
	}

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	return r
}

// activeAccount resolves the user's currently active account, the one
// feeding all summaries.
func (s *Server) activeAccount(c *gin.Context) (*models.Account, bool) {
	userID := c.MustGet("userID").(string)
	var acc models.Account
	if err := database.DB.Where("user_id = ? AND is_active = ?", userID, true).First(&acc).Error; err != nil {
		c.JSON(404, gin.H{"error": "no_active_account"})
		return nil, false
	}
	return &acc, true
}

func (s *Server) profileFor(userID string) models.Profile {
	var p models.Profile
	database.DB.Where("user_id = ?", userID).First(&p)
	return p
}

// accountTransactions loads the full transaction set of one account with
// salary entries attached.
func (s *Server) accountTransactions(c *gin.Context, accountID string) ([]models.Transaction, bool) {
	txs, err := dbSource{}.Transactions(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return nil, false
	}
	return txs, true
}
