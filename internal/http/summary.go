package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"finance-ledger-go/internal/analytics"
	"finance-ledger-go/internal/database"
	"finance-ledger-go/internal/models"
)

func queryYear(c *gin.Context) int {
	if v, err := strconv.Atoi(c.Query("year")); err == nil && v > 0 {
		return v
	}
	return time.Now().Year()
}

func queryMonth(c *gin.Context) time.Month {
	if v, err := strconv.Atoi(c.Query("month")); err == nil && v >= 1 && v <= 12 {
		return time.Month(v)
	}
	return time.Now().Month()
}

// creditPolicy lets a caller opt into strict realized-cash figures with
// ?credit=deferred; the default counts uncredited amounts, matching the
// historical dashboards.
func creditPolicy(c *gin.Context) analytics.CreditPolicy {
	if c.Query("credit") == "deferred" {
		return analytics.CreditDeferred
	}
	return analytics.CreditCounted
}

// getSummary returns the account summary card figures for the viewed
// month of the active account.
func (s *Server) getSummary(c *gin.Context) {
	acc, ok := s.activeAccount(c)
	if !ok {
		return
	}
	txs, ok := s.accountTransactions(c, acc.ID)
	if !ok {
		return
	}

	profile := s.profileFor(acc.UserID)
	summary := analytics.MonthSummary(txs, queryYear(c), queryMonth(c), profile.DebtEnabled, creditPolicy(c))
	c.JSON(200, summary)
}

func (s *Server) getDaily(c *gin.Context) {
	acc, ok := s.activeAccount(c)
	if !ok {
		return
	}
	txs, ok := s.accountTransactions(c, acc.ID)
	if !ok {
		return
	}
	c.JSON(200, analytics.GroupByDay(txs, creditPolicy(c)))
}

func (s *Server) getYearly(c *gin.Context) {
	acc, ok := s.activeAccount(c)
	if !ok {
		return
	}
	txs, ok := s.accountTransactions(c, acc.ID)
	if !ok {
		return
	}
	c.JSON(200, analytics.GroupByYear(txs, creditPolicy(c)))
}

func (s *Server) getMonthly(c *gin.Context) {
	acc, ok := s.activeAccount(c)
	if !ok {
		return
	}
	txs, ok := s.accountTransactions(c, acc.ID)
	if !ok {
		return
	}
	c.JSON(200, analytics.GroupByMonth(txs, queryYear(c), creditPolicy(c)))
}

func (s *Server) getMonthlyTable(c *gin.Context) {
	acc, ok := s.activeAccount(c)
	if !ok {
		return
	}
	txs, ok := s.accountTransactions(c, acc.ID)
	if !ok {
		return
	}
	c.JSON(200, analytics.MonthlyTable(txs, queryYear(c), creditPolicy(c)))
}

// getPerformance ranks the year's months by ROI and names the best and
// worst month by profit.
func (s *Server) getPerformance(c *gin.Context) {
	acc, ok := s.activeAccount(c)
	if !ok {
		return
	}
	txs, ok := s.accountTransactions(c, acc.ID)
	if !ok {
		return
	}

	months := analytics.GroupByMonth(txs, queryYear(c), creditPolicy(c))
	ranked := analytics.RankByROI(months)

	resp := gin.H{"ranked_by_roi": ranked}
	if best, worst, ok := analytics.BestWorstByProfit(months); ok {
		resp["best_month"] = best
		resp["worst_month"] = worst
	}
	c.JSON(200, resp)
}

func (s *Server) getIncomeSources(c *gin.Context) {
	acc, ok := s.activeAccount(c)
	if !ok {
		return
	}
	txs, ok := s.accountTransactions(c, acc.ID)
	if !ok {
		return
	}
	c.JSON(200, analytics.IncomeSources(txs))
}

func (s *Server) getSpendingBreakdown(c *gin.Context) {
	acc, ok := s.activeAccount(c)
	if !ok {
		return
	}
	txs, ok := s.accountTransactions(c, acc.ID)
	if !ok {
		return
	}
	c.JSON(200, analytics.SpendingBreakdown(txs))
}

// getAllAccounts aggregates across every account of the user: combined
// summary, all-time yearly buckets, and the current year's months.
func (s *Server) getAllAccounts(c *gin.Context) {
	userID := c.MustGet("userID").(string)

	var accounts []models.Account
	if err := database.DB.Where("user_id = ?", userID).Find(&accounts).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	byAccount := make(map[string][]models.Transaction, len(accounts))
	var all []models.Transaction
	for _, acc := range accounts {
		txs, ok := s.accountTransactions(c, acc.ID)
		if !ok {
			return
		}
		byAccount[acc.ID] = txs
		all = append(all, txs...)
	}

	policy := creditPolicy(c)
	months := analytics.GroupByMonth(all, time.Now().Year(), policy)

	resp := gin.H{
		"summary": analytics.AllAccountsSummary(byAccount, policy),
		"yearly":  analytics.GroupByYear(all, policy),
		"monthly": months,
	}
	if best, worst, ok := analytics.BestWorstByProfit(months); ok {
		resp["best_month"] = best
		resp["worst_month"] = worst
	}
	c.JSON(200, resp)
}

// getCalendar returns the signed per-date entries of the viewed month.
func (s *Server) getCalendar(c *gin.Context) {
	acc, ok := s.activeAccount(c)
	if !ok {
		return
	}
	txs, ok := s.accountTransactions(c, acc.ID)
	if !ok {
		return
	}

	profile := s.profileFor(acc.UserID)
	entries := analytics.MonthCalendar(txs, queryYear(c), queryMonth(c), profile.DebtEnabled)
	c.JSON(200, entries)
}
