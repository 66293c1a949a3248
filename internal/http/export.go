package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"finance-ledger-go/internal/money"
)

func (s *Server) exportMonthlyCSV(c *gin.Context) {
	acc, ok := s.activeAccount(c)
	if !ok {
		return
	}

	year := queryYear(c)
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="monthly_overview_%d.csv"`, year))
	if err := s.exporter.MonthlyCSV(c.Request.Context(), acc.ID, year, c.Writer); err != nil {
		s.log.Error().Err(err).Msg("monthly csv export failed")
		c.Status(500)
	}
}

func (s *Server) exportYearlyCSV(c *gin.Context) {
	acc, ok := s.activeAccount(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="yearly_analysis.csv"`)
	if err := s.exporter.YearlyCSV(c.Request.Context(), acc.ID, c.Writer); err != nil {
		s.log.Error().Err(err).Msg("yearly csv export failed")
		c.Status(500)
	}
}

func (s *Server) exportSummaryPDF(c *gin.Context) {
	acc, ok := s.activeAccount(c)
	if !ok {
		return
	}

	profile := s.profileFor(acc.UserID)
	cur := money.FromProfile(profile.Currency)
	year, month := queryYear(c), queryMonth(c)

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="financial_report_%d_%02d.pdf"`, year, int(month)))
	err := s.exporter.SummaryPDFReport(c.Request.Context(), acc.ID, year, month, profile.DebtEnabled, cur, c.Writer)
	if err != nil {
		s.log.Error().Err(err).Msg("summary pdf export failed")
		c.Status(500)
	}
}
