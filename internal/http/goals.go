package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"finance-ledger-go/internal/analytics"
	"finance-ledger-go/internal/localstore"
)

// Note is a free-form notepad entry kept in client-local storage.
type Note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Date string `json:"date"`
}

func (s *Server) getGoals(c *gin.Context) {
	goals := []analytics.Goal{}
	if err := s.store.Get(localstore.KeySavingsGoals, &goals); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, goals)
}

func (s *Server) putGoals(c *gin.Context) {
	var goals []analytics.Goal
	if err := c.ShouldBindJSON(&goals); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	for i := range goals {
		if goals[i].ID == "" {
			goals[i].ID = uuid.NewString()
		}
	}
	if err := s.store.Put(localstore.KeySavingsGoals, goals); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, goals)
}

// allocateGoals distributes the active account's available savings across
// the stored goals and persists the result.
func (s *Server) allocateGoals(c *gin.Context) {
	acc, ok := s.activeAccount(c)
	if !ok {
		return
	}
	txs, ok := s.accountTransactions(c, acc.ID)
	if !ok {
		return
	}

	goals := []analytics.Goal{}
	if err := s.store.Get(localstore.KeySavingsGoals, &goals); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if len(goals) == 0 {
		c.JSON(422, gin.H{"error": "no_goals"})
		return
	}

	available := analytics.AvailableSavings(txs)
	updated := analytics.AllocateSavings(goals, available)
	if err := s.store.Put(localstore.KeySavingsGoals, updated); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"available_savings": available, "goals": updated})
}

func (s *Server) getNotes(c *gin.Context) {
	notes := []Note{}
	if err := s.store.Get(localstore.KeyNotes, &notes); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, notes)
}

func (s *Server) putNotes(c *gin.Context) {
	var notes []Note
	if err := c.ShouldBindJSON(&notes); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	for i := range notes {
		if notes[i].ID == "" {
			notes[i].ID = uuid.NewString()
		}
	}
	if err := s.store.Put(localstore.KeyNotes, notes); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, notes)
}

func (s *Server) getCalculatorHistory(c *gin.Context) {
	history := []string{}
	if err := s.store.Get(localstore.KeyCalculatorHistory, &history); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, history)
}

func (s *Server) putCalculatorHistory(c *gin.Context) {
	var history []string
	if err := c.ShouldBindJSON(&history); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.Put(localstore.KeyCalculatorHistory, history); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, history)
}
