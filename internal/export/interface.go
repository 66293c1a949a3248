package export

import (
	"context"

	"finance-ledger-go/internal/models"
)

// Source supplies the transaction set an export is built from. The service
// depends on this interface, not on the database layer.
//
//go:generate mockgen -destination=mocks/mock_source.go -package=mocks -source=interface.go Source
type Source interface {
	Transactions(ctx context.Context, accountID string) ([]models.Transaction, error)
}
