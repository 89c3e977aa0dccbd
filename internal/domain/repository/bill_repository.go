package repository

import (
	"context"

	"github.com/madhuram-pos/pos-api/internal/domain/entity"
)

// BillRepository defines the interface for the append-only bill ledger.
type BillRepository interface {
	// Append inserts the bill header and its line items as one atomic unit.
	// On failure nothing is committed: no header without items, no orphan
	// items.
	Append(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uint) (*entity.Bill, error)
	// ListAll returns every stored bill with its line items, ordered by
	// insertion (ascending id). Presentation order is the caller's concern.
	ListAll(ctx context.Context) ([]entity.Bill, error)
	// ClearAll deletes every bill and every line item. Irreversible.
	ClearAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
