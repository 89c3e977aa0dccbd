package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/madhuram-pos/pos-api/internal/domain/entity"
	"github.com/madhuram-pos/pos-api/internal/domain/repository"
	"github.com/madhuram-pos/pos-api/pkg/apperror"
	"github.com/madhuram-pos/pos-api/pkg/totals"
)

// BillingService finalizes orders into ledger entries and serves the bill
// history. Finalizing is the only write path into the ledger besides the
// admin bulk-clear.
type BillingService struct {
	billRepo repository.BillRepository
	sequence *SequenceService
	policy   totals.Policy
	now      func() time.Time
	logger   *logrus.Logger
}

// NewBillingService creates a new billing service. now may be nil, in which
// case the system clock is used.
func NewBillingService(billRepo repository.BillRepository, sequence *SequenceService, policy totals.Policy, now func() time.Time, logger *logrus.Logger) *BillingService {
	if now == nil {
		now = time.Now
	}
	return &BillingService{
		billRepo: billRepo,
		sequence: sequence,
		policy:   policy,
		now:      now,
		logger:   logger,
	}
}

// FinalizeBillInput represents a finalize request: the transient order
// lines plus the order metadata captured on the bill header.
type FinalizeBillInput struct {
	Lines        []entity.OrderLine
	OrderType    string
	Cashier      string
	CustomerName string
}

// FinalizeBill converts an order into an immutable ledger entry: it issues
// the next bill number, computes totals, and appends the header plus line
// items atomically. The stored totals are what was charged; later menu
// price edits never alter them.
func (s *BillingService) FinalizeBill(ctx context.Context, input *FinalizeBillInput) (*entity.Bill, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Cannot finalize an empty order")
	}

	lines := make([]totals.Line, 0, len(input.Lines))
	for _, l := range input.Lines {
		if l.UnitPrice < 0 {
			return nil, apperror.NewBadRequestError("Item price cannot be negative")
		}
		if l.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}
		lines = append(lines, totals.Line{UnitPrice: l.UnitPrice, Quantity: l.Quantity})
	}

	billNumber, err := s.sequence.IssueNext(ctx)
	if err != nil {
		return nil, err
	}

	result := totals.Compute(lines, s.policy)

	now := s.now()
	bill := &entity.Bill{
		BillNumber:   billNumber,
		Date:         now.Format("2006-01-02"),
		Time:         now.Format("15:04:05"),
		OrderType:    input.OrderType,
		Cashier:      input.Cashier,
		CustomerName: input.CustomerName,
		Subtotal:     result.Subtotal,
		CGST:         result.CGST,
		SGST:         result.SGST,
		RoundOff:     result.RoundOff,
		GrandTotal:   result.GrandTotal,
	}
	for _, l := range input.Lines {
		bill.Items = append(bill.Items, entity.BillItem{
			ItemName:  l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Amount:    l.Amount(),
		})
	}

	if err := s.billRepo.Append(ctx, bill); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"bill_number": bill.BillNumber,
		"grand_total": bill.GetGrandTotalDecimal(),
		"items":       len(bill.Items),
	}).Info("Bill finalized")

	return bill, nil
}

// PreviewTotals computes totals for the given lines without issuing a
// number or touching the ledger.
func (s *BillingService) PreviewTotals(input *FinalizeBillInput) (totals.Result, error) {
	lines := make([]totals.Line, 0, len(input.Lines))
	for _, l := range input.Lines {
		if l.UnitPrice < 0 {
			return totals.Result{}, apperror.NewBadRequestError("Item price cannot be negative")
		}
		if l.Quantity <= 0 {
			return totals.Result{}, apperror.NewBadRequestError("Item quantity must be positive")
		}
		lines = append(lines, totals.Line{UnitPrice: l.UnitPrice, Quantity: l.Quantity})
	}
	return totals.Compute(lines, s.policy), nil
}

// GetBill retrieves a single bill with its line items.
func (s *BillingService) GetBill(ctx context.Context, id uint) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills returns the full history, newest first. A read failure degrades
// to an empty list with a warning so the history view stays up while
// finalize errors remain loud.
func (s *BillingService) ListBills(ctx context.Context) []entity.Bill {
	bills, err := s.billRepo.ListAll(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Bill history read failed, serving empty list")
		return []entity.Bill{}
	}
	// Stored ascending by insertion; the view wants newest first.
	for i, j := 0, len(bills)-1; i < j; i, j = i+1, j-1 {
		bills[i], bills[j] = bills[j], bills[i]
	}
	return bills
}

// ClearAll wipes the entire ledger, headers and line items together. The
// sequence counter is untouched; clearing history does not renumber.
func (s *BillingService) ClearAll(ctx context.Context) error {
	count, err := s.billRepo.Count(ctx)
	if err != nil {
		return err
	}
	if err := s.billRepo.ClearAll(ctx); err != nil {
		return err
	}
	s.logger.WithField("bills_deleted", count).Warn("Bill history cleared")
	return nil
}
