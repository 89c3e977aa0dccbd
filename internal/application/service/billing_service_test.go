package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"

	"github.com/madhuram-pos/pos-api/internal/domain/entity"
	"github.com/madhuram-pos/pos-api/internal/infrastructure/repository"
	"github.com/madhuram-pos/pos-api/pkg/totals"
	"gorm.io/gorm"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newBillingFixture(t *testing.T) (*BillingService, *gorm.DB, *fakeClock) {
	t.Helper()
	db := newTestDB(t)
	clock := &fakeClock{t: time.Date(2026, 3, 14, 13, 45, 10, 0, time.UTC)}
	seq := NewSequenceService(repository.NewSettingsRepository(db), 5, clock.Now)
	svc := NewBillingService(repository.NewBillRepository(db), seq, totals.Policy{}, clock.Now, testLogger())
	return svc, db, clock
}

func mustLine(t *testing.T, name string, price int64, qty int) entity.OrderLine {
	t.Helper()
	l, err := entity.NewOrderLine(name, price, "", qty)
	if err != nil {
		t.Fatalf("NewOrderLine(%q): %v", name, err)
	}
	return l
}

func TestFinalizeBillRoundTrip(t *testing.T) {
	svc, _, _ := newBillingFixture(t)

	input := &FinalizeBillInput{
		Lines: []entity.OrderLine{
			mustLine(t, "Masala Dosa", 5500, 2),
			mustLine(t, "Filter Coffee", 3000, 1),
		},
		OrderType: "Dine-In",
		Cashier:   "Admin",
	}
	bill, err := svc.FinalizeBill(context.Background(), input)
	if err != nil {
		t.Fatalf("FinalizeBill: %v", err)
	}
	if bill.BillNumber != "00001" {
		t.Errorf("BillNumber = %q, want %q", bill.BillNumber, "00001")
	}
	if bill.Subtotal != 14000 || bill.GrandTotal != 14000 {
		t.Errorf("totals = %d/%d, want 14000/14000", bill.Subtotal, bill.GrandTotal)
	}

	stored, err := svc.GetBill(context.Background(), bill.ID)
	if err != nil {
		t.Fatalf("GetBill: %v", err)
	}
	if stored.GrandTotal != bill.GrandTotal || stored.BillNumber != bill.BillNumber {
		t.Errorf("stored bill %q/%d, want %q/%d", stored.BillNumber, stored.GrandTotal, bill.BillNumber, bill.GrandTotal)
	}
	if len(stored.Items) != 2 {
		t.Fatalf("stored items = %d, want 2", len(stored.Items))
	}
	if stored.Items[0].Amount != 11000 {
		t.Errorf("first line amount = %d, want 11000", stored.Items[0].Amount)
	}
}

func TestFinalizeBillRejectsBadInput(t *testing.T) {
	svc, _, _ := newBillingFixture(t)

	_, err := svc.FinalizeBill(context.Background(), &FinalizeBillInput{})
	if err == nil {
		t.Error("empty order accepted, want error")
	}

	_, err = svc.FinalizeBill(context.Background(), &FinalizeBillInput{
		Lines: []entity.OrderLine{{Name: "Idli", UnitPrice: 2000, Quantity: -1}},
	})
	if err == nil {
		t.Error("negative quantity accepted, want error")
	}
}

func TestStoredTotalsSurviveMenuPriceEdit(t *testing.T) {
	svc, db, _ := newBillingFixture(t)
	menuRepo := repository.NewMenuRepository(db)

	item := &entity.MenuItem{Name: "Vada", Price: 2500, Category: "Snacks"}
	if err := menuRepo.Create(context.Background(), item); err != nil {
		t.Fatalf("create menu item: %v", err)
	}

	bill, err := svc.FinalizeBill(context.Background(), &FinalizeBillInput{
		Lines: []entity.OrderLine{mustLine(t, item.Name, item.Price, 2)},
	})
	if err != nil {
		t.Fatalf("FinalizeBill: %v", err)
	}

	item.Price = 9900
	if err := menuRepo.Update(context.Background(), item); err != nil {
		t.Fatalf("update menu item: %v", err)
	}

	stored, err := svc.GetBill(context.Background(), bill.ID)
	if err != nil {
		t.Fatalf("GetBill: %v", err)
	}
	if stored.GrandTotal != 5000 {
		t.Errorf("GrandTotal after price edit = %d, want 5000", stored.GrandTotal)
	}
	if stored.Items[0].UnitPrice != 2500 {
		t.Errorf("line UnitPrice after price edit = %d, want 2500", stored.Items[0].UnitPrice)
	}
}

func TestListBillsNewestFirst(t *testing.T) {
	svc, _, _ := newBillingFixture(t)

	for i := 0; i < 3; i++ {
		_, err := svc.FinalizeBill(context.Background(), &FinalizeBillInput{
			Lines: []entity.OrderLine{mustLine(t, "Tea", 1500, 1)},
		})
		if err != nil {
			t.Fatalf("FinalizeBill: %v", err)
		}
	}

	bills := svc.ListBills(context.Background())
	if len(bills) != 3 {
		t.Fatalf("ListBills = %d bills, want 3", len(bills))
	}
	if bills[0].BillNumber != "00003" || bills[2].BillNumber != "00001" {
		t.Errorf("order = %q..%q, want 00003..00001", bills[0].BillNumber, bills[2].BillNumber)
	}
}

func TestClearAllLeavesNoOrphanItems(t *testing.T) {
	svc, db, _ := newBillingFixture(t)

	for i := 0; i < 2; i++ {
		_, err := svc.FinalizeBill(context.Background(), &FinalizeBillInput{
			Lines: []entity.OrderLine{
				mustLine(t, "Poha", 3000, 1),
				mustLine(t, "Lassi", 4000, 2),
			},
		})
		if err != nil {
			t.Fatalf("FinalizeBill: %v", err)
		}
	}

	if err := svc.ClearAll(context.Background()); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}

	var bills, items int64
	if err := db.Model(&entity.Bill{}).Count(&bills).Error; err != nil {
		t.Fatalf("count bills: %v", err)
	}
	if err := db.Model(&entity.BillItem{}).Count(&items).Error; err != nil {
		t.Fatalf("count bill items: %v", err)
	}
	if bills != 0 || items != 0 {
		t.Errorf("after ClearAll: %d bills, %d items, want 0/0", bills, items)
	}
}

// failingBillRepo simulates an unreachable ledger store.
type failingBillRepo struct{}

func (failingBillRepo) Append(ctx context.Context, bill *entity.Bill) error {
	return errors.New("ledger store unavailable")
}

func (failingBillRepo) GetByID(ctx context.Context, id uint) (*entity.Bill, error) {
	return nil, errors.New("ledger store unavailable")
}

func (failingBillRepo) ListAll(ctx context.Context) ([]entity.Bill, error) {
	return nil, errors.New("ledger store unavailable")
}

func (failingBillRepo) ClearAll(ctx context.Context) error {
	return errors.New("ledger store unavailable")
}

func (failingBillRepo) Count(ctx context.Context) (int64, error) {
	return 0, errors.New("ledger store unavailable")
}

func TestListBillsDegradesToEmptyOnReadFailure(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	db := newTestDB(t)
	seq := NewSequenceService(repository.NewSettingsRepository(db), 5, nil)
	svc := NewBillingService(failingBillRepo{}, seq, totals.Policy{}, nil, logger)

	bills := svc.ListBills(context.Background())
	if bills == nil {
		t.Fatal("ListBills returned nil, want empty slice")
	}
	if len(bills) != 0 {
		t.Errorf("ListBills = %d bills, want 0", len(bills))
	}

	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel {
		t.Error("read failure did not log a warning")
	}

	// Finalize against the same broken store stays loud.
	_, err := svc.FinalizeBill(context.Background(), &FinalizeBillInput{
		Lines: []entity.OrderLine{mustLine(t, "Tea", 1500, 1)},
	})
	if err == nil {
		t.Error("FinalizeBill on broken store succeeded, want error")
	}
}

func TestClearAllDoesNotResetSequence(t *testing.T) {
	svc, _, _ := newBillingFixture(t)

	if _, err := svc.FinalizeBill(context.Background(), &FinalizeBillInput{
		Lines: []entity.OrderLine{mustLine(t, "Tea", 1500, 1)},
	}); err != nil {
		t.Fatalf("FinalizeBill: %v", err)
	}
	if err := svc.ClearAll(context.Background()); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}

	bill, err := svc.FinalizeBill(context.Background(), &FinalizeBillInput{
		Lines: []entity.OrderLine{mustLine(t, "Tea", 1500, 1)},
	})
	if err != nil {
		t.Fatalf("FinalizeBill: %v", err)
	}
	if bill.BillNumber != "00002" {
		t.Errorf("BillNumber after clear = %q, want %q", bill.BillNumber, "00002")
	}
}
