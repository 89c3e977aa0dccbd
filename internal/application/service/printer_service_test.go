package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/madhuram-pos/pos-api/internal/config"
	"github.com/madhuram-pos/pos-api/internal/domain/entity"
	"github.com/madhuram-pos/pos-api/internal/infrastructure/repository"
	"github.com/madhuram-pos/pos-api/pkg/printer"
)

// capturePrinter records the last printed payload for assertions.
type capturePrinter struct {
	last []byte
}

func (p *capturePrinter) Print(data []byte) error { p.last = data; return nil }
func (p *capturePrinter) Close() error            { return nil }
func (p *capturePrinter) IsConnected() bool       { return true }

func testStore() config.StoreConfig {
	return config.StoreConfig{
		Name:    "MADHURAM",
		Tagline: "CAFE AND TIFFINS",
		Phone:   "9876543210",
		GSTIN:   "36ABCDE1234F1Z5",
	}
}

func testBill() *entity.Bill {
	return &entity.Bill{
		BillNumber: "00042",
		Date:       "2026-03-14",
		Time:       "13:45:10",
		OrderType:  "Dine-In",
		Cashier:    "Admin",
		Subtotal:   14000,
		GrandTotal: 14000,
		Items: []entity.BillItem{
			{ItemName: "Masala Dosa", Quantity: 2, UnitPrice: 5500, Amount: 11000},
			{ItemName: "Filter Coffee", Quantity: 1, UnitPrice: 3000, Amount: 3000},
		},
	}
}

func TestFormatBillLayout(t *testing.T) {
	svc := NewPrinterService(printer.NewNullPrinter(), nil, testStore(), 32, false, nil, testLogger())

	out := svc.FormatBill(testBill())

	for _, want := range []string{
		"MADHURAM",
		"CAFE AND TIFFINS",
		"GSTIN: 36ABCDE1234F1Z5",
		"Bill No: 00042",
		"2x Masala Dosa",
		"110.00",
		"140.00",
		"Thank You! Visit Again",
	} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("bill output missing %q", want)
		}
	}
	// Tax disabled: no tax rows printed.
	if bytes.Contains(out, []byte("CGST")) {
		t.Error("bill output contains CGST row with tax disabled")
	}
}

func TestFormatBillWithTaxRows(t *testing.T) {
	svc := NewPrinterService(printer.NewNullPrinter(), nil, testStore(), 32, true, nil, testLogger())

	bill := testBill()
	bill.Subtotal = 10000
	bill.CGST = 250
	bill.SGST = 250
	bill.RoundOff = 0
	bill.GrandTotal = 10500

	out := svc.FormatBill(bill)
	for _, want := range []string{"CGST @2.5%", "SGST @2.5%", "2.50", "105.00"} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("taxed bill output missing %q", want)
		}
	}
}

func TestFormatKOTLayout(t *testing.T) {
	svc := NewPrinterService(printer.NewNullPrinter(), nil, testStore(), 32, false, nil, testLogger())

	kot := &entity.KOT{
		Number:    "00042",
		Date:      "2026-03-14",
		Time:      "13:45:10",
		OrderType: "Parcel",
		Items: []entity.KOTItem{
			{Name: "Masala Dosa", Quantity: 2},
			{Name: "Idli", Quantity: 4},
		},
	}
	out := svc.FormatKOT(kot)

	for _, want := range []string{"KOT - 00042", "Order: Parcel", "  2  Masala Dosa", "  4  Idli", "Total Qty"} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("KOT output missing %q", want)
		}
	}
	// Kitchen tickets never show prices.
	if bytes.Contains(out, []byte("55.00")) || bytes.Contains(out, []byte("TOTAL ")) {
		t.Error("KOT output contains pricing")
	}
}

func TestPrintBillSendsStoredBill(t *testing.T) {
	db := newTestDB(t)
	billRepo := repository.NewBillRepository(db)
	bill := testBill()
	if err := billRepo.Append(context.Background(), bill); err != nil {
		t.Fatalf("append bill: %v", err)
	}

	rec := &capturePrinter{}
	clock := &fakeClock{t: time.Date(2026, 3, 14, 13, 50, 0, 0, time.UTC)}
	svc := NewPrinterService(rec, billRepo, testStore(), 32, false, clock.Now, testLogger())

	receipt, err := svc.PrintBill(context.Background(), bill.ID)
	if err != nil {
		t.Fatalf("PrintBill: %v", err)
	}
	if !bytes.Contains(rec.last, []byte("Bill No: 00042")) {
		t.Error("printed payload missing bill number")
	}
	if receipt.BillNumber != "00042" || receipt.GrandTotal != 140.0 {
		t.Errorf("receipt = %q/%v, want 00042/140", receipt.BillNumber, receipt.GrandTotal)
	}
	if len(receipt.Items) != 2 || receipt.Items[0].Amount != 110.0 {
		t.Errorf("receipt items = %+v, want 2 items with first amount 110", receipt.Items)
	}

	if _, err := svc.PrintBill(context.Background(), 9999); err == nil {
		t.Error("printing a missing bill succeeded, want not found")
	}
}

func TestPrintKOTRejectsEmptyOrder(t *testing.T) {
	svc := NewPrinterService(printer.NewNullPrinter(), nil, testStore(), 32, false, nil, testLogger())
	if err := svc.PrintKOT("00001", "Dine-In", nil); err == nil {
		t.Error("empty KOT accepted, want error")
	}
}
