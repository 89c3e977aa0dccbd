package service

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/madhuram-pos/pos-api/internal/config"
	"github.com/madhuram-pos/pos-api/internal/domain/entity"
	"github.com/madhuram-pos/pos-api/internal/domain/repository"
	"github.com/madhuram-pos/pos-api/pkg/apperror"
	"github.com/madhuram-pos/pos-api/pkg/printer"
)

// PrinterService renders bills and kitchen order tickets to ESC/POS and
// sends them to the configured thermal printer.
type PrinterService struct {
	printer  printer.Printer
	billRepo repository.BillRepository
	header   entity.ReceiptHeader
	width    int
	tax      bool
	now      func() time.Time
	logger   *logrus.Logger
}

// NewPrinterService creates a new printer service. now may be nil, in which
// case the system clock is used.
func NewPrinterService(p printer.Printer, billRepo repository.BillRepository, store config.StoreConfig, width int, taxEnabled bool, now func() time.Time, logger *logrus.Logger) *PrinterService {
	if width <= 0 {
		width = 32
	}
	if now == nil {
		now = time.Now
	}
	return &PrinterService{
		printer:  p,
		billRepo: billRepo,
		header: entity.ReceiptHeader{
			StoreName: store.Name,
			Tagline:   store.Tagline,
			Address:   store.Address,
			Phone:     store.Phone,
			GSTIN:     store.GSTIN,
		},
		width:  width,
		tax:    taxEnabled,
		now:    now,
		logger: logger,
	}
}

// GetStatus reports whether the configured printer is reachable.
func (s *PrinterService) GetStatus() bool {
	return s.printer.IsConnected()
}

// TestPrint sends a short self-test page.
func (s *PrinterService) TestPrint() error {
	doc := printer.NewDocument(s.width)
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text(s.header.StoreName).
		SetBold(false).
		Text("Printer test OK").
		Text(s.now().Format("2006-01-02 15:04:05")).
		FeedLines(3).
		Cut()

	if err := s.printer.Print(doc.Bytes()); err != nil {
		return apperror.NewUnavailableError("Printer is not reachable")
	}
	return nil
}

// PrintBill renders and prints the receipt for a stored bill, returning
// the composed receipt so callers can show what was sent to paper.
func (s *PrinterService) PrintBill(ctx context.Context, billID uint) (*entity.Receipt, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	if err := s.printer.Print(s.FormatBill(bill)); err != nil {
		s.logger.WithError(err).WithField("bill_number", bill.BillNumber).Error("Bill print failed")
		return nil, apperror.NewUnavailableError("Printer is not reachable")
	}
	s.logger.WithField("bill_number", bill.BillNumber).Info("Bill printed")
	return s.BuildReceipt(bill), nil
}

// PrintKOT renders and prints a kitchen ticket for the given transient
// order lines. billNumber is the shared sequence number already issued for
// the order.
func (s *PrinterService) PrintKOT(billNumber, orderType string, lines []entity.OrderLine) error {
	if len(lines) == 0 {
		return apperror.NewBadRequestError("Cannot print an empty KOT")
	}

	now := s.now()
	kot := &entity.KOT{
		Number:    billNumber,
		Date:      now.Format("2006-01-02"),
		Time:      now.Format("15:04:05"),
		OrderType: orderType,
	}
	for _, l := range lines {
		kot.Items = append(kot.Items, entity.KOTItem{Name: l.Name, Quantity: l.Quantity})
	}

	if err := s.printer.Print(s.FormatKOT(kot)); err != nil {
		s.logger.WithError(err).WithField("kot_number", kot.Number).Error("KOT print failed")
		return apperror.NewUnavailableError("Printer is not reachable")
	}
	s.logger.WithField("kot_number", kot.Number).Info("KOT printed")
	return nil
}

// BuildReceipt composes the printable receipt value object from a stored
// bill: the configured store header plus the bill's snapshot, with amounts
// converted to decimal rupees for rendering.
func (s *PrinterService) BuildReceipt(bill *entity.Bill) *entity.Receipt {
	receipt := &entity.Receipt{
		Header:       s.header,
		BillNumber:   bill.BillNumber,
		Date:         bill.Date,
		Time:         bill.Time,
		OrderType:    bill.OrderType,
		Cashier:      bill.Cashier,
		CustomerName: bill.CustomerName,
		Subtotal:     float64(bill.Subtotal) / 100,
		CGST:         float64(bill.CGST) / 100,
		SGST:         float64(bill.SGST) / 100,
		RoundOff:     float64(bill.RoundOff) / 100,
		GrandTotal:   float64(bill.GrandTotal) / 100,
	}
	for _, item := range bill.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      item.ItemName,
			Quantity:  item.Quantity,
			UnitPrice: float64(item.UnitPrice) / 100,
			Amount:    float64(item.Amount) / 100,
		})
	}
	return receipt
}

// FormatBill renders a stored bill to ESC/POS bytes: store header, bill
// metadata, item lines, totals block. Tax rows appear only when the tax
// policy is on; the stored amounts are printed as charged.
func (s *PrinterService) FormatBill(bill *entity.Bill) []byte {
	doc := printer.NewDocument(s.width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(s.header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)
	if s.header.Tagline != "" {
		doc.Text(s.header.Tagline)
	}
	if s.header.Address != "" {
		doc.Text(s.header.Address)
	}
	if s.header.Phone != "" {
		doc.Text("Ph: " + s.header.Phone)
	}
	if s.header.GSTIN != "" {
		doc.Text("GSTIN: " + s.header.GSTIN)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-').
		KeyValue("Bill No: "+bill.BillNumber, bill.Date).
		KeyValue("Time: "+bill.Time, bill.OrderType)
	if bill.Cashier != "" {
		doc.Text("Cashier: " + bill.Cashier)
	}
	if bill.CustomerName != "" {
		doc.Text("Customer: " + bill.CustomerName)
	}

	doc.Separator('-')
	for _, item := range bill.Items {
		doc.ItemLine(item.Quantity, item.ItemName, printer.Money(item.Amount))
	}
	doc.Separator('-')

	doc.KeyValue("Subtotal", printer.Money(bill.Subtotal))
	if s.tax {
		doc.KeyValue("CGST @2.5%", printer.Money(bill.CGST)).
			KeyValue("SGST @2.5%", printer.Money(bill.SGST)).
			KeyValue("Round Off", printer.Money(bill.RoundOff))
	}
	doc.SetBold(true).
		KeyValue("TOTAL", printer.Money(bill.GrandTotal)).
		SetBold(false).
		Separator('-')

	doc.SetAlign(printer.AlignCenter).
		Text("Thank You! Visit Again").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}

// FormatKOT renders a kitchen ticket: quantities and item names only, no
// prices.
func (s *PrinterService) FormatKOT(kot *entity.KOT) []byte {
	doc := printer.NewDocument(s.width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text("KOT - " + kot.Number).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	doc.SetAlign(printer.AlignLeft).
		KeyValue(kot.Date, kot.Time)
	if kot.OrderType != "" {
		doc.Text("Order: " + kot.OrderType)
	}

	doc.Separator('-').
		TextF("%3s  %s", "Qty", "Item").
		Separator('-')
	for _, item := range kot.Items {
		doc.QtyItemLine(item.Quantity, item.Name)
	}
	doc.Separator('-').
		KeyValue("Total Qty", strconv.Itoa(kot.TotalQuantity())).
		FeedLines(3).
		Cut()

	return doc.Bytes()
}
