package repository

import (
	"context"
	"errors"

	"github.com/madhuram-pos/pos-api/internal/domain/entity"
	domainRepo "github.com/madhuram-pos/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill ledger repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

// Append inserts the header and line items in one transaction. A failed
// item insert rolls back the header, so the ledger never holds a header
// without its items.
func (r *billRepository) Append(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := bill.Items
		bill.Items = nil
		if err := tx.Create(bill).Error; err != nil {
			bill.Items = items
			return err
		}
		for i := range items {
			items[i].BillID = bill.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				bill.Items = items
				return err
			}
		}
		bill.Items = items
		return nil
	})
}

func (r *billRepository) GetByID(ctx context.Context, id uint) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) ListAll(ctx context.Context) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("id ASC").
		Find(&bills).Error
	return bills, err
}

// ClearAll deletes line items before headers inside one transaction so no
// orphan items can remain even on storage engines without enforced
// cascading deletes.
func (r *billRepository) ClearAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.BillItem{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&entity.Bill{}).Error
	})
}

func (r *billRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Bill{}).Count(&count).Error
	return count, err
}
