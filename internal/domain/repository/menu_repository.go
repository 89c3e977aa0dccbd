package repository

import (
	"context"

	"github.com/madhuram-pos/pos-api/internal/domain/entity"
)

// MenuRepository defines the interface for menu catalog data operations
type MenuRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uint) (*entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]entity.MenuItem, error)
	Count(ctx context.Context) (int64, error)
}
