package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/madhuram-pos/pos-api/internal/domain/entity"
	"github.com/madhuram-pos/pos-api/internal/domain/repository"
	"github.com/madhuram-pos/pos-api/pkg/apperror"
	"github.com/madhuram-pos/pos-api/pkg/menucache"
)

// menuCacheTTL bounds how stale the order-entry screen's menu can be when
// the catalog is edited outside this process.
const menuCacheTTL = 5 * time.Second

// MenuService handles menu catalog operations. Reads go through a short-TTL
// cache; every write invalidates it before returning, so a read issued
// after a write always sees the write.
type MenuService struct {
	menuRepo repository.MenuRepository
	cache    *menucache.Cache[[]entity.MenuItem]
	logger   *logrus.Logger
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuRepository, cache *menucache.Cache[[]entity.MenuItem], logger *logrus.Logger) *MenuService {
	if cache == nil {
		cache = menucache.New[[]entity.MenuItem](menuCacheTTL)
	}
	return &MenuService{menuRepo: menuRepo, cache: cache, logger: logger}
}

// CreateMenuItemInput represents the create/update menu item input. Price
// is decimal rupees as the client sends it.
type CreateMenuItemInput struct {
	Name     string
	Price    float64
	Category string
}

// CreateMenuItem adds an item to the catalog.
func (s *MenuService) CreateMenuItem(ctx context.Context, input *CreateMenuItemInput) (*entity.MenuItem, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Item name is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Item price cannot be negative")
	}

	item := &entity.MenuItem{
		Name:     input.Name,
		Category: input.Category,
	}
	item.SetPriceFromDecimal(input.Price)

	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	s.cache.Invalidate()

	s.logger.WithFields(logrus.Fields{
		"item_id": item.ID,
		"name":    item.Name,
	}).Info("Menu item created")
	return item, nil
}

// GetMenuItem retrieves one catalog item by ID.
func (s *MenuService) GetMenuItem(ctx context.Context, id uint) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// UpdateMenuItem edits an existing item. Bills finalized earlier keep their
// snapshotted prices.
func (s *MenuService) UpdateMenuItem(ctx context.Context, id uint, input *CreateMenuItemInput) (*entity.MenuItem, error) {
	item, err := s.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Item name is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Item price cannot be negative")
	}

	item.Name = input.Name
	item.Category = input.Category
	item.SetPriceFromDecimal(input.Price)

	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	s.cache.Invalidate()
	return item, nil
}

// DeleteMenuItem removes an item from the catalog.
func (s *MenuService) DeleteMenuItem(ctx context.Context, id uint) error {
	if _, err := s.GetMenuItem(ctx, id); err != nil {
		return err
	}
	if err := s.menuRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate()
	s.logger.WithField("item_id", id).Info("Menu item deleted")
	return nil
}

// ListMenuItems returns the catalog ordered by category then name, served
// from the cache when fresh.
func (s *MenuService) ListMenuItems(ctx context.Context) ([]entity.MenuItem, error) {
	if items, ok := s.cache.Get(); ok {
		return items, nil
	}
	items, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Put(items)
	return items, nil
}
