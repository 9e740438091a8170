package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/salesorders/internal/domain/errors"
	"github.com/polkiloo/salesorders/internal/domain/model"
	"github.com/polkiloo/salesorders/internal/domain/repository"
)

// MemoryRepository keeps orders and line items in-memory for tests.
// It implements both repository.OrderRepository and repository.LineItemRepository
// and serializes writes with a single mutex.
type MemoryRepository struct {
	mu        sync.Mutex
	orders    map[int64]model.Order
	items     map[int64]model.LineItem
	nextOrder int64
	nextItem  int64

	// Err is returned by every call when set.
	Err error
	// Writes counts successful mutating calls.
	Writes int
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		orders: make(map[int64]model.Order),
		items:  make(map[int64]model.LineItem),
	}
}

// Orders returns the repository as an order repository.
func (r *MemoryRepository) Orders() repository.OrderRepository { return r }

// LineItems returns the repository as a line item repository.
func (r *MemoryRepository) LineItems() repository.LineItemRepository { return r }

// CreateWithItems stores order and items and marks the order processed.
func (r *MemoryRepository) CreateWithItems(ctx context.Context, order model.Order, items []model.LineItem) (*model.OrderDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, existing := range r.orders {
		if existing.Filename == order.Filename {
			return nil, domainErrors.ErrAlreadyExists
		}
	}

	r.nextOrder++
	order.ID = r.nextOrder
	order.Status = model.OrderStatusProcessed
	order.CreatedAt = time.Now().Add(time.Duration(order.ID) * time.Millisecond)
	r.orders[order.ID] = order

	stored := make([]model.LineItem, 0, len(items))
	for i, item := range items {
		item.OrderID = order.ID
		item.Position = i
		stored = append(stored, r.insertLocked(item))
	}
	r.Writes++
	return &model.OrderDetails{Order: order, LineItems: stored}, nil
}

// GetByID returns order by id.
func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	order, ok := r.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &order, nil
}

// List returns orders most recent first.
func (r *MemoryRepository) List(ctx context.Context) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	orders := make([]model.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })
	return orders, nil
}

// UpdateStatus applies a forward transition when the order is in from.
func (r *MemoryRepository) UpdateStatus(ctx context.Context, id int64, from, to model.OrderStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	order, ok := r.orders[id]
	if !ok || order.Status != from || !from.CanTransition(to) {
		return false, nil
	}
	order.Status = to
	r.orders[id] = order
	r.Writes++
	return true, nil
}

// Create appends an item at the end of the order.
func (r *MemoryRepository) Create(ctx context.Context, orderID int64, item model.LineItem) (*model.LineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	if _, ok := r.orders[orderID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	position := 0
	for _, existing := range r.items {
		if existing.OrderID == orderID && existing.Position >= position {
			position = existing.Position + 1
		}
	}
	item.OrderID = orderID
	item.Position = position
	stored := r.insertLocked(item)
	r.Writes++
	return &stored, nil
}

// Get returns the item belonging to the order.
func (r *MemoryRepository) Get(ctx context.Context, orderID, itemID int64) (*model.LineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	item, ok := r.items[itemID]
	if !ok || item.OrderID != orderID {
		return nil, domainErrors.ErrNotFound
	}
	return &item, nil
}

// ListByOrder returns items ordered by position and id.
func (r *MemoryRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.LineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	items := make([]model.LineItem, 0)
	for _, item := range r.items {
		if item.OrderID == orderID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Position != items[j].Position {
			return items[i].Position < items[j].Position
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

// Update applies mutate under the repository lock and recomputes the total.
func (r *MemoryRepository) Update(ctx context.Context, orderID, itemID int64, mutate repository.LineItemMutation) (*model.LineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	item, ok := r.items[itemID]
	if !ok || item.OrderID != orderID {
		return nil, domainErrors.ErrNotFound
	}
	if err := mutate(&item); err != nil {
		return nil, err
	}
	item.Recalculate()
	if item.CatalogMatchID == nil {
		item.ClearMatch()
	}
	r.items[itemID] = item
	r.Writes++
	return &item, nil
}

func (r *MemoryRepository) insertLocked(item model.LineItem) model.LineItem {
	r.nextItem++
	item.ID = r.nextItem
	item.Recalculate()
	if item.CatalogMatchID == nil {
		item.ClearMatch()
	}
	r.items[item.ID] = item
	return item
}
