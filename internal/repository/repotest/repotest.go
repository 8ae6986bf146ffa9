// Package repotest provides in-memory repositories for service and router
// tests. They honour the repository contracts (id assignment, id ordering,
// gorm.ErrRecordNotFound) but not database constraints such as cascades.
package repotest

import (
	"context"
	"sort"
	"sync"
	"time"

	"warehouse/internal/model"
	"warehouse/internal/repository"

	"gorm.io/gorm"
)

// Repo is a map-backed repository.Repository.
type Repo[T any] struct {
	mu     sync.Mutex
	rows   map[uint]T
	nextID uint
	idOf   func(*T) *uint
}

func NewRepo[T any](idOf func(*T) *uint) *Repo[T] {
	return &Repo[T]{rows: make(map[uint]T), idOf: idOf}
}

func (r *Repo[T]) Create(_ context.Context, e *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	*r.idOf(e) = r.nextID
	r.rows[r.nextID] = *e
	return nil
}

func (r *Repo[T]) FindByID(_ context.Context, id uint) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (r *Repo[T]) List(ctx context.Context, offset, limit int) ([]T, int64, error) {
	return r.Filter(ctx, func(*T) bool { return true }, offset, limit)
}

// Filter pages the rows matching keep in id order.
func (r *Repo[T]) Filter(_ context.Context, keep func(*T) bool, offset, limit int) ([]T, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]uint, 0, len(r.rows))
	for id, e := range r.rows {
		if keep(&e) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, limit)
	for i := offset; i < len(ids) && len(out) < limit; i++ {
		out = append(out, r.rows[ids[i]])
	}
	return out, int64(len(ids)), nil
}

func (r *Repo[T]) Update(_ context.Context, e *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := *r.idOf(e)
	if _, ok := r.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.rows[id] = *e
	return nil
}

func (r *Repo[T]) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *Repo[T]) Exists(_ context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.rows[id]
	return ok, nil
}

func (r *Repo[T]) WithTx(*gorm.DB) repository.Repository[T] { return r }

// Len returns the number of stored rows.
func (r *Repo[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// Transactor runs fn without a real transaction.
type Transactor struct{}

func (Transactor) Transaction(_ context.Context, fn func(tx *gorm.DB) error) error { return fn(nil) }

type OrderItems struct{ *Repo[model.OrderItem] }

func (r OrderItems) ListByOrder(ctx context.Context, orderID uint, offset, limit int) ([]model.OrderItem, int64, error) {
	return r.Filter(ctx, func(i *model.OrderItem) bool { return i.OrderID == orderID }, offset, limit)
}

type WarehouseItems struct{ *Repo[model.WarehouseItem] }

func (r WarehouseItems) ListByWarehouse(ctx context.Context, warehouseID uint, offset, limit int) ([]model.WarehouseItem, int64, error) {
	return r.Filter(ctx, func(i *model.WarehouseItem) bool { return i.WarehouseID == warehouseID }, offset, limit)
}

// Store bundles one in-memory repository per entity.
type Store struct {
	Suppliers         *Repo[model.Supplier]
	Categories        *Repo[model.Category]
	Products          *Repo[model.Product]
	ProductQuantities *Repo[model.ProductQuantity]
	Orders            *Repo[model.Order]
	OrderItems        OrderItems
	Warehouses        *Repo[model.Warehouse]
	WarehouseItems    WarehouseItems
	Users             *Users
	RefreshTokens     *RefreshTokens
}

func NewStore() *Store {
	return &Store{
		Suppliers:         NewRepo(func(e *model.Supplier) *uint { return &e.ID }),
		Categories:        NewRepo(func(e *model.Category) *uint { return &e.ID }),
		Products:          NewRepo(func(e *model.Product) *uint { return &e.ID }),
		ProductQuantities: NewRepo(func(e *model.ProductQuantity) *uint { return &e.ID }),
		Orders:            NewRepo(func(e *model.Order) *uint { return &e.ID }),
		OrderItems:        OrderItems{NewRepo(func(e *model.OrderItem) *uint { return &e.ID })},
		Warehouses:        NewRepo(func(e *model.Warehouse) *uint { return &e.ID }),
		WarehouseItems:    WarehouseItems{NewRepo(func(e *model.WarehouseItem) *uint { return &e.ID })},
		Users:             NewUsers(),
		RefreshTokens:     NewRefreshTokens(),
	}
}

// Users is an in-memory repository.UserRepository.
type Users struct {
	mu     sync.Mutex
	byID   map[uint]*model.User
	nextID uint
}

func NewUsers() *Users { return &Users{byID: make(map[uint]*model.User)} }

func (r *Users) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *Users) FindByID(_ context.Context, id uint) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *Users) Upsert(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Username == u.Username {
			existing.PasswordHash = u.PasswordHash
			existing.IsActive = u.IsActive
			u.ID = existing.ID
			return nil
		}
	}
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *Users) TouchLastLogin(_ context.Context, id uint, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		u.LastLogin = &at
	}
	return nil
}

// SetActive flips the active flag of a stored user.
func (r *Users) SetActive(id uint, active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		u.IsActive = active
	}
}

// RefreshTokens is an in-memory repository.RefreshTokenRepository; TTLs are
// ignored.
type RefreshTokens struct {
	mu   sync.Mutex
	jtis map[string]uint
}

func NewRefreshTokens() *RefreshTokens { return &RefreshTokens{jtis: make(map[string]uint)} }

func (r *RefreshTokens) Save(_ context.Context, jti string, userID uint, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jtis[jti] = userID
	return nil
}

func (r *RefreshTokens) Exists(_ context.Context, jti string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.jtis[jti]
	return ok, nil
}

// Revoke drops every registered refresh token.
func (r *RefreshTokens) Revoke() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jtis = make(map[string]uint)
}

var (
	_ repository.Repository[model.Supplier] = (*Repo[model.Supplier])(nil)
	_ repository.OrderItemRepository        = OrderItems{}
	_ repository.WarehouseItemRepository    = WarehouseItems{}
	_ repository.UserRepository             = (*Users)(nil)
	_ repository.RefreshTokenRepository     = (*RefreshTokens)(nil)
	_ repository.Transactor                 = Transactor{}
)
