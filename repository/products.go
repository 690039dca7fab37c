package repository

import (
	"context"
	"database/sql"
	"time"

	repobun "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ProductUpdate carries the mutable product fields for an admin update.
type ProductUpdate struct {
	CategoryID uuid.UUID
	Name       string
	Price      float64
	Quantity   int
	Discount   int
}

// Products persists catalog entries. The public read paths only ever see
// active products; the by-category lookup also requires the category itself
// to be active.
type Products interface {
	Create(ctx context.Context, product *Product) (*Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context, page Page) (*List[*Product], error)
	ListActive(ctx context.Context) ([]*Product, error)
	FindByCategoryName(ctx context.Context, name string) ([]*Product, error)
	Update(ctx context.Context, id uuid.UUID, update ProductUpdate) (*Product, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (*Product, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type products struct {
	base repobun.Repository[*Product]
	db   *bun.DB
}

var _ Products = (*products)(nil)

// NewProductsRepository wires the products table.
func NewProductsRepository(db *bun.DB) Products {
	base := repobun.NewRepository[*Product](db, repobun.ModelHandlers[*Product]{
		NewRecord: func() *Product { return &Product{} },
		GetID: func(p *Product) uuid.UUID {
			if p == nil {
				return uuid.Nil
			}
			return p.ID
		},
		SetID: func(p *Product, id uuid.UUID) {
			if p != nil {
				p.ID = id
			}
		},
	})

	return &products{base: base, db: db}
}

func (a *products) Create(ctx context.Context, product *Product) (*Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	return a.base.Create(ctx, product)
}

func (a *products) FindByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	record := &Product{}
	err := a.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if repobun.IsRecordNotFound(err) || err == sql.ErrNoRows {
			return nil, repobun.NewRecordNotFound().WithMetadata(map[string]any{"id": id.String()})
		}
		return nil, err
	}
	return record, nil
}

func (a *products) FindActiveByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	record := &Product{}
	err := a.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id).
		Where("?TableAlias.active = ?", true).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if repobun.IsRecordNotFound(err) || err == sql.ErrNoRows {
			return nil, repobun.NewRecordNotFound().WithMetadata(map[string]any{"id": id.String()})
		}
		return nil, err
	}
	return record, nil
}

func (a *products) List(ctx context.Context, page Page) (*List[*Product], error) {
	var items []*Product
	total, err := a.db.NewSelect().
		Model(&items).
		OrderExpr("?TableAlias.created_at ASC").
		Limit(page.Limit).
		Offset(page.Offset()).
		ScanAndCount(ctx)
	if err != nil {
		return nil, err
	}
	return newList(page, total, items), nil
}

func (a *products) ListActive(ctx context.Context) ([]*Product, error) {
	items := []*Product{}
	err := a.db.NewSelect().
		Model(&items).
		Where("?TableAlias.active = ?", true).
		OrderExpr("?TableAlias.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (a *products) FindByCategoryName(ctx context.Context, name string) ([]*Product, error) {
	items := []*Product{}
	err := a.db.NewSelect().
		Model(&items).
		Join("JOIN categories AS cat ON cat.id = ?TableAlias.category_id").
		Where("cat.name = ?", name).
		Where("cat.active = ?", true).
		Where("?TableAlias.active = ?", true).
		OrderExpr("?TableAlias.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (a *products) Update(ctx context.Context, id uuid.UUID, update ProductUpdate) (*Product, error) {
	product, err := a.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.CategoryID = update.CategoryID
	product.Name = update.Name
	product.Price = update.Price
	product.Quantity = update.Quantity
	product.Discount = update.Discount
	now := time.Now()
	product.UpdatedAt = &now

	if _, err := a.db.NewUpdate().
		Model(product).
		Column("category_id", "name", "price", "quantity", "discount", "updated_at").
		WherePK().
		Exec(ctx); err != nil {
		return nil, err
	}

	return product, nil
}

func (a *products) ToggleActive(ctx context.Context, id uuid.UUID) (*Product, error) {
	product, err := a.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Active = !product.Active
	now := time.Now()
	product.UpdatedAt = &now

	if _, err := a.db.NewUpdate().
		Model(product).
		Column("active", "updated_at").
		WherePK().
		Exec(ctx); err != nil {
		return nil, err
	}

	return product, nil
}

func (a *products) DeleteByID(ctx context.Context, id uuid.UUID) error {
	res, err := a.db.NewDelete().
		Model((*Product)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return repobun.NewRecordNotFound().WithMetadata(map[string]any{"id": id.String()})
	}

	return nil
}
