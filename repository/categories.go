package repository

import (
	"context"
	"database/sql"
	"time"

	repobun "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Categories persists the catalog groupings.
type Categories interface {
	Create(ctx context.Context, category *Category) (*Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	List(ctx context.Context, page Page) (*List[*Category], error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*Category, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (*Category, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type categories struct {
	base repobun.Repository[*Category]
	db   *bun.DB
}

var _ Categories = (*categories)(nil)

// NewCategoriesRepository wires the categories table.
func NewCategoriesRepository(db *bun.DB) Categories {
	base := repobun.NewRepository[*Category](db, repobun.ModelHandlers[*Category]{
		NewRecord: func() *Category { return &Category{} },
		GetID: func(c *Category) uuid.UUID {
			if c == nil {
				return uuid.Nil
			}
			return c.ID
		},
		SetID: func(c *Category, id uuid.UUID) {
			if c != nil {
				c.ID = id
			}
		},
		GetIdentifier: func() string {
			return "name"
		},
	})

	return &categories{base: base, db: db}
}

func (a *categories) Create(ctx context.Context, category *Category) (*Category, error) {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	return a.base.Create(ctx, category)
}

func (a *categories) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	record := &Category{}
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

func (a *categories) List(ctx context.Context, page Page) (*List[*Category], error) {
	var items []*Category
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

func (a *categories) Rename(ctx context.Context, id uuid.UUID, name string) (*Category, error) {
	category, err := a.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	now := time.Now()
	category.UpdatedAt = &now

	if _, err := a.db.NewUpdate().
		Model(category).
		Column("name", "updated_at").
		WherePK().
		Exec(ctx); err != nil {
		return nil, err
	}

	return category, nil
}

func (a *categories) ToggleActive(ctx context.Context, id uuid.UUID) (*Category, error) {
	category, err := a.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Active = !category.Active
	now := time.Now()
	category.UpdatedAt = &now

	if _, err := a.db.NewUpdate().
		Model(category).
		Column("active", "updated_at").
		WherePK().
		Exec(ctx); err != nil {
		return nil, err
	}

	return category, nil
}

func (a *categories) DeleteByID(ctx context.Context, id uuid.UUID) error {
	res, err := a.db.NewDelete().
		Model((*Category)(nil)).
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
