package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/uptrace/bun"
)

// Manager exposes all repositories plus shared transaction handling.
type Manager interface {
	Users() Users
	Categories() Categories
	Products() Products
	RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error
	Validate() error
	MustValidate()
}

type mngr struct {
	db         *bun.DB
	users      Users
	categories Categories
	products   Products
}

func NewManager(db *bun.DB) Manager {
	return &mngr{
		db:         db,
		users:      NewUsersRepository(db),
		categories: NewCategoriesRepository(db),
		products:   NewProductsRepository(db),
	}
}

func (m mngr) Validate() error {
	if m.users == nil {
		return errors.New("repository users should be initialized")
	}

	if m.categories == nil {
		return errors.New("repository categories should be initialized")
	}

	if m.products == nil {
		return errors.New("repository products should be initialized")
	}

	return nil
}

func (m mngr) MustValidate() {
	if err := m.Validate(); err != nil {
		log.Panic(err)
	}
}

func (m mngr) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return m.db.RunInTx(ctx, opts, f)
	}
}

func (m mngr) Users() Users {
	return m.users
}

func (m mngr) Categories() Categories {
	return m.categories
}

func (m mngr) Products() Products {
	return m.products
}
