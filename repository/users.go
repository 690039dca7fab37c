package repository

import (
	"context"
	"database/sql"
	"time"

	repobun "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-shop/auth"
)

// Users persists account records.
type Users interface {
	Register(ctx context.Context, user *User) (*User, error)
	RegisterTx(ctx context.Context, tx bun.IDB, user *User) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, page Page) (*List[*User], error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name, email string, role auth.UserRole) (*User, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (*User, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type users struct {
	base repobun.Repository[*User]
	db   *bun.DB
}

var _ Users = (*users)(nil)

// NewUsersRepository wires the users table.
func NewUsersRepository(db *bun.DB) Users {
	base := repobun.NewRepository[*User](db, repobun.ModelHandlers[*User]{
		NewRecord: func() *User { return &User{} },
		GetID: func(u *User) uuid.UUID {
			if u == nil {
				return uuid.Nil
			}
			return u.ID
		},
		SetID: func(u *User, id uuid.UUID) {
			if u != nil {
				u.ID = id
			}
		},
		GetIdentifier: func() string {
			return "email"
		},
	})

	return &users{base: base, db: db}
}

func (a *users) Register(ctx context.Context, user *User) (*User, error) {
	return a.RegisterTx(ctx, a.db, user)
}

func (a *users) RegisterTx(ctx context.Context, tx bun.IDB, user *User) (*User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Role == "" {
		user.Role = auth.RoleBuyer
	}
	return a.base.CreateTx(ctx, tx, user)
}

func (a *users) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	record := &User{}
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

func (a *users) FindByEmail(ctx context.Context, email string) (*User, error) {
	record := &User{}
	err := a.db.NewSelect().
		Model(record).
		Where("?TableAlias.email = ?", email).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if repobun.IsRecordNotFound(err) || err == sql.ErrNoRows {
			return nil, repobun.NewRecordNotFound().WithMetadata(map[string]any{"email": email})
		}
		return nil, err
	}
	return record, nil
}

func (a *users) List(ctx context.Context, page Page) (*List[*User], error) {
	var items []*User
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

func (a *users) UpdateProfile(ctx context.Context, id uuid.UUID, name, email string, role auth.UserRole) (*User, error) {
	user, err := a.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Email = email
	user.Role = role
	now := time.Now()
	user.UpdatedAt = &now

	if _, err := a.db.NewUpdate().
		Model(user).
		Column("name", "email", "user_role", "updated_at").
		WherePK().
		Exec(ctx); err != nil {
		return nil, err
	}

	return user, nil
}

func (a *users) ToggleActive(ctx context.Context, id uuid.UUID) (*User, error) {
	user, err := a.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Active = !user.Active
	now := time.Now()
	user.UpdatedAt = &now

	if _, err := a.db.NewUpdate().
		Model(user).
		Column("active", "updated_at").
		WherePK().
		Exec(ctx); err != nil {
		return nil, err
	}

	return user, nil
}

func (a *users) DeleteByID(ctx context.Context, id uuid.UUID) error {
	res, err := a.db.NewDelete().
		Model((*User)(nil)).
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
