package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-shop/auth"
)

// User is the account model. Role and Active drive the authorization gate;
// PasswordHash never serializes.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID     `bun:"id,pk,type:uuid" json:"id"`
	Name          string        `bun:"name,notnull" json:"name"`
	Email         string        `bun:"email,notnull,unique" json:"email"`
	PasswordHash  string        `bun:"password_hash,notnull" json:"-"`
	Role          auth.UserRole `bun:"user_role,notnull" json:"role"`
	Active        bool          `bun:"active,notnull" json:"active"`
	CreatedAt     *time.Time    `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time    `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Category groups products. Inactive categories hide their products from the
// public catalog.
type Category struct {
	bun.BaseModel `bun:"table:categories,alias:cat"`
	ID            uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	Name          string     `bun:"name,notnull,unique" json:"name"`
	Active        bool       `bun:"active,notnull" json:"active"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Product is a catalog entry. Discount is a percentage applied at display
// time; the backend stores it verbatim.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:prd"`
	ID            uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	CategoryID    uuid.UUID  `bun:"category_id,notnull,type:uuid" json:"category_id"`
	Category      *Category  `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
	Name          string     `bun:"name,notnull" json:"name"`
	Price         float64    `bun:"price,notnull" json:"price"`
	Quantity      int        `bun:"quantity,notnull" json:"quantity"`
	Discount      int        `bun:"discount,notnull,default:0" json:"discount"`
	Active        bool       `bun:"active,notnull" json:"active"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}
