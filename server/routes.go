package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goliatone/go-shop/auth"
)

type route struct {
	method  string
	path    string
	rule    auth.Rule
	handler fiber.Handler
}

// registerRoutes declares every endpoint with its access rule in one place.
// The rule is the whole authorization story for a route; handlers never
// re-check roles.
func (s *Server) registerRoutes() {
	users := &UsersController{auther: s.auther, repos: s.repos, logger: s.logger}
	categories := &CategoriesController{repos: s.repos, logger: s.logger}
	products := &ProductsController{repos: s.repos, logger: s.logger}

	routes := []route{
		{fiber.MethodPost, "/api/users/login", auth.Public(), users.Login},
		{fiber.MethodPost, "/api/buyers/register", auth.Public(), users.RegisterBuyer},

		{fiber.MethodPost, "/api/users/register", auth.AdminOnly("register users"), users.Register},
		{fiber.MethodGet, "/api/users", auth.AdminOnly("list users"), users.List},
		{fiber.MethodGet, "/api/users/:id", auth.AdminOnly("view users"), users.Show},
		{fiber.MethodPut, "/api/users/:id", auth.AdminOnly("update users"), users.Update},
		{fiber.MethodPatch, "/api/users/:id/active", auth.AdminOnly("toggle users"), users.ToggleActive},
		{fiber.MethodDelete, "/api/users/:id", auth.AdminOnly("delete users"), users.Delete},

		{fiber.MethodGet, "/api/categories", auth.AdminOnly("list categories"), categories.List},
		{fiber.MethodGet, "/api/categories/:id", auth.AdminOnly("view categories"), categories.Show},
		{fiber.MethodPost, "/api/categories", auth.AdminOnly("create categories"), categories.Create},
		{fiber.MethodPut, "/api/categories/:id", auth.AdminOnly("update categories"), categories.Rename},
		{fiber.MethodPatch, "/api/categories/:id/active", auth.AdminOnly("toggle categories"), categories.ToggleActive},
		{fiber.MethodDelete, "/api/categories/:id", auth.AdminOnly("delete categories"), categories.Delete},

		{fiber.MethodGet, "/api/products", auth.Public(), products.ListActive},
		{fiber.MethodGet, "/api/products/category/:name", auth.Public(), products.ListByCategory},
		{fiber.MethodGet, "/api/products/:id", auth.Public(), products.Show},

		{fiber.MethodGet, "/api/admin/products", auth.AdminOnly("list products"), products.List},
		{fiber.MethodPost, "/api/admin/products", auth.AdminOnly("create products"), products.Create},
		{fiber.MethodPut, "/api/admin/products/:id", auth.AdminOnly("update products"), products.Update},
		{fiber.MethodPatch, "/api/admin/products/:id/active", auth.AdminOnly("toggle products"), products.ToggleActive},
		{fiber.MethodDelete, "/api/admin/products/:id", auth.AdminOnly("delete products"), products.Delete},
	}

	for _, r := range routes {
		s.app.Add(r.method, r.path, auth.Protect(s.gate, r.rule), r.handler)
	}
}
