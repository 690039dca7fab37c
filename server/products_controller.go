package server

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
	"github.com/google/uuid"

	"github.com/goliatone/go-shop/repository"
)

// ProductsController serves the public catalog reads and the
// administrator-only catalog management endpoints.
type ProductsController struct {
	repos  repository.Manager
	logger glog.Logger
}

type ProductPayload struct {
	CategoryID string  `json:"category_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Discount   int     `json:"discount"`
}

func (r ProductPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CategoryID, validation.Required, validation.By(validUUID)),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Price, validation.Required, validation.Min(0.0)),
		validation.Field(&r.Quantity, validation.Min(0)),
		validation.Field(&r.Discount, validation.Min(0), validation.Max(100)),
	)
}

func validUUID(value any) error {
	s, _ := value.(string)
	if _, err := uuid.Parse(s); err != nil {
		return goerrors.New("must be a valid UUID", goerrors.CategoryValidation)
	}
	return nil
}

// ListActive is the storefront listing: active products only.
func (ctrl *ProductsController) ListActive(c *fiber.Ctx) error {
	products, err := ctrl.repos.Products().ListActive(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(products)
}

// ListByCategory returns active products in an active category, looked up by
// category name. An inactive category yields an empty list, not an error.
func (ctrl *ProductsController) ListByCategory(c *fiber.Ctx) error {
	name := c.Params("name")

	products, err := ctrl.repos.Products().FindByCategoryName(c.UserContext(), name)
	if err != nil {
		return err
	}

	return c.JSON(products)
}

// Show is the public product detail view; inactive products 404 here even
// though they still exist for administrators.
func (ctrl *ProductsController) Show(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	product, err := ctrl.repos.Products().FindActiveByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(product)
}

// List is the administrator view: every product, active or not, paginated.
func (ctrl *ProductsController) List(c *fiber.Ctx) error {
	page := repository.NewPage(
		c.QueryInt("page", repository.DefaultPage),
		c.QueryInt("limit", repository.DefaultLimit),
	)

	list, err := ctrl.repos.Products().List(c.UserContext(), page)
	if err != nil {
		return err
	}

	return c.JSON(list)
}

func (ctrl *ProductsController) Create(c *fiber.Ctx) error {
	payload := new(ProductPayload)
	if err := c.BodyParser(payload); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid request body")
	}

	if err := payload.Validate(); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, err.Error())
	}

	categoryID, _ := uuid.Parse(payload.CategoryID)
	if _, err := ctrl.repos.Categories().FindByID(c.UserContext(), categoryID); err != nil {
		return err
	}

	product := &repository.Product{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Name:       payload.Name,
		Price:      payload.Price,
		Quantity:   payload.Quantity,
		Discount:   payload.Discount,
		Active:     true,
	}

	created, err := ctrl.repos.Products().Create(c.UserContext(), product)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryConflict, "could not create product")
	}

	ctrl.logger.Info("product created", "product_id", created.ID.String(), "name", created.Name)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "product created",
		"product": created,
	})
}

func (ctrl *ProductsController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	payload := new(ProductPayload)
	if err := c.BodyParser(payload); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid request body")
	}

	if err := payload.Validate(); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, err.Error())
	}

	categoryID, _ := uuid.Parse(payload.CategoryID)
	if _, err := ctrl.repos.Categories().FindByID(c.UserContext(), categoryID); err != nil {
		return err
	}

	product, err := ctrl.repos.Products().Update(c.UserContext(), id, repository.ProductUpdate{
		CategoryID: categoryID,
		Name:       payload.Name,
		Price:      payload.Price,
		Quantity:   payload.Quantity,
		Discount:   payload.Discount,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "product updated",
		"product": product,
	})
}

func (ctrl *ProductsController) ToggleActive(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	product, err := ctrl.repos.Products().ToggleActive(c.UserContext(), id)
	if err != nil {
		return err
	}

	message := "product deactivated"
	if product.Active {
		message = "product activated"
	}

	return c.JSON(fiber.Map{
		"message": message,
		"product": product,
	})
}

func (ctrl *ProductsController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := ctrl.repos.Products().DeleteByID(c.UserContext(), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "product deleted"})
}
