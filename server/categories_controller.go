package server

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
	"github.com/google/uuid"

	"github.com/goliatone/go-shop/repository"
)

// CategoriesController is administrator-only; categories never surface
// directly to buyers, only through the products they group.
type CategoriesController struct {
	repos  repository.Manager
	logger glog.Logger
}

type CategoryPayload struct {
	Name string `json:"name"`
}

func (r CategoryPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
	)
}

func (ctrl *CategoriesController) Create(c *fiber.Ctx) error {
	payload := new(CategoryPayload)
	if err := c.BodyParser(payload); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid request body")
	}

	if err := payload.Validate(); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, err.Error())
	}

	category := &repository.Category{
		ID:     uuid.New(),
		Name:   payload.Name,
		Active: true,
	}

	created, err := ctrl.repos.Categories().Create(c.UserContext(), category)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryConflict, "could not create category")
	}

	ctrl.logger.Info("category created", "category_id", created.ID.String(), "name", created.Name)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "category created",
		"category": created,
	})
}

func (ctrl *CategoriesController) List(c *fiber.Ctx) error {
	page := repository.NewPage(
		c.QueryInt("page", repository.DefaultPage),
		c.QueryInt("limit", repository.DefaultLimit),
	)

	list, err := ctrl.repos.Categories().List(c.UserContext(), page)
	if err != nil {
		return err
	}

	return c.JSON(list)
}

func (ctrl *CategoriesController) Show(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	category, err := ctrl.repos.Categories().FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(category)
}

func (ctrl *CategoriesController) Rename(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	payload := new(CategoryPayload)
	if err := c.BodyParser(payload); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid request body")
	}

	if err := payload.Validate(); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, err.Error())
	}

	category, err := ctrl.repos.Categories().Rename(c.UserContext(), id, payload.Name)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":  "category updated",
		"category": category,
	})
}

// ToggleActive hides or restores every product in the category from the
// public catalog in one stroke.
func (ctrl *CategoriesController) ToggleActive(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	category, err := ctrl.repos.Categories().ToggleActive(c.UserContext(), id)
	if err != nil {
		return err
	}

	message := "category deactivated"
	if category.Active {
		message = "category activated"
	}

	return c.JSON(fiber.Map{
		"message":  message,
		"category": category,
	})
}

func (ctrl *CategoriesController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := ctrl.repos.Categories().DeleteByID(c.UserContext(), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "category deleted"})
}
