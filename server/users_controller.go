package server

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-shop/auth"
	"github.com/goliatone/go-shop/repository"
)

// UsersController owns registration, login, and account administration.
type UsersController struct {
	auther auth.Authenticator
	repos  repository.Manager
	logger glog.Logger
}

// RegisterPayload is shared by the admin and buyer registration endpoints;
// the role is decided by the route, never by the client.
type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r RegisterPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 72)),
	)
}

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type UpdateUserPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (r UpdateUserPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Role, validation.Required, validation.In(auth.RoleAdmin, auth.RoleBuyer)),
	)
}

// Register creates an administrator account. The route rule already
// guarantees the caller is an administrator.
func (ctrl *UsersController) Register(c *fiber.Ctx) error {
	return ctrl.register(c, auth.RoleAdmin)
}

// RegisterBuyer is the public signup endpoint; it always produces a buyer.
func (ctrl *UsersController) RegisterBuyer(c *fiber.Ctx) error {
	return ctrl.register(c, auth.RoleBuyer)
}

func (ctrl *UsersController) register(c *fiber.Ctx, role auth.UserRole) error {
	payload := new(RegisterPayload)
	if err := c.BodyParser(payload); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid request body")
	}

	if err := payload.Validate(); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, err.Error())
	}

	ctx := c.UserContext()
	if _, err := ctrl.repos.Users().FindByEmail(ctx, payload.Email); err == nil {
		return goerrors.New("email already registered", goerrors.CategoryConflict).
			WithCode(goerrors.CodeConflict)
	} else if !goerrors.IsNotFound(err) {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to check existing user")
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
	}

	user := &repository.User{
		Name:         payload.Name,
		Email:        payload.Email,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
	}

	if id, err := hashid.NewUUID(payload.Email); err == nil {
		user.ID = id
	}

	err = ctrl.repos.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		created, err := ctrl.repos.Users().RegisterTx(ctx, tx, user)
		if err != nil {
			return goerrors.Wrap(err, goerrors.CategoryConflict, "could not create user")
		}
		user = created
		return nil
	})
	if err != nil {
		return err
	}

	ctrl.logger.Info("user registered", "user_id", user.ID.String(), "role", user.Role)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "user registered",
		"user":    user,
	})
}

// Login exchanges credentials for a signed token.
func (ctrl *UsersController) Login(c *fiber.Ctx) error {
	payload := new(LoginPayload)
	if err := c.BodyParser(payload); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid request body")
	}

	if err := payload.Validate(); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, err.Error())
	}

	token, identity, err := ctrl.auther.Login(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "login successful",
		"token":   token,
		"user": fiber.Map{
			"id":    identity.ID(),
			"email": identity.Email(),
			"role":  identity.Role(),
		},
	})
}

// List returns a page of accounts.
func (ctrl *UsersController) List(c *fiber.Ctx) error {
	page := repository.NewPage(
		c.QueryInt("page", repository.DefaultPage),
		c.QueryInt("limit", repository.DefaultLimit),
	)

	list, err := ctrl.repos.Users().List(c.UserContext(), page)
	if err != nil {
		return err
	}

	return c.JSON(list)
}

func (ctrl *UsersController) Show(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	user, err := ctrl.repos.Users().FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(user)
}

func (ctrl *UsersController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	payload := new(UpdateUserPayload)
	if err := c.BodyParser(payload); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid request body")
	}

	if err := payload.Validate(); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, err.Error())
	}

	user, err := ctrl.repos.Users().UpdateProfile(c.UserContext(), id, payload.Name, payload.Email, payload.Role)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "user updated",
		"user":    user,
	})
}

// ToggleActive flips the account's active flag. Deactivation takes effect on
// the very next request the account makes, regardless of token expiry.
func (ctrl *UsersController) ToggleActive(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	user, err := ctrl.repos.Users().ToggleActive(c.UserContext(), id)
	if err != nil {
		return err
	}

	message := "user deactivated"
	if user.Active {
		message = "user activated"
	}

	return c.JSON(fiber.Map{
		"message": message,
		"user":    user,
	})
}

func (ctrl *UsersController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := ctrl.repos.Users().DeleteByID(c.UserContext(), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "user deleted"})
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, goerrors.New("invalid id", goerrors.CategoryBadInput).
			WithCode(goerrors.CodeBadRequest)
	}
	return id, nil
}
