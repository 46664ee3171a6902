package handler

import (
	"log/slog"
	"time"

	"containerview/internal/delivery/api/response"
	deliverycontext "containerview/internal/delivery/context"
	"containerview/internal/domain/entity"
	domainerrors "containerview/internal/domain/errors"
	"containerview/internal/errors"
	"containerview/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves account registration and the caller's own profile.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Identity         string `json:"identity" validate:"required,taxid"`
	FirstName        string `json:"firstName" validate:"required,max=100"`
	LastName         string `json:"lastName" validate:"max=100"`
	Email            string `json:"email" validate:"required,email,max=255"`
	Password         string `json:"password" validate:"required"`
	Role             string `json:"role" validate:"required"`
	TwoFactorEnabled bool   `json:"twoFactorEnabled"`
}

// UserResponse is the public view of a credential record.
type UserResponse struct {
	Identity         string             `json:"identity"`
	FirstName        string             `json:"firstName"`
	LastName         string             `json:"lastName"`
	Email            string             `json:"email"`
	Role             entity.Role        `json:"role"`
	Permissions      entity.Permissions `json:"permissions"`
	TwoFactorEnabled bool               `json:"twoFactorEnabled"`
	TOTPEnabled      bool               `json:"totpEnabled"`
	CreatedAt        time.Time          `json:"createdAt"`
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		Identity:         user.TaxID,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Email:            user.Email,
		Role:             user.Role,
		Permissions:      user.Role.Permissions(),
		TwoFactorEnabled: user.TwoFactorEnabled,
		TOTPEnabled:      user.TOTPEnabled,
		CreatedAt:        user.CreatedAt,
	}
}

// Register handles POST /auth/register. Only administrators reach it.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return errMalformedBody
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	role, ok := entity.ParseRole(req.Role)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails("role must be one of ADMIN, MANAGER, INSPECTOR")
	}

	user, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterUserInput{
		Identity:         req.Identity,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Password:         req.Password,
		Role:             role,
		TwoFactorEnabled: req.TwoFactorEnabled,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toUserResponse(user))
}

// Me handles GET /auth/me.
func (h *UserHandler) Me(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	user, err := h.userUC.Me(c.Request().Context(), principal.Identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toUserResponse(user))
}
