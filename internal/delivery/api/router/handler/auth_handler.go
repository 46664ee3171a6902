// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"time"

	"containerview/internal/delivery/api/middleware"
	"containerview/internal/delivery/api/response"
	domainerrors "containerview/internal/domain/errors"
	"containerview/internal/errors"
	"containerview/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves the login and second-factor endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// LoginRequest carries the primary credential. Empty fields are not rejected here so that
// they fail exactly like a wrong password.
type LoginRequest struct {
	Identity string `json:"identity"`
	Secret   string `json:"secret"`
}

// LoginResponse holds a session token, or a step-up token when SecondFactorEnabled is true.
type LoginResponse struct {
	Identity            string    `json:"identity"`
	SecondFactorEnabled bool      `json:"secondFactorEnabled"`
	Token               string    `json:"token"`
	ExpiresAt           time.Time `json:"expiresAt"`
}

// VerifyRequest completes a pending login. The step-up token may instead be sent as a
// bearer header.
type VerifyRequest struct {
	StepUpToken string `json:"stepUpToken"`
	Code        string `json:"code"`
}

// VerifyResponse holds the session token issued after the second factor.
type VerifyResponse struct {
	Identity  string    `json:"identity"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Status    string    `json:"status"`
}

var errMalformedBody = domainerrors.ErrValidationFailed.WithDetails("malformed request body")

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return errMalformedBody
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Identity: req.Identity,
		Secret:   req.Secret,
		RemoteIP: c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, LoginResponse{
		Identity:            output.Identity,
		SecondFactorEnabled: output.SecondFactorEnabled,
		Token:               output.Token,
		ExpiresAt:           output.ExpiresAt,
	})
}

// Verify handles POST /auth/verify with an emailed code.
func (h *AuthHandler) Verify(c echo.Context) error {
	input, err := h.bindVerify(c)
	if err != nil {
		return err
	}

	output, err := h.authUC.Verify(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toVerifyResponse(output))
}

// VerifyTOTP handles POST /auth/verify/totp with an authenticator app code.
func (h *AuthHandler) VerifyTOTP(c echo.Context) error {
	input, err := h.bindVerify(c)
	if err != nil {
		return err
	}

	output, err := h.authUC.VerifyTOTP(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toVerifyResponse(output))
}

func (h *AuthHandler) bindVerify(c echo.Context) (*usecase.VerifyInput, error) {
	var req VerifyRequest
	if err := c.Bind(&req); err != nil {
		return nil, errMalformedBody
	}

	stepUpToken := req.StepUpToken
	if stepUpToken == "" {
		stepUpToken = middleware.BearerToken(c)
	}

	return &usecase.VerifyInput{
		StepUpToken: stepUpToken,
		Code:        req.Code,
		RemoteIP:    c.RealIP(),
	}, nil
}

func toVerifyResponse(output *usecase.VerifyOutput) VerifyResponse {
	return VerifyResponse{
		Identity:  output.Identity,
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
		Status:    output.Status,
	}
}
