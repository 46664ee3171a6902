package handler

import (
	"encoding/base64"

	"containerview/internal/delivery/api/response"
	deliverycontext "containerview/internal/delivery/context"
	domainerrors "containerview/internal/domain/errors"
	"containerview/internal/errors"
	"containerview/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const pngDataURIPrefix = "data:image/png;base64,"

// TOTPHandlerParams holds dependencies for TOTPHandler, injected by Fx.
type TOTPHandlerParams struct {
	fx.In

	TOTPUC usecase.TOTPUsecase
}

// TOTPHandler serves authenticator app enrollment for the signed-in caller.
type TOTPHandler struct {
	totpUC usecase.TOTPUsecase
}

// NewTOTPHandler is the constructor for TOTPHandler
func NewTOTPHandler(params TOTPHandlerParams) *TOTPHandler {
	return &TOTPHandler{totpUC: params.TOTPUC}
}

// TOTPSetupResponse carries everything an authenticator app needs to enroll.
type TOTPSetupResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauthUrl"`
	QRCode     string `json:"qrCode"` // PNG data URI
}

// TOTPSetupRequest carries the current authenticator code when one is
// already enabled; a first enrollment sends no body.
type TOTPSetupRequest struct {
	Code string `json:"code" validate:"omitempty,len=6,numeric"`
}

// TOTPEnableRequest confirms enrollment with the first generated code.
type TOTPEnableRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

// Setup handles POST /auth/totp/setup.
func (h *TOTPHandler) Setup(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req TOTPSetupRequest
	if err := c.Bind(&req); err != nil {
		return errMalformedBody
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.totpUC.Setup(c.Request().Context(), principal.Identity, req.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, TOTPSetupResponse{
		Secret:     output.Secret,
		OTPAuthURL: output.OTPAuthURL,
		QRCode:     pngDataURIPrefix + base64.StdEncoding.EncodeToString(output.QRCodePNG),
	})
}

// Enable handles POST /auth/totp/enable.
func (h *TOTPHandler) Enable(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req TOTPEnableRequest
	if err := c.Bind(&req); err != nil {
		return errMalformedBody
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.totpUC.Enable(c.Request().Context(), principal.Identity, req.Code); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]bool{"totpEnabled": true})
}
