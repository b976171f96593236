package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orgstack/employee-management/internal/api/metrics"
	"github.com/orgstack/employee-management/internal/core/domain"
	"github.com/orgstack/employee-management/internal/core/ports"
)

// AuthHandler handles the public registration endpoint.
type AuthHandler struct {
	users ports.UserService
}

func NewAuthHandler(users ports.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register creates a new user account. This is the only endpoint reachable
// without credentials. Any role supplied in the payload is ignored; new
// accounts always start as NORMAL_USER.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Register(c.Request().Context(), req.Username, req.Password, req.Email)
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("user").Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
	}
}
