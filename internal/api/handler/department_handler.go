package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orgstack/employee-management/internal/api/metrics"
	"github.com/orgstack/employee-management/internal/core/domain"
	"github.com/orgstack/employee-management/internal/core/ports"
)

// DepartmentHandler handles HTTP requests for department operations.
type DepartmentHandler struct {
	service ports.DepartmentService
}

func NewDepartmentHandler(service ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

// Create handles POST /api/departments.
//
// @Summary      Create a new department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body      departmentRequest  true  "Department details"
// @Success      201   {object}  departmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/departments [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dept, err := h.service.Create(c.Request().Context(), ports.DepartmentInput{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("department").Inc()
	return c.JSON(http.StatusCreated, toDepartmentResponse(dept))
}

// List handles GET /api/departments.
//
// @Summary      List all departments
// @Tags         departments
// @Produce      json
// @Security     BasicAuth
// @Success      200  {array}  departmentResponse
// @Router       /api/departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	depts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]departmentResponse, 0, len(depts))
	for _, d := range depts {
		resp = append(resp, toDepartmentResponse(d))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/departments/:id.
//
// @Summary      Get a department by id
// @Tags         departments
// @Produce      json
// @Security     BasicAuth
// @Param        id   path      string  true  "Department id"
// @Success      200  {object}  departmentResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/departments/{id} [get]
func (h *DepartmentHandler) Get(c echo.Context) error {
	dept, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDepartmentResponse(dept))
}

// Update handles PUT /api/departments/:id. Both fields are replaced with the
// supplied values; there is no partial update.
//
// @Summary      Update a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        id    path      string             true  "Department id"
// @Param        body  body      departmentRequest  true  "New department details"
// @Success      200   {object}  departmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/departments/{id} [put]
func (h *DepartmentHandler) Update(c echo.Context) error {
	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dept, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.DepartmentInput{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDepartmentResponse(dept))
}

// Delete handles DELETE /api/departments/:id. Employees referencing the
// department are deliberately left in place.
//
// @Summary      Delete a department
// @Tags         departments
// @Security     BasicAuth
// @Param        id  path  string  true  "Department id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/departments/{id} [delete]
func (h *DepartmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toDepartmentResponse(d *domain.Department) departmentResponse {
	return departmentResponse{
		ID:       d.ID,
		Name:     d.Name,
		Location: d.Location,
	}
}
