package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/orgstack/employee-management/internal/api/metrics"
	"github.com/orgstack/employee-management/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee operations.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// Create handles POST /api/employees.
//
// @Summary      Create a new employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body      employeeRequest  true  "Employee details"
// @Success      201   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	input, err := h.bindInput(c)
	if err != nil {
		return err
	}

	record, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("employee").Inc()
	return c.JSON(http.StatusCreated, toEmployeeResponse(record))
}

// List handles GET /api/employees. Every record carries the department name
// resolved at read time.
//
// @Summary      List all employees
// @Tags         employees
// @Produce      json
// @Security     BasicAuth
// @Success      200  {array}  employeeResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	records, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponses(records))
}

// Get handles GET /api/employees/:id.
//
// @Summary      Get an employee by id
// @Tags         employees
// @Produce      json
// @Security     BasicAuth
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  employeeResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	record, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(record))
}

// ListByDepartment handles GET /api/employees/by-department/:departmentId.
// Results are ordered by last name, then first name.
//
// @Summary      List employees of a department
// @Tags         employees
// @Produce      json
// @Security     BasicAuth
// @Param        departmentId  path      string  true  "Department id"
// @Success      200           {array}   employeeResponse
// @Failure      404           {object}  errorResponse
// @Router       /api/employees/by-department/{departmentId} [get]
func (h *EmployeeHandler) ListByDepartment(c echo.Context) error {
	records, err := h.service.ListByDepartment(c.Request().Context(), c.Param("departmentId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponses(records))
}

// Update handles PUT /api/employees/:id. All mutable fields are replaced,
// including the department association.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        id    path      string           true  "Employee id"
// @Param        body  body      employeeRequest  true  "New employee details"
// @Success      200   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	input, err := h.bindInput(c)
	if err != nil {
		return err
	}

	record, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(record))
}

// Delete handles DELETE /api/employees/:id.
//
// @Summary      Delete an employee
// @Tags         employees
// @Security     BasicAuth
// @Param        id  path  string  true  "Employee id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EmployeeHandler) bindInput(c echo.Context) (ports.EmployeeInput, error) {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return ports.EmployeeInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.EmployeeInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := toEmployeeInput(req, time.Now().UTC())
	if err != nil {
		return ports.EmployeeInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return input, nil
}
