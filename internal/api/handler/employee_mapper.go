package handler

import (
	"fmt"
	"time"

	"github.com/orgstack/employee-management/internal/core/ports"
)

// toEmployeeInput maps the HTTP request to the service DTO. The hire date is
// parsed here and must not lie in the future relative to the current date.
func toEmployeeInput(req employeeRequest, now time.Time) (ports.EmployeeInput, error) {
	hireDate, err := time.ParseInLocation(hireDateLayout, req.HireDate, time.UTC)
	if err != nil {
		return ports.EmployeeInput{}, fmt.Errorf("hire_date must be a valid %s date", hireDateLayout)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if hireDate.After(today) {
		return ports.EmployeeInput{}, fmt.Errorf("hire_date cannot be in the future")
	}

	return ports.EmployeeInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		HireDate:     hireDate,
		Salary:       req.Salary,
		JobRole:      req.JobRole,
		DepartmentID: req.DepartmentID,
	}, nil
}

func toEmployeeResponse(r *ports.EmployeeRecord) employeeResponse {
	return employeeResponse{
		ID:             r.ID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		PhoneNumber:    r.PhoneNumber,
		HireDate:       r.HireDate.UTC().Format(hireDateLayout),
		Salary:         r.Salary,
		JobRole:        r.JobRole,
		DepartmentID:   r.DepartmentID,
		DepartmentName: r.DepartmentName,
	}
}

func toEmployeeResponses(records []*ports.EmployeeRecord) []employeeResponse {
	resp := make([]employeeResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, toEmployeeResponse(r))
	}
	return resp
}
