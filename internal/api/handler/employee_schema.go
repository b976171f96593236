package handler

// hireDateLayout is the wire format for hire dates; time components are not
// accepted.
const hireDateLayout = "2006-01-02"

type employeeRequest struct {
	FirstName    string  `json:"first_name"    validate:"required,min=2,max=50"`
	LastName     string  `json:"last_name"     validate:"required,min=2,max=50"`
	Email        string  `json:"email"         validate:"required,email"`
	PhoneNumber  string  `json:"phone_number"  validate:"omitempty,max=20"`
	HireDate     string  `json:"hire_date"     validate:"required"`
	Salary       float64 `json:"salary"        validate:"gte=0"`
	JobRole      string  `json:"job_role"      validate:"required,min=2,max=50"`
	DepartmentID string  `json:"department_id" validate:"required"`
}

type employeeResponse struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	PhoneNumber    string  `json:"phone_number,omitempty"`
	HireDate       string  `json:"hire_date"`
	Salary         float64 `json:"salary"`
	JobRole        string  `json:"job_role"`
	DepartmentID   string  `json:"department_id"`
	DepartmentName string  `json:"department_name"`
}
