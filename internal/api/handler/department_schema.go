package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type departmentRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Location string `json:"location" validate:"omitempty,max=255"`
}

type departmentResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}
