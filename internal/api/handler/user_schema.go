package handler

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email"    validate:"required,email"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// userResponse is the public shape of a user account. The password hash never
// appears here.
type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
