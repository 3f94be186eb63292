package user

import "github.com/worktrack/worktrack-backend-go/internal/pkg/validator"

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	GroupID  *int   `json:"group_id"`
}

func (r CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "Password must be at least 8 characters"})
	}
	if r.Role != "" && !validator.IsInSlice(r.Role, []string{string(RoleAdmin), string(RoleManager), string(RoleEmployee)}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "Unknown role"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	ID      string  `json:"-"`
	Name    *string `json:"name"`
	Role    *string `json:"role"`
	GroupID *int    `json:"group_id"`
}

type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	GroupID *int   `json:"group_id,omitempty"`
}

func ToUserResponse(u User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    string(u.Role),
		GroupID: u.GroupID,
	}
}

type GroupResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
