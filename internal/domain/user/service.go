package user

import "context"

type UserService interface {
	// CreateUser provisions a directory entry with a hashed password.
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	// UpdateUser changes name, role or group membership; absent fields are
	// left untouched.
	UpdateUser(ctx context.Context, req UpdateUserRequest) error

	ListGroups(ctx context.Context) ([]GroupResponse, error)
	CreateGroup(ctx context.Context, name string) (GroupResponse, error)
}
