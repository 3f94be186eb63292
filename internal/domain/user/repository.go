package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, req UpdateUserRequest) error
}

type GroupRepository interface {
	GetByID(ctx context.Context, id int) (Group, error)
	List(ctx context.Context) ([]Group, error)
	Create(ctx context.Context, name string) (Group, error)
}
