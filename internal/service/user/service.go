package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/worktrack/worktrack-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	user.UserRepository
	user.GroupRepository
}

func NewUserService(userRepository user.UserRepository, groupRepository user.GroupRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository:  userRepository,
		GroupRepository: groupRepository,
	}
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if req.GroupID != nil {
		if _, err := s.GroupRepository.GetByID(ctx, *req.GroupID); err != nil {
			return user.UserResponse{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	role := user.Role(req.Role)
	if role == "" {
		role = user.RoleEmployee
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hashed,
		Role:         role,
		GroupID:      req.GroupID,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToUserResponse(created), nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToUserResponse(u))
	}
	return responses, nil
}

// UpdateUser implements user.UserService.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) error {
	if req.GroupID != nil {
		if _, err := s.GroupRepository.GetByID(ctx, *req.GroupID); err != nil {
			return err
		}
	}
	return s.UserRepository.Update(ctx, req)
}

// ListGroups implements user.UserService.
func (s *UserServiceImpl) ListGroups(ctx context.Context) ([]user.GroupResponse, error) {
	groups, err := s.GroupRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	responses := make([]user.GroupResponse, 0, len(groups))
	for _, g := range groups {
		responses = append(responses, user.GroupResponse{ID: g.ID, Name: g.Name})
	}
	return responses, nil
}

// CreateGroup implements user.UserService.
func (s *UserServiceImpl) CreateGroup(ctx context.Context, name string) (user.GroupResponse, error) {
	created, err := s.GroupRepository.Create(ctx, name)
	if err != nil {
		return user.GroupResponse{}, fmt.Errorf("failed to create group: %w", err)
	}
	return user.GroupResponse{ID: created.ID, Name: created.Name}, nil
}
