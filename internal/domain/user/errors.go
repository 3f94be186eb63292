package user

import "errors"

var (
	ErrUserNotFound           = errors.New("User not found")
	ErrEmailExists            = errors.New("Email already registered")
	ErrGroupNotFound          = errors.New("Group not found")
	ErrAdminPrivilegeRequired = errors.New("Admin privilege required")
)
