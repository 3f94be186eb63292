package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// User is one entry of the organization directory.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash *string
	GoogleID     *string
	Role         Role

	// GroupID is nil for users that belong to no organizational group.
	GroupID *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Group is an organizational group (team/department) users belong to.
type Group struct {
	ID   int
	Name string
}

// UngroupedID and UngroupedName identify the sentinel bucket that collects
// users without a group in grouped views. It sorts last regardless of name.
const (
	UngroupedID   = 0
	UngroupedName = "no group"
)
