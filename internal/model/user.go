package model

import "time"

// Role is the account role of a user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleFaculty Role = "faculty"
	RoleStudent Role = "student"
)

// User represents an account: the identity record every role profile hangs off.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         Role      `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RegisterRequest is the payload for self-registration. Role defaults to
// student; profile fields for the chosen role are required alongside.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6,max=128"`
	FirstName string `json:"first_name" binding:"required,min=1,max=50"`
	LastName  string `json:"last_name" binding:"required,min=1,max=50"`
	Role      Role   `json:"role" binding:"omitempty,oneof=student faculty"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`

	// Student profile fields
	RollNumber  string `json:"roll_number" binding:"omitempty,max=20"`
	Batch       string `json:"batch" binding:"omitempty,max=20"`
	Semester    int    `json:"semester" binding:"omitempty,min=1,max=8"`
	ParentName  string `json:"parent_name" binding:"omitempty,max=100"`
	ParentPhone string `json:"parent_phone" binding:"omitempty,max=20"`
	Address     string `json:"address" binding:"omitempty,max=255"`
	DateOfBirth string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`

	// Faculty profile fields
	EmployeeID     string `json:"employee_id" binding:"omitempty,max=20"`
	Designation    string `json:"designation" binding:"omitempty,oneof=Professor 'Associate Professor' 'Assistant Professor' Lecturer 'Lab Assistant'"`
	Specialization string `json:"specialization" binding:"omitempty,max=100"`
	Qualification  string `json:"qualification" binding:"omitempty,max=100"`

	// Shared profile fields
	Department string `json:"department" binding:"omitempty,oneof='Computer Science' Electronics Mechanical Civil Electrical 'Information Technology'"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateUserRequest is the admin payload for creating a user with a profile.
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6,max=128"`
	FirstName string `json:"first_name" binding:"required,min=1,max=50"`
	LastName  string `json:"last_name" binding:"required,min=1,max=50"`
	Role      Role   `json:"role" binding:"required,oneof=admin student faculty"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`

	RollNumber  string `json:"roll_number" binding:"omitempty,max=20"`
	Batch       string `json:"batch" binding:"omitempty,max=20"`
	Semester    int    `json:"semester" binding:"omitempty,min=1,max=8"`
	EmployeeID  string `json:"employee_id" binding:"omitempty,max=20"`
	Designation string `json:"designation" binding:"omitempty,oneof=Professor 'Associate Professor' 'Assistant Professor' Lecturer 'Lab Assistant'"`
	Department  string `json:"department" binding:"omitempty,oneof='Computer Science' Electronics Mechanical Civil Electrical 'Information Technology'"`
}

// UpdateUserRequest is the admin payload for updating basic account fields.
type UpdateUserRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=50"`
	LastName  string `json:"last_name" binding:"required,min=1,max=50"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
}

// UpdateProfileRequest is the payload for a user updating their own details.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"omitempty,min=1,max=50"`
	LastName  string `json:"last_name" binding:"omitempty,min=1,max=50"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
}

// UpdatePasswordRequest is the payload for changing the current password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6,max=128"`
}
