package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/thakur-sujal/ERP-Portal/internal/model"
	"github.com/thakur-sujal/ERP-Portal/internal/repository"
)

// Common user errors.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrProfileIncomplete = errors.New("required profile fields are missing for this role")
)

// UserService handles accounts and their role profiles.
type UserService struct {
	users    *repository.UserRepository
	students *repository.StudentRepository
	faculty  *repository.FacultyRepository
	auth     *AuthService
	log      zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	users *repository.UserRepository,
	students *repository.StudentRepository,
	faculty *repository.FacultyRepository,
	auth *AuthService,
	log zerolog.Logger,
) *UserService {
	return &UserService{
		users:    users,
		students: students,
		faculty:  faculty,
		auth:     auth,
		log:      log.With().Str("component", "user_service").Logger(),
	}
}

// Register creates an account plus its role profile and returns the user with
// a fresh token. Role defaults to student.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, string, error) {
	role := req.Role
	if role == "" {
		role = model.RoleStudent
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		Phone:        req.Phone,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	if err := s.createProfile(ctx, user, req); err != nil {
		// The account is useless without its profile; undo the insert so the
		// email can be retried.
		if delErr := s.users.Delete(ctx, user.ID); delErr != nil {
			s.log.Error().Err(delErr).Int("user_id", user.ID).Msg("Rollback of orphaned account failed")
		}
		return nil, "", err
	}

	token, err := s.auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

func (s *UserService) createProfile(ctx context.Context, user *model.User, req *model.RegisterRequest) error {
	switch user.Role {
	case model.RoleStudent:
		if req.RollNumber == "" || req.Department == "" || req.Semester == 0 {
			return ErrProfileIncomplete
		}
		student := &model.Student{
			UserID:      user.ID,
			RollNumber:  req.RollNumber,
			Department:  req.Department,
			Semester:    req.Semester,
			Batch:       req.Batch,
			ParentName:  req.ParentName,
			ParentPhone: req.ParentPhone,
			Address:     req.Address,
		}
		if req.DateOfBirth != "" {
			dob, err := time.Parse("2006-01-02", req.DateOfBirth)
			if err != nil {
				return fmt.Errorf("parse date_of_birth: %w", err)
			}
			student.DateOfBirth = &dob
		}
		return s.students.Create(ctx, student)

	case model.RoleFaculty:
		if req.EmployeeID == "" || req.Department == "" || req.Designation == "" {
			return ErrProfileIncomplete
		}
		return s.faculty.Create(ctx, &model.Faculty{
			UserID:         user.ID,
			EmployeeID:     req.EmployeeID,
			Department:     req.Department,
			Designation:    req.Designation,
			Specialization: req.Specialization,
			Qualification:  req.Qualification,
		})
	}
	// Admin accounts carry no role profile.
	return nil
}

// Login authenticates an account and returns the user with a fresh token.
// Disabled accounts cannot log in.
func (s *UserService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		// Same failure as a wrong password; enumeration is not an option.
		return nil, "", ErrInvalidCredentials
	}
	if err := s.auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", ErrAccountDisabled
	}

	token, err := s.auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

// Get retrieves a user by ID.
func (s *UserService) Get(ctx context.Context, id int) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// List retrieves users with optional role and search filters.
func (s *UserService) List(ctx context.Context, role model.Role, search string, page, perPage int) ([]model.User, int, error) {
	return s.users.ListPaginated(ctx, role, search, perPage, (page-1)*perPage)
}

// Create provisions an account (any role) on behalf of an admin. Unlike
// Register, no token is issued.
func (s *UserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	user, _, err := s.Register(ctx, &model.RegisterRequest{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        req.Role,
		Phone:       req.Phone,
		RollNumber:  req.RollNumber,
		Batch:       req.Batch,
		Semester:    req.Semester,
		EmployeeID:  req.EmployeeID,
		Designation: req.Designation,
		Department:  req.Department,
	})
	return user, err
}

// Update modifies an account's basic fields.
func (s *UserService) Update(ctx context.Context, id int, req *model.UpdateUserRequest) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.Phone
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile lets a user change their own name and phone. Empty fields are
// left untouched.
func (s *UserService) UpdateProfile(ctx context.Context, userID int, req *model.UpdateProfileRequest) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePassword changes a user's password after verifying the current one.
func (s *UserService) UpdatePassword(ctx context.Context, userID int, req *model.UpdatePasswordRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.auth.CheckPassword(user.PasswordHash, req.CurrentPassword); err != nil {
		return ErrInvalidCredentials
	}
	hash, err := s.auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePassword(ctx, userID, hash)
}

// ToggleActive flips an account's active flag. Issued tokens stay valid until
// expiry but login is refused while inactive.
func (s *UserService) ToggleActive(ctx context.Context, id int) (bool, error) {
	return s.users.ToggleActive(ctx, id)
}

// Delete removes an account and, via cascade, its role profile and ledgers.
func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.users.Delete(ctx, id)
}
