package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rdelacruz/stocktrail-backend/internal/access"
	"github.com/rdelacruz/stocktrail-backend/pkg/config"
	"github.com/rdelacruz/stocktrail-backend/pkg/db"
	"github.com/rdelacruz/stocktrail-backend/pkg/db/models"
	"github.com/rdelacruz/stocktrail-backend/pkg/enums"
	pkgerrors "github.com/rdelacruz/stocktrail-backend/pkg/errors"
	"github.com/rdelacruz/stocktrail-backend/pkg/security"
)

type userRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service exposes account management operations.
type Service interface {
	List(ctx context.Context, actor access.Actor) ([]UserDTO, error)
	ListManaged(ctx context.Context, actor access.Actor) ([]UserDTO, error)
	Create(ctx context.Context, actor access.Actor, input CreateUserInput) (*UserDTO, string, error)
	Update(ctx context.Context, actor access.Actor, targetID uuid.UUID, input UpdateUserInput) (*UserDTO, error)
	Delete(ctx context.Context, actor access.Actor, targetID uuid.UUID) error
	ResolveSessionUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

type service struct {
	repo        userRepository
	passwordCfg config.PasswordConfig
}

// ServiceParams bundles the dependencies required to build a users service.
type ServiceParams struct {
	Repo           userRepository
	PasswordConfig config.PasswordConfig
}

// NewService constructs a users service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	return &service{
		repo:        params.Repo,
		passwordCfg: params.PasswordConfig,
	}, nil
}

// CreateUserInput captures the fields a creator supplies for a new staff
// account. An empty password triggers a generated temporary one.
type CreateUserInput struct {
	Name             string
	Email            string
	Password         string
	Role             enums.UserRole
	StoreID          *uuid.UUID
	CanEditInventory bool
	CanDeleteItems   bool
	CanViewReports   bool
	CanManageTeam    bool
}

// UpdateUserInput captures the mutable account fields. Nil means unchanged.
type UpdateUserInput struct {
	Name             *string
	Email            *string
	Password         *string
	Role             *enums.UserRole
	StoreID          *uuid.UUID
	CanEditInventory *bool
	CanDeleteItems   *bool
	CanViewReports   *bool
	CanManageTeam    *bool
}

func (s *service) List(ctx context.Context, actor access.Actor) ([]UserDTO, error) {
	if err := access.RequireOwner(actor); err != nil {
		return nil, err
	}
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list users")
	}
	return FromModels(users), nil
}

func (s *service) ListManaged(ctx context.Context, actor access.Actor) ([]UserDTO, error) {
	users, err := s.repo.ListByCreator(ctx, actor.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list managed users")
	}
	return FromModels(users), nil
}

func (s *service) Create(ctx context.Context, actor access.Actor, input CreateUserInput) (*UserDTO, string, error) {
	role := input.Role
	if role == "" {
		role = enums.UserRoleEmployee
	}
	if err := access.CanAssignRole(actor.Role, role); err != nil {
		return nil, "", err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", pkgerrors.New(pkgerrors.CodeValidation, "a valid email is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, "", pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	password := input.Password
	tempPassword := ""
	if password == "" {
		generated, err := security.GenerateTempPassword(16)
		if err != nil {
			return nil, "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate temp password")
		}
		password = generated
		tempPassword = generated
	}
	hash, err := security.HashPassword(password, s.passwordCfg)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	creatorID := actor.ID
	storeID := input.StoreID
	if actor.Role == enums.UserRoleManager {
		// manager-created employees always land in the manager's store
		storeID = actor.StoreID
	}

	user := &models.User{
		Name:             name,
		Email:            email,
		PasswordHash:     hash,
		Role:             role,
		CreatedBy:        &creatorID,
		StoreID:          storeID,
		CanEditInventory: input.CanEditInventory,
		CanDeleteItems:   input.CanDeleteItems,
		CanViewReports:   input.CanViewReports,
		CanManageTeam:    input.CanManageTeam,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, "", pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}
	return FromModel(user), tempPassword, nil
}

func (s *service) Update(ctx context.Context, actor access.Actor, targetID uuid.UUID, input UpdateUserInput) (*UserDTO, error) {
	target, err := s.loadUser(ctx, targetID)
	if err != nil {
		return nil, err
	}

	selfUpdate := actor.ID == targetID
	if !selfUpdate {
		if err := access.RequireOwner(actor); err != nil {
			return nil, err
		}
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		target.Name = name
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email == "" || !strings.Contains(email, "@") {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "a valid email is required")
		}
		target.Email = email
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := security.HashPassword(*input.Password, s.passwordCfg)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
		}
		target.PasswordHash = hash
	}

	// role, store assignment and permission flags stay owner territory
	if input.Role != nil && *input.Role != target.Role {
		if selfUpdate {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, "cannot change own role")
		}
		if err := access.CanAssignRole(actor.Role, *input.Role); err != nil {
			return nil, err
		}
		target.Role = *input.Role
	}
	if input.StoreID != nil {
		if selfUpdate && actor.Role != enums.UserRoleOwner {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, "cannot change own store assignment")
		}
		target.StoreID = input.StoreID
	}
	if input.CanEditInventory != nil {
		target.CanEditInventory = *input.CanEditInventory
	}
	if input.CanDeleteItems != nil {
		target.CanDeleteItems = *input.CanDeleteItems
	}
	if input.CanViewReports != nil {
		target.CanViewReports = *input.CanViewReports
	}
	if input.CanManageTeam != nil {
		target.CanManageTeam = *input.CanManageTeam
	}

	if err := s.repo.Update(ctx, target); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update user")
	}
	return FromModel(target), nil
}

func (s *service) Delete(ctx context.Context, actor access.Actor, targetID uuid.UUID) error {
	target, err := s.loadUser(ctx, targetID)
	if err != nil {
		return err
	}
	if err := access.RequireOwner(actor); err != nil {
		return err
	}
	if target.Role == enums.UserRoleOwner {
		return pkgerrors.New(pkgerrors.CodeForbidden, "owner accounts cannot be deleted")
	}
	// items attributed to the account are intentionally left untouched
	if err := s.repo.Delete(ctx, targetID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete user")
	}
	return nil
}

// ResolveSessionUser loads the live account behind a session token. A miss
// maps to NotFound so the auth middleware can turn it into a 401.
func (s *service) ResolveSessionUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.loadUser(ctx, userID)
}

func (s *service) loadUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return user, nil
}
