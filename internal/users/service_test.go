package users

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rdelacruz/stocktrail-backend/internal/access"
	"github.com/rdelacruz/stocktrail-backend/pkg/config"
	"github.com/rdelacruz/stocktrail-backend/pkg/db/models"
	"github.com/rdelacruz/stocktrail-backend/pkg/enums"
	pkgerrors "github.com/rdelacruz/stocktrail-backend/pkg/errors"
)

type stubUserRepo struct {
	users    map[uuid.UUID]*models.User
	created  *models.User
	updated  *models.User
	deleted  *uuid.UUID
	listErr  error
	createFn func(*models.User) error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[uuid.UUID]*models.User{}}
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	if s.createFn != nil {
		if err := s.createFn(user); err != nil {
			return err
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.created = user
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) List(ctx context.Context) ([]models.User, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		out = append(out, *user)
	}
	return out, nil
}

func (s *stubUserRepo) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.User, error) {
	var out []models.User
	for _, user := range s.users {
		if user.CreatedBy != nil && *user.CreatedBy == creatorID {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	s.updated = user
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s.deleted = &id
	delete(s.users, id)
	return nil
}

func newTestService(t *testing.T, repo userRepository) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo, PasswordConfig: config.PasswordConfig{}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func ownerActor() access.Actor {
	return access.Actor{ID: uuid.New(), Role: enums.UserRoleOwner}
}

func managerActor(ownerID, storeID uuid.UUID) access.Actor {
	return access.Actor{ID: uuid.New(), Role: enums.UserRoleManager, StoreID: &storeID, CreatedBy: &ownerID}
}

func TestNewServiceRequiresRepo(t *testing.T) {
	if _, err := NewService(ServiceParams{}); err == nil {
		t.Fatal("expected error creating service without repo")
	}
}

func TestListRequiresOwner(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(t, repo)

	storeID := uuid.New()
	_, err := svc.List(context.Background(), managerActor(uuid.New(), storeID))
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}

	if _, err := svc.List(context.Background(), ownerActor()); err != nil {
		t.Fatalf("owner list failed: %v", err)
	}
}

func TestCreateEmployeeByManagerInheritsStore(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(t, repo)

	ownerID := uuid.New()
	storeID := uuid.New()
	manager := managerActor(ownerID, storeID)
	otherStore := uuid.New()

	dto, temp, err := svc.Create(context.Background(), manager, CreateUserInput{
		Name:    "New Hire",
		Email:   "Hire@Example.com",
		Role:    enums.UserRoleEmployee,
		StoreID: &otherStore,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if temp == "" {
		t.Fatal("expected generated temp password when none supplied")
	}
	if dto.Email != "hire@example.com" {
		t.Fatalf("email not normalized: %s", dto.Email)
	}
	if dto.StoreID == nil || *dto.StoreID != storeID {
		t.Fatalf("expected manager's store %s, got %v", storeID, dto.StoreID)
	}
	if dto.CreatedBy == nil || *dto.CreatedBy != manager.ID {
		t.Fatalf("expected createdBy %s, got %v", manager.ID, dto.CreatedBy)
	}
}

func TestCreateManagerByManagerRejected(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(t, repo)

	storeID := uuid.New()
	_, _, err := svc.Create(context.Background(), managerActor(uuid.New(), storeID), CreateUserInput{
		Name:  "Peer",
		Email: "peer@example.com",
		Role:  enums.UserRoleManager,
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeInvalidRole {
		t.Fatalf("expected invalid role assignment, got %v", err)
	}
}

func TestCreateOwnerByOwnerRejected(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(t, repo)

	_, _, err := svc.Create(context.Background(), ownerActor(), CreateUserInput{
		Name:  "Another Owner",
		Email: "other@example.com",
		Role:  enums.UserRoleOwner,
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeInvalidRole {
		t.Fatalf("expected invalid role assignment, got %v", err)
	}
}

func TestCreateDefaultsToEmployee(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(t, repo)

	dto, _, err := svc.Create(context.Background(), ownerActor(), CreateUserInput{
		Name:     "Staff",
		Email:    "staff@example.com",
		Password: "provided-password",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if dto.Role != enums.UserRoleEmployee {
		t.Fatalf("expected employee default, got %s", dto.Role)
	}
}

func TestCreateDuplicateEmailConflict(t *testing.T) {
	repo := newStubUserRepo()
	repo.createFn = func(*models.User) error {
		return errors.New(`duplicate key value violates unique constraint "idx_users_email"`)
	}
	svc := newTestService(t, repo)

	_, _, err := svc.Create(context.Background(), ownerActor(), CreateUserInput{
		Name:  "Dup",
		Email: "dup@example.com",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestUpdateSelfCannotChangeRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(t, repo)

	storeID := uuid.New()
	self := &models.User{ID: uuid.New(), Name: "Me", Email: "me@example.com", Role: enums.UserRoleEmployee, StoreID: &storeID}
	repo.users[self.ID] = self

	newRole := enums.UserRoleManager
	actor := access.Actor{ID: self.ID, Role: self.Role, StoreID: self.StoreID}
	_, err := svc.Update(context.Background(), actor, self.ID, UpdateUserInput{Role: &newRole})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestUpdateSelfNameAllowed(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(t, repo)

	self := &models.User{ID: uuid.New(), Name: "Old", Email: "self@example.com", Role: enums.UserRoleEmployee}
	repo.users[self.ID] = self

	name := "New Name"
	actor := access.Actor{ID: self.ID, Role: self.Role}
	dto, err := svc.Update(context.Background(), actor, self.ID, UpdateUserInput{Name: &name})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if dto.Name != "New Name" {
		t.Fatalf("name not updated: %s", dto.Name)
	}
}

func TestUpdateByNonOwnerForbidden(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(t, repo)

	target := &models.User{ID: uuid.New(), Name: "Target", Email: "t@example.com", Role: enums.UserRoleEmployee}
	repo.users[target.ID] = target

	storeID := uuid.New()
	name := "Hax"
	_, err := svc.Update(context.Background(), managerActor(uuid.New(), storeID), target.ID, UpdateUserInput{Name: &name})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestDeleteOwnerTargetRejected(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(t, repo)

	target := &models.User{ID: uuid.New(), Name: "Boss", Email: "boss@example.com", Role: enums.UserRoleOwner}
	repo.users[target.ID] = target

	err := svc.Delete(context.Background(), ownerActor(), target.ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if repo.deleted != nil {
		t.Fatal("owner account should not be deleted")
	}
}

func TestDeleteMissingUserNotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(t, repo)

	err := svc.Delete(context.Background(), ownerActor(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteEmployeeByOwner(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(t, repo)

	target := &models.User{ID: uuid.New(), Name: "Emp", Email: "emp@example.com", Role: enums.UserRoleEmployee}
	repo.users[target.ID] = target

	if err := svc.Delete(context.Background(), ownerActor(), target.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if repo.deleted == nil || *repo.deleted != target.ID {
		t.Fatal("expected delete to reach the repository")
	}
}

func TestListManagedFiltersByCreator(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(t, repo)

	owner := ownerActor()
	mine := &models.User{ID: uuid.New(), Email: "mine@example.com", CreatedBy: &owner.ID}
	otherCreator := uuid.New()
	other := &models.User{ID: uuid.New(), Email: "other@example.com", CreatedBy: &otherCreator}
	repo.users[mine.ID] = mine
	repo.users[other.ID] = other

	dtos, err := svc.ListManaged(context.Background(), owner)
	if err != nil {
		t.Fatalf("list managed failed: %v", err)
	}
	if len(dtos) != 1 || dtos[0].ID != mine.ID {
		t.Fatalf("expected only managed user, got %v", dtos)
	}
}

func TestResolveSessionUserNotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(t, repo)

	_, err := svc.ResolveSessionUser(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
