package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/orgstack/employee-management/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID   map[string]*domain.User
	nextID int
	err    error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Insert(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, existing := range r.byID {
		if existing.Username == u.Username {
			return nil, domain.ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return nil, domain.ErrUserEmailTaken
		}
	}
	r.nextID++
	clone := *u
	clone.ID = fmt.Sprintf("user_%d", r.nextID)
	r.byID[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.byID {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, u := range r.byID {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, u := range r.byID {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) error {
	if r.err != nil {
		return r.err
	}
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

// ---------------------------------------------------------------------------
// Register tests
// ---------------------------------------------------------------------------

func TestUserService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	user, err := svc.Register(context.Background(), "jdoe", "s3cret!", "jdoe@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.ID == "" {
		t.Error("expected an assigned id")
	}
	if user.Username != "jdoe" || user.Email != "jdoe@example.com" {
		t.Errorf("account fields wrong: %+v", user)
	}
}

func TestUserService_Register_AlwaysNormalUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	user, err := svc.Register(context.Background(), "jdoe", "s3cret!", "jdoe@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != domain.RoleNormalUser {
		t.Errorf("new accounts must start as %q, got %q", domain.RoleNormalUser, user.Role)
	}
}

func TestUserService_Register_PasswordStoredHashed(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	user, err := svc.Register(context.Background(), "jdoe", "s3cret!", "jdoe@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.byID[user.ID]
	if stored.PasswordHash == "s3cret!" {
		t.Fatal("password must never be stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret!")); err != nil {
		t.Errorf("stored hash does not verify against the original password: %v", err)
	}
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	if _, err := svc.Register(context.Background(), "jdoe", "s3cret!", "jdoe@example.com"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := svc.Register(context.Background(), "jdoe", "other", "new@example.com")
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Errorf("conflicting register must not persist; have %d users", len(repo.byID))
	}
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	if _, err := svc.Register(context.Background(), "jdoe", "s3cret!", "jdoe@example.com"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := svc.Register(context.Background(), "other", "s3cret!", "jdoe@example.com")
	if !errors.Is(err, domain.ErrUserEmailTaken) {
		t.Fatalf("expected ErrUserEmailTaken, got %v", err)
	}
}

func TestUserService_Register_UsernameCheckedBeforeEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	if _, err := svc.Register(context.Background(), "jdoe", "s3cret!", "jdoe@example.com"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Both the username and the email collide; the username wins.
	_, err := svc.Register(context.Background(), "jdoe", "s3cret!", "jdoe@example.com")
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken when both collide, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// UpdateRole tests
// ---------------------------------------------------------------------------

func TestUserService_UpdateRole_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	user, err := svc.Register(context.Background(), "jdoe", "s3cret!", "jdoe@example.com")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	updated, err := svc.UpdateRole(context.Background(), user.ID, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Errorf("role: want %q, got %q", domain.RoleAdmin, updated.Role)
	}
	if repo.byID[user.ID].Role != domain.RoleAdmin {
		t.Error("role change was not persisted")
	}
}

func TestUserService_UpdateRole_InvalidRoleLeavesAccountUnchanged(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	user, err := svc.Register(context.Background(), "jdoe", "s3cret!", "jdoe@example.com")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err = svc.UpdateRole(context.Background(), user.ID, domain.Role("SUPERUSER"))
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if repo.byID[user.ID].Role != domain.RoleNormalUser {
		t.Error("rejected role change must leave the account unchanged")
	}
}

func TestUserService_UpdateRole_InvalidRoleSkipsStore(t *testing.T) {
	repo := newStubUserRepo()
	repo.err = errors.New("db unavailable")
	svc := NewUserService(repo, discardLogger)

	// An invalid role must be rejected before any store access.
	_, err := svc.UpdateRole(context.Background(), "user_1", domain.Role(""))
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_UpdateRole_UserNotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	_, err := svc.UpdateRole(context.Background(), "missing", domain.RoleAdmin)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// FindByUsername / List tests
// ---------------------------------------------------------------------------

func TestUserService_FindByUsername_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	_, err := svc.FindByUsername(context.Background(), "missing")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_List(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	if _, err := svc.Register(context.Background(), "jdoe", "s3cret!", "jdoe@example.com"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "asmith", "s3cret!", "asmith@example.com"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
}
