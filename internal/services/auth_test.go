package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"academyscheduler/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byEmail   map[string]*domain.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	u.ID = "user-" + u.Email
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeHasher implements domain.PasswordHasher for tests.
type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }
func (fakeHasher) Hash(salt, password string) (string, error) {
	return "hash:" + salt + ":" + password, nil
}
func (fakeHasher) Compare(hash, salt, password string) error {
	if hash != "hash:"+salt+":"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeIssuer implements domain.TokenIssuer for tests.
type fakeIssuer struct{ err error }

func (f fakeIssuer) Issue(userID, email, role string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + userID, nil
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		role     string
		wantErr  error
		wantRole string
	}{
		{name: "trainer", email: "ana@academy.pt", password: "longenough", role: "trainer", wantRole: domain.RoleTrainer},
		{name: "role defaults to student", email: "rui@academy.pt", password: "longenough", role: "", wantRole: domain.RoleStudent},
		{name: "invalid email", email: "not-an-email", password: "longenough", wantErr: domain.ErrInvalidInput},
		{name: "short password", email: "ana@academy.pt", password: "short", wantErr: domain.ErrInvalidInput},
		{name: "unknown role", email: "ana@academy.pt", password: "longenough", role: "director", wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			svc := NewAuthService(repo, fakeHasher{}, fakeIssuer{}, time.Hour, 2*time.Second)
			user, err := svc.SignUp(ctx, tt.email, tt.password, "Name", tt.role)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, user.Role)
			assert.NotEmpty(t, user.ID)
			assert.NotEqual(t, tt.password, user.PasswordHash)
		})
	}
}

func TestAuthService_SignUp_duplicate_email(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, fakeHasher{}, fakeIssuer{}, time.Hour, 2*time.Second)

	_, err := svc.SignUp(ctx, "ana@academy.pt", "longenough", "Ana", "admin")
	require.NoError(t, err)
	_, err = svc.SignUp(ctx, "ana@academy.pt", "longenough", "Ana", "admin")
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, fakeHasher{}, fakeIssuer{}, time.Hour, 2*time.Second)

	user, err := svc.SignUp(ctx, "ana@academy.pt", "longenough", "Ana", "admin")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "Ana@Academy.PT", "longenough")
	require.NoError(t, err)
	assert.Equal(t, "token-"+user.ID, token)

	_, err = svc.Login(ctx, "ana@academy.pt", "wrong-password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")

	_, err = svc.Login(ctx, "nobody@academy.pt", "longenough")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}
