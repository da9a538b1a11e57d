package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/yosefin19/sinac-turismo-api/internal/domain"
	domerrors "github.com/yosefin19/sinac-turismo-api/internal/domain/errors"
)

// fakeUserRepo keeps users in a map keyed by email.
type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	for email, u := range r.byEmail {
		if u.ID == id {
			delete(r.byEmail, email)
		}
	}
	return nil
}

// fakeHasher marks hashes with a prefix so tests can tell hash from
// plaintext without paying for bcrypt.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Verify(password, hash string) bool { return hash == "hashed:"+password }

type fakeIssuer struct{}

func (fakeIssuer) Issue(subject int64) (string, error) { return fmt.Sprintf("token-%d", subject), nil }

func (fakeIssuer) Decode(token string) (int64, error) { return 0, domerrors.ErrInvalidToken }

type fakeEnqueuer struct {
	email    string
	password string
	calls    int
}

func (e *fakeEnqueuer) EnqueueSendNewPassword(_ context.Context, email, newPassword string) error {
	e.email = email
	e.password = newPassword
	e.calls++
	return nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string) *domain.User {
	t.Helper()
	user := &domain.User{Email: email, PasswordHash: "hashed:" + password}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "ana@example.com", "secret123")
	uc := NewLogin(repo, fakeHasher{}, fakeIssuer{})

	result, err := uc.Execute(context.Background(), LoginInput{Email: "ana@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Token != fmt.Sprintf("token-%d", user.ID) {
		t.Fatalf("token = %q", result.Token)
	}
	if result.User.ID != user.ID {
		t.Fatalf("user id = %d, want %d", result.User.ID, user.ID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	seedUser(t, repo, "ana@example.com", "secret123")
	uc := NewLogin(repo, fakeHasher{}, fakeIssuer{})

	_, err := uc.Execute(context.Background(), LoginInput{Email: "ana@example.com", Password: "wrong"})
	if !errors.Is(err, domerrors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()
	uc := NewLogin(newFakeUserRepo(), fakeHasher{}, fakeIssuer{})

	// Unknown account and wrong password must be indistinguishable.
	_, err := uc.Execute(context.Background(), LoginInput{Email: "nobody@example.com", Password: "x"})
	if !errors.Is(err, domerrors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	uc := NewRegister(repo, fakeHasher{})

	user, err := uc.Execute(context.Background(), RegisterInput{Email: "new@example.com", Password: "pw", Admin: true})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("user was not persisted")
	}
	if !user.Admin {
		t.Fatal("admin flag dropped")
	}
	if user.PasswordHash == "pw" {
		t.Fatal("password stored in plaintext")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	seedUser(t, repo, "taken@example.com", "pw")
	uc := NewRegister(repo, fakeHasher{})

	_, err := uc.Execute(context.Background(), RegisterInput{Email: "taken@example.com", Password: "pw"})
	if !errors.Is(err, domerrors.ErrEmailExists) {
		t.Fatalf("err = %v, want ErrEmailExists", err)
	}
}

func TestRegister_InvalidEmail(t *testing.T) {
	t.Parallel()
	uc := NewRegister(newFakeUserRepo(), fakeHasher{})

	for _, email := range []string{"", "not-an-email", "missing@tld", "@example.com"} {
		if _, err := uc.Execute(context.Background(), RegisterInput{Email: email, Password: "pw"}); err == nil {
			t.Fatalf("email %q accepted", email)
		}
	}
}

func TestResetPassword(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "ana@example.com", "old-password")
	enq := &fakeEnqueuer{}
	uc := NewResetPassword(repo, fakeHasher{}, enq)

	if err := uc.Execute(context.Background(), "ana@example.com"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if enq.calls != 1 {
		t.Fatalf("enqueued %d times, want 1", enq.calls)
	}
	if enq.email != "ana@example.com" {
		t.Fatalf("mailed %q", enq.email)
	}
	// The stored hash must match the password that went out.
	if user.PasswordHash != "hashed:"+enq.password {
		t.Fatalf("stored hash %q does not match emailed password %q", user.PasswordHash, enq.password)
	}
	if enq.password == "old-password" {
		t.Fatal("password unchanged")
	}
}

func TestResetPassword_UnknownEmail(t *testing.T) {
	t.Parallel()
	enq := &fakeEnqueuer{}
	uc := NewResetPassword(newFakeUserRepo(), fakeHasher{}, enq)

	err := uc.Execute(context.Background(), "nobody@example.com")
	if !errors.Is(err, domerrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if enq.calls != 0 {
		t.Fatal("email enqueued for an unknown account")
	}
}

func TestGeneratePassword(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		pw, err := GeneratePassword()
		if err != nil {
			t.Fatalf("GeneratePassword: %v", err)
		}
		if len(pw) != generatedPasswordLen {
			t.Fatalf("len = %d, want %d", len(pw), generatedPasswordLen)
		}
		if !strings.ContainsAny(pw, digits) {
			t.Fatalf("%q has no digit", pw)
		}
		if !strings.ContainsAny(pw, upperLetters) {
			t.Fatalf("%q has no upper-case letter", pw)
		}
		if !strings.ContainsAny(pw, lowerLetters) {
			t.Fatalf("%q has no lower-case letter", pw)
		}
		if strings.ContainsAny(pw, "lLoO") {
			t.Fatalf("%q contains a lookalike character", pw)
		}
	}
}
