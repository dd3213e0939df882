package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gudangkita/sparepart-api/internal/application/auth"
	"github.com/gudangkita/sparepart-api/internal/application/dto"
	"github.com/gudangkita/sparepart-api/internal/domain"
	"github.com/gudangkita/sparepart-api/internal/domain/entity"
	pkgjwt "github.com/gudangkita/sparepart-api/pkg/jwt"
)

type stubUserRepo struct {
	user *entity.User
}

func (s *stubUserRepo) Create(u *entity.User) error { return nil }
func (s *stubUserRepo) FindByUsername(username string) (*entity.User, error) {
	if s.user != nil && s.user.Username == username {
		return s.user, nil
	}
	return nil, nil
}

func adminUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:           "u-1",
		Username:     "admin",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
}

func TestLogin_Sukses(t *testing.T) {
	repo := &stubUserRepo{user: adminUser(t, "rahasia123")}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret: "test-secret", ExpMinutes: 60, Issuer: "sparepart-test",
	})

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "rahasia123"})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "admin", out.Username)
	require.NotEmpty(t, out.Token)

	userID, username, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, "admin", username)
}

func TestLogin_UsernameDenganSpasi(t *testing.T) {
	repo := &stubUserRepo{user: adminUser(t, "rahasia123")}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: "test-secret"})

	out, err := uc.Login(dto.LoginRequest{Username: "  admin  ", Password: "rahasia123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.Username)
}

func TestLogin_PasswordSalah(t *testing.T) {
	repo := &stubUserRepo{user: adminUser(t, "rahasia123")}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: "test-secret"})

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "salah"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_PenggunaTidakDikenal(t *testing.T) {
	uc := auth.NewAuthUseCase(&stubUserRepo{}, auth.JWTConfig{Secret: "test-secret"})

	// Pengguna tak dikenal dan password salah menghasilkan error yang sama.
	_, err := uc.Login(dto.LoginRequest{Username: "siapa", Password: "apa"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_InputKosong(t *testing.T) {
	uc := auth.NewAuthUseCase(&stubUserRepo{}, auth.JWTConfig{Secret: "test-secret"})

	_, err := uc.Login(dto.LoginRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(dto.LoginRequest{Username: "admin", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_TanpaSecretTetapSukses(t *testing.T) {
	repo := &stubUserRepo{user: adminUser(t, "rahasia123")}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{})

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "rahasia123"})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Empty(t, out.Token, "tanpa JWT_SECRET login tetap jalan, hanya tanpa token")
}
