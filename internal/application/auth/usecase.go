package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/gudangkita/sparepart-api/internal/application/dto"
	"github.com/gudangkita/sparepart-api/internal/domain"
	"github.com/gudangkita/sparepart-api/internal/domain/repository"
	"github.com/gudangkita/sparepart-api/pkg/jwt"
)

// JWTConfig konfigurasi pembuatan token.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login pengguna: verifikasi bcrypt lalu terbitkan JWT.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase membangun use case auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login memverifikasi username/password. Kredensial salah dan pengguna tidak
// dikenal sama-sama menghasilkan ErrUnauthorized supaya tidak membocorkan
// keberadaan akun. Token kosong bila JWT_SECRET tidak dikonfigurasi.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	var token string
	if uc.jwtCfg.Secret != "" {
		token, err = jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
	}

	return &dto.LoginResponse{
		Success:  true,
		Username: user.Username,
		Token:    token,
	}, nil
}
