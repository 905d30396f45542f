package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastano/almacen-admin/internal/application/dto"
	"github.com/jcastano/almacen-admin/internal/domain"
	"github.com/jcastano/almacen-admin/pkg/config"
	"github.com/jcastano/almacen-admin/pkg/jwt"
	"github.com/jcastano/almacen-admin/pkg/logger"
)

// AuthUseCase login del panel. Es deliberadamente un stub: una sola credencial
// configurada, sin registro ni gestión de usuarios. Si no hay hash configurado
// (ambiente development) acepta cualquier contraseña.
type AuthUseCase struct {
	admin  config.AdminConfig
	jwtCfg config.JWTConfig
	log    *logger.Logger
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(admin config.AdminConfig, jwtCfg config.JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{admin: admin, jwtCfg: jwtCfg, log: log}
}

// Login valida la credencial y emite un JWT con rol admin.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Usuario == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Usuario != uc.admin.Usuario {
		return nil, domain.ErrUnauthorized
	}
	if uc.admin.PasswordHash == "" {
		uc.log.Warn().Msg("login sin hash configurado: se acepta cualquier contraseña (solo development)")
	} else if err := bcrypt.CompareHashAndPassword([]byte(uc.admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Usuario, "admin", uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Usuario: in.Usuario, Rol: "admin"}, nil
}
