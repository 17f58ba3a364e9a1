package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jortega/smartretail-api/internal/application/dto"
	"github.com/jortega/smartretail-api/internal/domain"
	"github.com/jortega/smartretail-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	Issuer     string
	Audience   string
	ExpMinutes int
}

// Credentials credenciales estáticas configuradas para el login. Password
// puede ser texto plano o un hash bcrypt (prefijo $2).
type Credentials struct {
	Username string
	Password string
}

// AuthUseCase valida credenciales contra la configuración y emite el token.
type AuthUseCase struct {
	creds  Credentials
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(creds Credentials, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{creds: creds, jwtCfg: jwtCfg}
}

// Login compara usuario y contraseña con las credenciales configuradas y, si
// coinciden, devuelve un token firmado con el usuario como único claim propio.
// Cualquier discrepancia devuelve ErrUnauthorized sin distinguir cuál campo
// falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.creds.Username == "" || uc.creds.Password == "" {
		return nil, domain.ErrUnauthorized
	}
	userOK := subtle.ConstantTimeCompare([]byte(in.Username), []byte(uc.creds.Username)) == 1
	if !userOK || !uc.passwordMatches(in.Password) {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Username, uc.jwtCfg.Issuer, uc.jwtCfg.Audience, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

func (uc *AuthUseCase) passwordMatches(password string) bool {
	if strings.HasPrefix(uc.creds.Password, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(uc.creds.Password), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(uc.creds.Password)) == 1
}
