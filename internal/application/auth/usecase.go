// Package auth implementa la autenticación de usuarios del punto de venta.
package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tlapasoft/tlapaleria-api/internal/application/dto"
	"github.com/tlapasoft/tlapaleria-api/internal/domain"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/repository"
	"github.com/tlapasoft/tlapaleria-api/pkg/jwt"
)

// AuthUseCase valida credenciales y emite tokens de acceso.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtSecret   string
	jwtIssuer   string
	jwtMinutos  int
}

// NewAuthUseCase construye el caso de uso de autenticación.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, secret, issuer string, expiracionMinutos int) *AuthUseCase {
	return &AuthUseCase{
		usuarioRepo: usuarioRepo,
		jwtSecret:   secret,
		jwtIssuer:   issuer,
		jwtMinutos:  expiracionMinutos,
	}
}

// Login verifica email y contraseña. Cualquier credencial inválida responde
// con el mismo error para no revelar qué cuentas existen.
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("email y contraseña son obligatorios: %w", domain.ErrInvalidInput)
	}

	usuario, err := uc.usuarioRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("consultando usuario: %w", err)
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtSecret, usuario.ID, usuario.Email, usuario.Rol, uc.jwtIssuer, uc.jwtMinutos)
	if err != nil {
		return nil, fmt.Errorf("generando token: %w", err)
	}

	return &dto.LoginResponse{
		Token: token,
		Usuario: dto.UsuarioResponse{
			ID:     usuario.ID,
			Nombre: usuario.Nombre,
			Email:  usuario.Email,
			Rol:    usuario.Rol,
		},
	}, nil
}
