package repository

import (
	"context"

	"github.com/tlapasoft/tlapaleria-api/internal/domain/entity"
)

// UsuarioRepository puerto de persistencia de usuarios.
// Los Get devuelven (nil, nil) cuando el usuario no existe.
type UsuarioRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	Create(ctx context.Context, u *entity.Usuario) error
}
