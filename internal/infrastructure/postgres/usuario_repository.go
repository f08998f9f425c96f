package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tlapasoft/tlapaleria-api/internal/domain"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/entity"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) GetByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	query := `SELECT id, email, nombre, password_hash, rol, fecha_creacion FROM usuarios WHERE id = $1`
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.Nombre, &u.PasswordHash, &u.Rol, &u.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// GetByEmail obtiene un usuario por email (se guarda en minúsculas).
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	query := `SELECT id, email, nombre, password_hash, rol, fecha_creacion FROM usuarios WHERE email = lower($1)`
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.Nombre, &u.PasswordHash, &u.Rol, &u.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario por email: %w", err)
	}
	return &u, nil
}

// Create inserta un usuario y asigna el ID generado.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (email, nombre, password_hash, rol, fecha_creacion)
		VALUES (lower($1), $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, u.Email, u.Nombre, u.PasswordHash, u.Rol, u.FechaCreacion).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email ya registrado: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}
