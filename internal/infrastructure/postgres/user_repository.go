package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/domain"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/domain/entity"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, email, password_hash, first_name, last_name, name, puesto, rol, created_at, updated_at`

// Create persiste un usuario nuevo. El constraint único de email es el árbitro
// real de unicidad: una violación 23505 se mapea a domain.ErrUsuarioYaExiste.
func (r *UserRepo) Create(usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, email, password_hash, first_name, last_name, name, puesto, rol, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		usuario.ID, usuario.Email, usuario.PasswordHash,
		usuario.FirstName, usuario.LastName, usuario.Name, usuario.Puesto, usuario.Rol,
		usuario.CreatedAt, usuario.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsuarioYaExiste
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE id = $1`
	return r.scanOne(query, id, "get usuario by id")
}

// GetByEmail obtiene un usuario por coincidencia exacta de email; (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.Usuario, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE email = $1 LIMIT 1`
	return r.scanOne(query, email, "get usuario by email")
}

// List devuelve todos los usuarios ordenados por fecha de creación.
func (r *UserRepo) List() ([]*entity.Usuario, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
			&u.Name, &u.Puesto, &u.Rol, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func (r *UserRepo) scanOne(query, arg, op string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.Name, &u.Puesto, &u.Rol, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
