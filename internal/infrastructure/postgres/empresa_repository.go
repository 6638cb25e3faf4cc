package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/domain/entity"
	"github.com/Edgar58-tech/honda-optimization-suite-2025-sub001/internal/domain/repository"
)

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementación del puerto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	pool *pgxpool.Pool
}

// NewEmpresaRepository construye el adaptador de persistencia para datos de empresa.
func NewEmpresaRepository(pool *pgxpool.Pool) *EmpresaRepo {
	return &EmpresaRepo{pool: pool}
}

// Create persiste el registro de datos de empresa. La tabla no impone unicidad;
// el seed verifica existencia con First antes de llamar aquí.
func (r *EmpresaRepo) Create(empresa *entity.DatosEmpresa) error {
	query := `
		INSERT INTO datos_empresa (id, nombre_empresa, razon_social, rfc, calle, numero,
			colonia, delegacion, codigo_postal, ciudad, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(context.Background(), query,
		empresa.ID, empresa.NombreEmpresa, empresa.RazonSocial, empresa.RFC,
		empresa.Calle, empresa.Numero, empresa.Colonia, empresa.Delegacion,
		empresa.CodigoPostal, empresa.Ciudad, empresa.Estado,
		empresa.CreatedAt, empresa.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert datos_empresa: %w", err)
	}
	return nil
}

// First devuelve el primer registro de datos de empresa; (nil, nil) si no hay ninguno.
func (r *EmpresaRepo) First() (*entity.DatosEmpresa, error) {
	query := `
		SELECT id, nombre_empresa, razon_social, rfc, calle, numero,
		       colonia, delegacion, codigo_postal, ciudad, estado, created_at, updated_at
		FROM datos_empresa ORDER BY created_at LIMIT 1`
	var e entity.DatosEmpresa
	err := r.pool.QueryRow(context.Background(), query).Scan(
		&e.ID, &e.NombreEmpresa, &e.RazonSocial, &e.RFC,
		&e.Calle, &e.Numero, &e.Colonia, &e.Delegacion,
		&e.CodigoPostal, &e.Ciudad, &e.Estado,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get datos_empresa: %w", err)
	}
	return &e, nil
}
