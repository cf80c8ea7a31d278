package readrepo

import (
	"context"

	"rentride/internal/infra"
	"rentride/internal/pkg/pgconv"
	"rentride/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const getVehicleByIDQuery = `
SELECT id, name, city, is_active, created_at, updated_at
FROM vehicles
WHERE id = $1
`

type VehicleViewRepository struct {
	db *pgxpool.Pool
}

func NewVehicleViewRepository(db *pgxpool.Pool) *VehicleViewRepository {
	return &VehicleViewRepository{db: db}
}

func (r *VehicleViewRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.VehicleView, error) {
	var rm queries.VehicleView
	err := r.db.QueryRow(ctx, getVehicleByIDQuery, id).Scan(
		&rm.ID,
		&rm.Name,
		&rm.City,
		&rm.IsActive,
		&rm.CreatedAt,
		&rm.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}

	return &rm, nil
}
