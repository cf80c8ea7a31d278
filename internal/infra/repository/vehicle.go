package repository

import (
	"context"

	"rentride/internal/infra"
	"rentride/internal/pkg/pgconv"
	"rentride/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const findVehicleByIDQuery = `
SELECT id, name, city, is_active
FROM vehicles
WHERE id = $1
`

type VehicleRepository struct {
	db *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.VehicleSnapshot, error) {
	var rm commands.VehicleSnapshot
	err := r.db.QueryRow(ctx, findVehicleByIDQuery, id).Scan(
		&rm.ID,
		&rm.Name,
		&rm.City,
		&rm.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}

	return &rm, nil
}
