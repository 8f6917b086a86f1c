package readstore

import (
	"context"

	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/domain/lab"
	"lab-reservation/internal/domain/user"
	"lab-reservation/internal/infra"
	"lab-reservation/internal/infra/repository/converter"
	sqlc "lab-reservation/internal/infra/sqlc/generated"
	"lab-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/readstore/mock_catalog.go -package=readstoremock

type CatalogReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetUserByIDRow, error)
	GetLaboratoryByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Laboratory, error)
	GetExperimentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Experiment, error)
	GetDeviceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Device, error)
	IsDeviceLinkedToExperiment(ctx context.Context, db sqlc.DBTX, arg sqlc.IsDeviceLinkedToExperimentParams) (bool, error)
	ListMaintenancesByDevice(ctx context.Context, db sqlc.DBTX, deviceID uuid.UUID) ([]sqlc.Maintenance, error)
}

// CatalogReadStore loads the reference entities an admission decision depends on.
type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{queries: queries, db: db}
}

func (r *CatalogReadStore) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		return nil, lookupErr("user", err)
	}
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode user", err)
	}
	return u, nil
}

func (r *CatalogReadStore) LaboratoryByID(ctx context.Context, id uuid.UUID) (*lab.Laboratory, error) {
	row, err := r.queries.GetLaboratoryByID(ctx, r.db, id)
	if err != nil {
		return nil, lookupErr("laboratory", err)
	}
	l, err := converter.LaboratoryFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode laboratory", err)
	}
	return l, nil
}

func (r *CatalogReadStore) ExperimentByID(ctx context.Context, id uuid.UUID) (*lab.Experiment, error) {
	row, err := r.queries.GetExperimentByID(ctx, r.db, id)
	if err != nil {
		return nil, lookupErr("experiment", err)
	}
	e, err := converter.ExperimentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode experiment", err)
	}
	return e, nil
}

func (r *CatalogReadStore) DeviceByID(ctx context.Context, id uuid.UUID) (*device.Device, error) {
	row, err := r.queries.GetDeviceByID(ctx, r.db, id)
	if err != nil {
		return nil, lookupErr("device", err)
	}
	d, err := converter.DeviceFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode device", err)
	}
	return d, nil
}

func (r *CatalogReadStore) IsDeviceLinked(ctx context.Context, deviceID, experimentID uuid.UUID) (bool, error) {
	ok, err := r.queries.IsDeviceLinkedToExperiment(ctx, r.db, sqlc.IsDeviceLinkedToExperimentParams{
		DeviceID:     deviceID,
		ExperimentID: experimentID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check device link", err)
	}
	return ok, nil
}

func (r *CatalogReadStore) MaintenancesByDevice(ctx context.Context, deviceID uuid.UUID) ([]*device.Maintenance, error) {
	rows, err := r.queries.ListMaintenancesByDevice(ctx, r.db, deviceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list maintenances", err)
	}
	out := make([]*device.Maintenance, 0, len(rows))
	for _, row := range rows {
		m, err := converter.MaintenanceFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode maintenance", err)
		}
		out = append(out, m)
	}
	return out, nil
}

func lookupErr(entity string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(entity+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to find "+entity, err)
}
