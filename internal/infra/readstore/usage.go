package readstore

import (
	"context"

	"lab-reservation/internal/domain/lab"
	sqlc "lab-reservation/internal/infra/sqlc/generated"
	"lab-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type UsageReadQueries interface {
	GetLaboratoryByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Laboratory, error)
	GetDeviceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Device, error)
}

type UsageReadStore struct {
	queries UsageReadQueries
	db      sqlc.DBTX
}

func NewUsageReadStore(queries UsageReadQueries, db sqlc.DBTX) *UsageReadStore {
	return &UsageReadStore{queries: queries, db: db}
}

func (r *UsageReadStore) LaboratoryUsage(ctx context.Context, labID uuid.UUID) (*queries.LaboratoryUsageView, error) {
	row, err := r.queries.GetLaboratoryByID(ctx, r.db, labID)
	if err != nil {
		return nil, lookupErr("laboratory", err)
	}
	return &queries.LaboratoryUsageView{
		ID:             row.ID,
		Name:           row.Name,
		Category:       row.Category,
		Status:         row.Status,
		UsageHours:     lab.MinutesToHours(row.UsageMinutes),
		OperatingHours: lab.MinutesToHours(row.OperatingMinutes),
	}, nil
}

func (r *UsageReadStore) DeviceUsage(ctx context.Context, deviceID uuid.UUID) (*queries.DeviceUsageView, error) {
	row, err := r.queries.GetDeviceByID(ctx, r.db, deviceID)
	if err != nil {
		return nil, lookupErr("device", err)
	}
	return &queries.DeviceUsageView{
		ID:           row.ID,
		Name:         row.Name,
		Category:     row.Category,
		Status:       row.Status,
		CurrentHours: lab.MinutesToHours(row.CurrentMinutes),
		TotalHours:   lab.MinutesToHours(row.TotalMinutes),
	}, nil
}
