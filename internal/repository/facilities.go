package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/qrsafety/sds-pipeline/gen/ent"
	"github.com/qrsafety/sds-pipeline/gen/ent/facility"
)

type Facility struct {
	Name         string
	ContactEmail string
	Address      string
}

type FacilityRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Facility, error)
	CreateFacility(ctx context.Context, f *Facility) (*ent.Facility, error)
	GetOrCreateByName(ctx context.Context, name string) (*ent.Facility, error)
	ListFacilities(ctx context.Context) ([]*ent.Facility, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type facilityRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewFacilityRepository(client *ent.Client, logger *slog.Logger) FacilityRepository {
	return &facilityRepository{
		client: client,
		logger: logger,
	}
}

func (r *facilityRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Facility, error) {
	return r.client.Facility.
		Query().
		Where(facility.ID(id)).
		Only(ctx)
}

func (r *facilityRepository) CreateFacility(ctx context.Context, f *Facility) (*ent.Facility, error) {
	builder := r.client.Facility.Create().SetName(f.Name)
	if f.ContactEmail != "" {
		builder = builder.SetContactEmail(f.ContactEmail)
	}
	if f.Address != "" {
		builder = builder.SetAddress(f.Address)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create facility", "name", f.Name, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *facilityRepository) GetOrCreateByName(ctx context.Context, name string) (*ent.Facility, error) {
	row, err := r.client.Facility.Query().Where(facility.Name(name)).First(ctx)
	if err == nil {
		return row, nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up facility", "name", name, "error", err)
		return nil, err
	}
	return r.CreateFacility(ctx, &Facility{Name: name})
}

func (r *facilityRepository) ListFacilities(ctx context.Context) ([]*ent.Facility, error) {
	flist, err := r.client.Facility.Query().Order(facility.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list facilities", "error", err)
		return nil, err
	}
	return flist, nil
}

func (r *facilityRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.Facility.Query().Where(facility.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check facility existence", "facility_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
