package carrierrepo

import (
	"context"
	"errors"

	"tracking/internal/adapters/out/postgres/pgerr"
	"tracking/internal/core/domain/model/carrier"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCarrierRepository implements ports.CarrierRepository using GORM.
type GormCarrierRepository struct {
	db *gorm.DB
}

// NewGormCarrierRepository creates a repository bound to db, which is either the
// pool or an open transaction.
func NewGormCarrierRepository(db *gorm.DB) *GormCarrierRepository {
	return &GormCarrierRepository{db: db}
}

// Add inserts a new carrier row.
func (r *GormCarrierRepository) Add(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}

// Update overwrites every column of an existing carrier, NULLs included.
func (r *GormCarrierRepository) Update(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CarrierDTO{}).
		Where("barcode = ?", dto.Barcode).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("carrier", dto.Barcode)
	}
	return nil
}

// Get retrieves a carrier by barcode.
func (r *GormCarrierRepository) Get(ctx context.Context, barcode kernel.Barcode) (*carrier.Carrier, error) {
	return r.get(r.db.WithContext(ctx), barcode)
}

// GetForUpdate retrieves a carrier with SELECT ... FOR UPDATE.
func (r *GormCarrierRepository) GetForUpdate(ctx context.Context, barcode kernel.Barcode) (*carrier.Carrier, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), barcode)
}

func (r *GormCarrierRepository) get(db *gorm.DB, barcode kernel.Barcode) (*carrier.Carrier, error) {
	if err := barcode.Validate(); err != nil {
		return nil, err
	}

	var dto CarrierDTO
	if err := db.First(&dto, "barcode = ?", barcode.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier", barcode.String())
		}
		return nil, pgerr.Translate(err)
	}

	return toDomain(dto)
}
