package slotrepo

import (
	"context"
	"errors"
	"slices"

	"tracking/internal/adapters/out/postgres/pgerr"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/slot"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProcessSlotRepository implements ports.ProcessSlotRepository using GORM.
type GormProcessSlotRepository struct {
	db *gorm.DB
}

func NewGormProcessSlotRepository(db *gorm.DB) *GormProcessSlotRepository {
	return &GormProcessSlotRepository{db: db}
}

// Add inserts a new slot row.
func (r *GormProcessSlotRepository) Add(ctx context.Context, aggregate *slot.ProcessSlot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}

// Update overwrites every column of an existing slot, NULLs included.
func (r *GormProcessSlotRepository) Update(ctx context.Context, aggregate *slot.ProcessSlot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProcessSlotDTO{}).
		Where("barcode = ?", dto.Barcode).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("process slot", dto.Barcode)
	}
	return nil
}

// Get retrieves a slot by barcode.
func (r *GormProcessSlotRepository) Get(ctx context.Context, barcode kernel.Barcode) (*slot.ProcessSlot, error) {
	if err := barcode.Validate(); err != nil {
		return nil, err
	}

	var dto ProcessSlotDTO
	if err := r.db.WithContext(ctx).First(&dto, "barcode = ?", barcode.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("process slot", barcode.String())
		}
		return nil, pgerr.Translate(err)
	}

	return toDomain(dto)
}

// GetForUpdate locks the existing slots among barcodes in one statement. Rows are
// locked in barcode order.
func (r *GormProcessSlotRepository) GetForUpdate(
	ctx context.Context,
	barcodes ...kernel.Barcode,
) ([]*slot.ProcessSlot, error) {
	codes := make([]string, 0, len(barcodes))
	for _, b := range barcodes {
		if err := b.Validate(); err != nil {
			return nil, err
		}
		codes = append(codes, b.String())
	}
	slices.Sort(codes)
	codes = slices.Compact(codes)
	if len(codes) == 0 {
		return nil, nil
	}

	var dtos []ProcessSlotDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("barcode IN ?", codes).
		Order("barcode").
		Find(&dtos).Error; err != nil {
		return nil, pgerr.Translate(err)
	}

	slots := make([]*slot.ProcessSlot, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, nil
}
