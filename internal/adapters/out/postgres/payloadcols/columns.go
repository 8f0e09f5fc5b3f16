// Package payloadcols maps kernel.Payload onto the nullable payload columns
// shared by the carriers, process_slots and history_events tables.
package payloadcols

import "tracking/internal/core/domain/model/kernel"

// Columns is embedded into each table DTO. A row without a payload stores NULL
// in every column; a row with one stores all fourteen, blank fields as ''.
type Columns struct {
	CustomerName     *string `gorm:"type:varchar(255)"`
	LotNumber        *string `gorm:"type:varchar(255)"`
	DesignName       *string `gorm:"type:varchar(255)"`
	DesignNumber     *string `gorm:"type:varchar(255)"`
	GreyWidth        *string `gorm:"type:varchar(255)"`
	FinishWidth      *string `gorm:"type:varchar(255)"`
	FabricQuality    *string `gorm:"type:varchar(255)"`
	Quantity         *string `gorm:"type:varchar(255)"`
	Meters           *string `gorm:"type:varchar(255)"`
	Matching         *string `gorm:"type:varchar(255)"`
	OrderReceiveDate *string `gorm:"type:varchar(10)"`
	GreyReceiveDate  *string `gorm:"type:varchar(10)"`
	Remarks          *string `gorm:"type:text"`
	PackInstructions *string `gorm:"type:text"`
}

// FromDomain returns all-NULL columns for a nil payload.
func FromDomain(p *kernel.Payload) Columns {
	if p == nil {
		return Columns{}
	}
	v := *p
	return Columns{
		CustomerName:     &v.CustomerName,
		LotNumber:        &v.LotNumber,
		DesignName:       &v.DesignName,
		DesignNumber:     &v.DesignNumber,
		GreyWidth:        &v.GreyWidth,
		FinishWidth:      &v.FinishWidth,
		FabricQuality:    &v.FabricQuality,
		Quantity:         &v.Quantity,
		Meters:           &v.Meters,
		Matching:         &v.Matching,
		OrderReceiveDate: &v.OrderReceiveDate,
		GreyReceiveDate:  &v.GreyReceiveDate,
		Remarks:          &v.Remarks,
		PackInstructions: &v.PackInstructions,
	}
}

// ToDomain returns nil when every column is NULL.
func (c Columns) ToDomain() *kernel.Payload {
	if c == (Columns{}) {
		return nil
	}
	return &kernel.Payload{
		CustomerName:     deref(c.CustomerName),
		LotNumber:        deref(c.LotNumber),
		DesignName:       deref(c.DesignName),
		DesignNumber:     deref(c.DesignNumber),
		GreyWidth:        deref(c.GreyWidth),
		FinishWidth:      deref(c.FinishWidth),
		FabricQuality:    deref(c.FabricQuality),
		Quantity:         deref(c.Quantity),
		Meters:           deref(c.Meters),
		Matching:         deref(c.Matching),
		OrderReceiveDate: deref(c.OrderReceiveDate),
		GreyReceiveDate:  deref(c.GreyReceiveDate),
		Remarks:          deref(c.Remarks),
		PackInstructions: deref(c.PackInstructions),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
