package kernel

import (
	"fmt"
	"strings"
	"time"

	"tracking/internal/pkg/errs"
)

const (
	// PayloadDateLayout is the accepted format of the order and grey-receive dates.
	PayloadDateLayout = "2006-01-02"

	// MaxPayloadFieldLength bounds each free-text field.
	MaxPayloadFieldLength = 255
)

// Payload is the set of job attributes moved between carriers and slots. It is
// copied as a whole and cleared as a whole; an entity either holds a Payload or
// holds none.
type Payload struct {
	CustomerName     string
	LotNumber        string
	DesignName       string
	DesignNumber     string
	GreyWidth        string
	FinishWidth      string
	FabricQuality    string
	Quantity         string
	Meters           string
	Matching         string
	OrderReceiveDate string
	GreyReceiveDate  string
	Remarks          string
	PackInstructions string
}

// Normalized returns a copy with surrounding whitespace removed from every field.
func (p Payload) Normalized() Payload {
	return Payload{
		CustomerName:     strings.TrimSpace(p.CustomerName),
		LotNumber:        strings.TrimSpace(p.LotNumber),
		DesignName:       strings.TrimSpace(p.DesignName),
		DesignNumber:     strings.TrimSpace(p.DesignNumber),
		GreyWidth:        strings.TrimSpace(p.GreyWidth),
		FinishWidth:      strings.TrimSpace(p.FinishWidth),
		FabricQuality:    strings.TrimSpace(p.FabricQuality),
		Quantity:         strings.TrimSpace(p.Quantity),
		Meters:           strings.TrimSpace(p.Meters),
		Matching:         strings.TrimSpace(p.Matching),
		OrderReceiveDate: strings.TrimSpace(p.OrderReceiveDate),
		GreyReceiveDate:  strings.TrimSpace(p.GreyReceiveDate),
		Remarks:          strings.TrimSpace(p.Remarks),
		PackInstructions: strings.TrimSpace(p.PackInstructions),
	}
}

// IsEmpty reports whether every field is blank.
func (p Payload) IsEmpty() bool {
	return p == Payload{}
}

// IsEqual compares all fields.
func (p Payload) IsEqual(other Payload) bool {
	return p == other
}

// Validate checks an operator-supplied payload: at least one field set, each
// field within MaxPayloadFieldLength, dates in PayloadDateLayout.
func (p Payload) Validate() error {
	if p.IsEmpty() {
		return errs.NewValueIsRequiredError("payload")
	}

	for name, value := range p.fields() {
		if len(value) > MaxPayloadFieldLength {
			return errs.NewValueIsOutOfRangeError(name+" length", len(value), 0, MaxPayloadFieldLength)
		}
	}

	if err := validateDate("orderReceiveDate", p.OrderReceiveDate); err != nil {
		return err
	}
	return validateDate("greyReceiveDate", p.GreyReceiveDate)
}

func (p Payload) fields() map[string]string {
	return map[string]string{
		"customerName":     p.CustomerName,
		"lotNumber":        p.LotNumber,
		"designName":       p.DesignName,
		"designNumber":     p.DesignNumber,
		"greyWidth":        p.GreyWidth,
		"finishWidth":      p.FinishWidth,
		"fabricQuality":    p.FabricQuality,
		"quantity":         p.Quantity,
		"meters":           p.Meters,
		"matching":         p.Matching,
		"orderReceiveDate": p.OrderReceiveDate,
		"greyReceiveDate":  p.GreyReceiveDate,
		"remarks":          p.Remarks,
		"packInstructions": p.PackInstructions,
	}
}

func validateDate(name, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(PayloadDateLayout, value); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%q is not a %s date", value, PayloadDateLayout))
	}
	return nil
}
