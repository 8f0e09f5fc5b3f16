package http

import (
	"strings"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/generated/servers"
)

// toPayload folds the legacy aliases into the canonical fields. A canonical
// field wins when both are sent.
func toPayload(body servers.AttachPayloadRequest) kernel.Payload {
	return kernel.Payload{
		CustomerName:     value(body.CustomerName),
		LotNumber:        firstOf(body.LotNumber, body.GreigeSort),
		DesignName:       value(body.DesignName),
		DesignNumber:     value(body.DesignNumber),
		GreyWidth:        value(body.GreyWidth),
		FinishWidth:      value(body.FinishWidth),
		FabricQuality:    firstOf(body.FabricQuality, body.Quality),
		Quantity:         firstOf(body.TotalCarrier, body.Quantity),
		Meters:           value(body.Meters),
		Matching:         firstOf(body.Matching, body.Color),
		OrderReceiveDate: value(body.OrderReceiveDate),
		GreyReceiveDate:  value(body.GreyReceiveDate),
		Remarks:          value(body.Remarks),
		PackInstructions: value(body.PackInstructions),
	}
}

func fromPayload(p kernel.Payload) servers.Payload {
	return servers.Payload{
		CustomerName:     &p.CustomerName,
		LotNumber:        &p.LotNumber,
		DesignName:       &p.DesignName,
		DesignNumber:     &p.DesignNumber,
		GreyWidth:        &p.GreyWidth,
		FinishWidth:      &p.FinishWidth,
		FabricQuality:    &p.FabricQuality,
		TotalCarrier:     &p.Quantity,
		Meters:           &p.Meters,
		Matching:         &p.Matching,
		OrderReceiveDate: &p.OrderReceiveDate,
		GreyReceiveDate:  &p.GreyReceiveDate,
		Remarks:          &p.Remarks,
		PackInstructions: &p.PackInstructions,
	}
}

func fromPayloadPtr(p *kernel.Payload) *servers.Payload {
	if p == nil {
		return nil
	}
	out := fromPayload(*p)
	return &out
}

func fromCarrierView(v *queries.CarrierView) *servers.Carrier {
	if v == nil {
		return nil
	}
	return &servers.Carrier{
		Barcode:           v.Barcode,
		State:             v.State,
		Payload:           fromPayloadPtr(v.Payload),
		AttachedAt:        v.AttachedAt,
		DisplayAttachedAt: v.DisplayAttachedAt,
	}
}

func fromSlotView(v *queries.SlotView) *servers.ProcessSlot {
	if v == nil {
		return nil
	}
	return &servers.ProcessSlot{
		Barcode:                 v.Barcode,
		ProcessType:             v.ProcessType,
		PairedBarcode:           v.PairedBarcode,
		State:                   v.State,
		ProcessName:             v.ProcessName,
		SourceCarrier:           v.SourceCarrier,
		Payload:                 fromPayloadPtr(v.Payload),
		ProcessStartTime:        v.ProcessStartTime,
		DisplayProcessStartTime: v.DisplayProcessStartTime,
		ProcessEndTime:          v.ProcessEndTime,
		DisplayProcessEndTime:   v.DisplayProcessEndTime,
		AttachedAt:              v.AttachedAt,
		DisplayAttachedAt:       v.DisplayAttachedAt,
	}
}

func fromHistory(entries []queries.HistoryEntry) []servers.HistoryEvent {
	events := make([]servers.HistoryEvent, len(entries))
	for i, e := range entries {
		events[i] = servers.HistoryEvent{
			Id:                      e.ID,
			EventType:               e.EventType,
			ProcessCode:             e.ProcessCode,
			ProcessName:             e.ProcessName,
			Payload:                 fromPayloadPtr(e.Payload),
			CarrierBarcode:          e.CarrierBarcode,
			SlotBarcode:             e.SlotBarcode,
			FromBarcode:             e.FromBarcode,
			ToBarcode:               e.ToBarcode,
			InputCarrier:            e.InputCarrier,
			OutputCarrier:           e.OutputCarrier,
			InputSlot:               e.InputSlot,
			OutputSlot:              e.OutputSlot,
			ProcessStartTime:        e.ProcessStartTime,
			DisplayProcessStartTime: e.DisplayProcessStartTime,
			ProcessEndTime:          e.ProcessEndTime,
			DisplayProcessEndTime:   e.DisplayProcessEndTime,
			DurationSeconds:         e.DurationSeconds,
			DisplayDuration:         e.DisplayDuration,
			Status:                  e.Status,
			CreatedAt:               e.CreatedAt,
			DisplayCreatedAt:        e.DisplayCreatedAt,
		}
	}
	return events
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstOf(canonical, alias *string) string {
	if v := strings.TrimSpace(value(canonical)); v != "" {
		return v
	}
	return value(alias)
}
