package commands

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
)

// AttachPayloadResult describes the carrier after an attach.
type AttachPayloadResult struct {
	Carrier          string
	State            string
	Payload          kernel.Payload
	Created          bool
	Timestamp        time.Time
	DisplayTimestamp string
}

// CarrierToProcessorResult describes a carrier feeding a process.
type CarrierToProcessorResult struct {
	Source           string
	Destination      string
	Mirror           *string
	ProcessName      string
	State            string
	Timestamp        time.Time
	DisplayTimestamp string
}

// ProcessorToCarrierResult describes a process unloading into a carrier.
type ProcessorToCarrierResult struct {
	Source           string
	Destination      string
	OriginalCarrier  *string
	ProcessName      string
	DurationSeconds  *int64
	State            string
	Provisioned      bool
	Timestamp        time.Time
	DisplayTimestamp string
}

// ClearCarrierResult describes a manually emptied carrier.
type ClearCarrierResult struct {
	Carrier          string
	State            string
	ClearedPayload   kernel.Payload
	Timestamp        time.Time
	DisplayTimestamp string
}

// ProvisionProcessResult names the slot pair that was created.
type ProvisionProcessResult struct {
	ProcessCode string
	InputSlot   string
	OutputSlot  string
}
