// Package slot models the fixed input and output docks of a processing station.
//
// Slots come in pairs: the INPUT slot receives a payload from a carrier and its
// paired OUTPUT slot mirrors the same payload while the process runs. Completion
// resets both to EMPTY and stamps processEndTime, which is what the rest of the
// system reports as COMPLETED:
//
//	EMPTY ──Load / Mirror──> IN_PROCESS ──Complete / Reset──> EMPTY (+ processEndTime)
package slot
