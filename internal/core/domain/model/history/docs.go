// Package history models the append-only audit trail of carrier and slot
// transitions.
//
// Each Event is built by one constructor per transition kind and carries a full
// copy of the payload as it was at that moment, so the trail stays readable after
// the carrier and slot rows have been overwritten. A barcode can appear in up to
// eight reference roles; see References.
package history
