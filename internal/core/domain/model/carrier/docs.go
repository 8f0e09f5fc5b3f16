// Package carrier models the mobile job carriers (trolleys) that move payloads
// between process stations.
//
// A carrier is either EMPTY, holding no payload, or FULL, holding exactly one
// complete payload:
//
//	EMPTY ──Attach──> FULL ──Release──> EMPTY
//	            FULL ──Attach──> FULL (payload fully replaced)
//
// Carriers are created on first attach or when a process output is unloaded into
// an unknown barcode. They are never deleted, only reset to EMPTY.
package carrier
