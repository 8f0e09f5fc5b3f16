// Package services provides domain services that coordinate a transition across
// more than one aggregate of the tracking model.
//
// The package includes:
//   - ProcessFlow: moves a payload from a carrier into a paired slot set and
//     back out into a carrier, producing the history event for each move
//
// Domain services never touch storage. Callers load the aggregates, hand them
// to the service and persist whatever it mutated.
package services
