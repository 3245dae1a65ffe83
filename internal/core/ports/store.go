package ports

import "go.trai.ch/lithos/internal/core/domain"

// StateStore is the boundary to the reactive build state store.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StateStore interface {
	// Dispatch delivers one action to the store.
	Dispatch(action domain.Action)
}
