package uuidgen

import (
	"github.com/google/uuid"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
)

// Generator implements contract.IUUIDGenerator with random (version 4) UUIDs.
type Generator struct{}

// NewGenerator creates a new UUID generator.
func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

// NewUUID generates a new UUID.
func (g *Generator) NewUUID() string {
	return uuid.NewString()
}

var _ contract.IUUIDGenerator = (*Generator)(nil)
