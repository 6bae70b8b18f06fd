package memory

import (
	"github.com/qa-lab/vendorscope/pkg/domain/interfaces"
)

// Memory is the session-scoped in-memory repository. It is constructed at
// startup and discarded when the process exits; nothing is persisted.
type Memory struct {
	vendor *vendorRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		vendor: newVendorRepository(),
	}
}

func (m *Memory) Vendor() interfaces.VendorRepository {
	return m.vendor
}

// Close implements interfaces.Repository. Nothing to release for the
// in-memory backend.
func (m *Memory) Close() error {
	return nil
}
