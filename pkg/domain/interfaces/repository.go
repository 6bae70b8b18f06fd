package interfaces

// Repository defines the interface for data persistence. State is held per
// session; Close releases whatever the backend allocated.
type Repository interface {
	Vendor() VendorRepository
	Close() error
}
