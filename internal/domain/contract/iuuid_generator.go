package contract

// IUUIDGenerator produces random identifiers.
type IUUIDGenerator interface {
	NewUUID() string
}
