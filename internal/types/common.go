package types

// HTTP Header Constants
const (
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"
	HeaderUserOwner   = "X-User-Owner"
)

// Owner tables for polymorphic contacts, addresses and gallery items.
const (
	TableFactories = "Factories"
	TableCustomers = "Customers"
)

// DefaultUserOwner is recorded when a request names no owner.
const DefaultUserOwner = "system"

// Placeholder stored for optional text columns left blank.
const Placeholder = "---"
