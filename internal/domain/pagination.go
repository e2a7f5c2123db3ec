package domain

// List limits applied when a caller omits or exceeds them.
const (
	DefaultListLimit = 100
	MaxListLimit     = 100
)

// PaginationParams holds offset/limit pagination parameters for list queries.
type PaginationParams struct {
	Offset int
	Limit  int
}
