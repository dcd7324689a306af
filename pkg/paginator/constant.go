package paginator

const (
	// DefaultLimit is the number of items per page when no valid limit is provided.
	DefaultLimit = 25
	// MaxLimit is the maximum number of items per page to prevent excessive queries.
	MaxLimit = 100
)
