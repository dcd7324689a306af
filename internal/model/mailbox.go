package model

// Mailbox holds per-deployment settings that influence search.
type Mailbox struct {
	ID   int64
	Slug string
	Name string

	// VIPThreshold is in whole currency units; nil disables VIP filtering.
	VIPThreshold *int64
	// MetadataEnabled is true when a customer-value metadata source is configured.
	MetadataEnabled bool
}
