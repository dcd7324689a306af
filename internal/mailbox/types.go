package mailbox

// SearchSettings - per-mailbox values read by conversation search
type SearchSettings struct {
	// VIPThreshold is in whole currency units; nil disables VIP filtering.
	VIPThreshold    *int64 `json:"vip_threshold"`
	MetadataEnabled bool   `json:"metadata_enabled"`
}
