package model

// PlatformCustomer is keyed by email. Value is stored in minor units (cents);
// nil means the value is unknown.
type PlatformCustomer struct {
	Email string
	Name  *string
	Value *int64
}

// IsVIP reports whether the customer's value reaches a whole-unit threshold.
func (p PlatformCustomer) IsVIP(vipThreshold *int64) bool {
	if p.Value == nil || vipThreshold == nil {
		return false
	}
	return *p.Value >= *vipThreshold*100
}
