package model

// NetworkBinding is one network a forwarding zone is attached to.
// The project is taken from the network URL when the URL carries one.
type NetworkBinding struct {
	Network string
	Project string
	URL     string
}

// ForwardingZone represents a Cloud DNS private forwarding zone
type ForwardingZone struct {
	Name          string
	DNSName       string
	OwningProject string
	Bindings      []NetworkBinding
	TargetIPs     []string
}

// SkippedZone records a zone that was excluded from analysis (malformed record)
type SkippedZone struct {
	Project string
	Name    string
	Reason  string
}
