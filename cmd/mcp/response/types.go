package response

// VMContext identifies the inspected VM and its resolved VPC network
type VMContext struct {
	Name    string `json:"name"`
	Project string `json:"project"`
	Zone    string `json:"zone"`
	Network string `json:"network"`
}

// ZoneFinding is one relevant forwarding zone with its classification
type ZoneFinding struct {
	ZoneName       string   `json:"zone_name"`
	DNSName        string   `json:"dns_name"`
	SourceProject  string   `json:"source_project"`
	TargetProject  string   `json:"target_project"`
	IsCrossProject bool     `json:"is_cross_project"`
	CrossDirection string   `json:"cross_direction,omitempty"`
	VPCBinding     string   `json:"vpc_binding"`
	TargetIPs      []string `json:"target_ips"`
	HasMultipleIPs bool     `json:"has_multiple_targets"`
}

// DuplicateDNSName groups the zones sharing one DNS name
type DuplicateDNSName struct {
	DNSName   string   `json:"dns_name"`
	ZoneNames []string `json:"zone_names"`
}

// SkippedProject notes a project whose zone listing failed
type SkippedProject struct {
	Project string `json:"project"`
	Reason  string `json:"reason"`
}

// SkippedZone notes a malformed zone record excluded from analysis
type SkippedZone struct {
	Project string `json:"project"`
	Name    string `json:"name,omitempty"`
	Reason  string `json:"reason"`
}

// Report is the complete inspection result
type Report struct {
	VM                VMContext          `json:"vm"`
	Zones             []ZoneFinding      `json:"zones"`
	DuplicateDNSNames []DuplicateDNSName `json:"duplicate_dns_names"`
	MultiTargetZones  []string           `json:"multi_target_zones"`
	SkippedProjects   []SkippedProject   `json:"skipped_projects"`
	SkippedZones      []SkippedZone      `json:"skipped_zones"`
	ScannedProjects   int                `json:"scanned_projects"`
	TotalRelevant     int                `json:"total_relevant_zones"`
	CrossProjectCount int                `json:"cross_project_count"`
}

// ForwardingZone is one raw zone record, before relevance filtering
type ForwardingZone struct {
	Name          string   `json:"name"`
	DNSName       string   `json:"dns_name"`
	OwningProject string   `json:"owning_project"`
	Networks      []string `json:"bound_networks"`
	TargetIPs     []string `json:"target_ips"`
}

// ZoneListing is the result of listing one project's forwarding zones
type ZoneListing struct {
	Project string           `json:"project"`
	Zones   []ForwardingZone `json:"zones"`
	Skipped []SkippedZone    `json:"skipped_zones,omitempty"`
}

// NetworkResolution is the result of resolving a VM's VPC network
type NetworkResolution struct {
	VM      string `json:"vm"`
	Project string `json:"project"`
	Zone    string `json:"zone"`
	Network string `json:"network"`
}
