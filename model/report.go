package model

// BindingClassification tells where a relevant zone is defined and who consumes it
type BindingClassification struct {
	SourceProject string
	TargetProject string
	CrossProject  bool
}

// ClassifiedZone pairs a relevant zone with its classification and the
// binding that matched the VM's network
type ClassifiedZone struct {
	Zone           ForwardingZone
	Classification BindingClassification
	MatchedBinding NetworkBinding
}

// DuplicateDNSName groups the zones sharing one DNS name, in scan order
type DuplicateDNSName struct {
	DNSName   string
	ZoneNames []string
}

// ProjectScan is the outcome of listing one project's forwarding zones.
// Err is set when the listing failed; the project then contributes no zones
// and the run continues.
type ProjectScan struct {
	Project string
	Zones   []ForwardingZone
	Skipped []SkippedZone
	Err     error
}

// SkippedProject notes a project whose zone listing failed
type SkippedProject struct {
	Project string
	Reason  string
}

// Report is the full correlation result handed to the renderer and the
// MCP response converter
type Report struct {
	VM                VMContext
	Zones             []ClassifiedZone
	DuplicateDNSNames []DuplicateDNSName
	MultiTargetZones  []string
	SkippedProjects   []SkippedProject
	SkippedZones      []SkippedZone
	ScannedProjects   int
	TotalRelevant     int
}
