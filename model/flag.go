package model

type Flags struct {
	// VM under inspection
	VMName  string
	Project string
	Zone    string

	// Additional projects to scan for forwarding zones
	ExtraProjects []string

	// BigQuery dataset holding the Cloud DNS query-log export (optional)
	LogDataset string

	Debug bool
}
