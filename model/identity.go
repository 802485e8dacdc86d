package model

// ProjectIdentity carries the primary project's display metadata,
// used only for the report header
type ProjectIdentity struct {
	ProjectID      string
	DisplayName    string
	LifecycleState string
}
