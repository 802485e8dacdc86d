package service

import (
	"context"

	"github.com/elC0mpa/dns-doctor/model"
)

// NetworkResolver resolves the VPC network a VM's first interface is attached to
type NetworkResolver interface {
	ResolveNetwork(ctx context.Context, project, zone, instance string) (string, error)
}

// ZoneLister enumerates the private forwarding zones defined in one project.
// Malformed zone records come back as skipped entries, not errors.
type ZoneLister interface {
	ListForwardingZones(ctx context.Context, project string) ([]model.ForwardingZone, []model.SkippedZone, error)
}

// IdentityService provides project identity information for the report header
type IdentityService interface {
	GetProjectIdentity(ctx context.Context) (*model.ProjectIdentity, error)
}

// ResolutionSampler aggregates resolution outcomes for the VM from a
// Cloud DNS query-log export
type ResolutionSampler interface {
	SampleResolutions(ctx context.Context, vm model.VMContext, suffixes []string) (*model.ResolutionStats, error)
}
