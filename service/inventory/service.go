package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/elC0mpa/dns-doctor/model"
	svc "github.com/elC0mpa/dns-doctor/service"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/googleapi"
)

func NewService(networkResolver svc.NetworkResolver, zoneLister svc.ZoneLister) *service {
	return &service{
		networkResolver: networkResolver,
		zoneLister:      zoneLister,
	}
}

// ResolveVMContext builds the immutable VM context for the run.
// A VM whose network cannot be determined is fatal: no zone can be
// relevant without it.
func (s *service) ResolveVMContext(ctx context.Context, vmName, project, zone string) (*model.VMContext, error) {
	network, err := s.networkResolver.ResolveNetwork(ctx, project, zone, vmName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrNetworkNotResolved, err)
	}

	return &model.VMContext{
		Name:    vmName,
		Project: project,
		Zone:    zone,
		Network: network,
	}, nil
}

// ScanProjects lists forwarding zones per project, in the order the operator
// supplied them. A project whose listing fails contributes a scan with Err
// set instead of aborting the run.
func (s *service) ScanProjects(ctx context.Context, projects []string) []model.ProjectScan {
	scans := make([]model.ProjectScan, 0, len(projects))

	for _, project := range projects {
		zones, skipped, err := s.zoneLister.ListForwardingZones(ctx, project)
		if err != nil {
			log.WithFields(log.Fields{
				"project": project,
			}).Warnf("skipping project: %v", err)
			scans = append(scans, model.ProjectScan{
				Project: project,
				Err:     errors.New(scanFailureReason(err)),
			})
			continue
		}

		scans = append(scans, model.ProjectScan{
			Project: project,
			Zones:   zones,
			Skipped: skipped,
		})
	}

	return scans
}

// scanFailureReason phrases common listing failures for the report
func scanFailureReason(err error) string {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 403:
			return "permission denied (missing dns.managedZones.list or the Cloud DNS API is disabled)"
		case 404:
			return "project not found"
		}
	}
	return err.Error()
}
