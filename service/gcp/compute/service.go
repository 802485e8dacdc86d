package gcpcompute

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/option"
)

func NewService(ctx context.Context) (*service, error) {
	computeClient, err := compute.NewService(ctx, option.WithScopes(
		compute.ComputeReadonlyScope,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create Compute client: %w", err)
	}

	return &service{
		computeClient: computeClient,
	}, nil
}

// ResolveNetwork implements service.NetworkResolver
// Returns the VPC network name of the instance's first network interface
func (s *service) ResolveNetwork(ctx context.Context, project, zone, instance string) (string, error) {
	vm, err := s.computeClient.Instances.Get(project, zone, instance).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to describe instance %s: %w", instance, err)
	}

	if len(vm.NetworkInterfaces) == 0 {
		return "", fmt.Errorf("instance %s has no network interfaces", instance)
	}

	network := extractResourceName(vm.NetworkInterfaces[0].Network)
	log.WithFields(log.Fields{
		"instance": instance,
		"network":  network,
	}).Debug("resolved vm network")

	return network, nil
}

// extractResourceName extracts the resource name from a GCP resource URL
// e.g., "https://www.googleapis.com/compute/v1/projects/my-project/global/networks/default"
// returns "default"
func extractResourceName(resourceURL string) string {
	// Find the last "/" and return everything after it
	for i := len(resourceURL) - 1; i >= 0; i-- {
		if resourceURL[i] == '/' {
			return resourceURL[i+1:]
		}
	}
	return resourceURL
}
