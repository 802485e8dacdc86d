package gcpcompute

import (
	"context"

	"google.golang.org/api/compute/v1"
)

type service struct {
	computeClient *compute.Service
}

type ComputeService interface {
	ResolveNetwork(ctx context.Context, project, zone, instance string) (string, error)
}
