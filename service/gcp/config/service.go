package gcpconfig

import (
	"context"
	"fmt"

	"github.com/elC0mpa/dns-doctor/model"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/dns/v1"
)

func NewService() *service {
	return &service{}
}

// GetCredentials runs the ADC preflight with the read-only scopes the run
// needs, so a missing-credentials failure is reported once up front instead
// of as one lookup failure per project.
func (s *service) GetCredentials(ctx context.Context) (*google.Credentials, error) {
	// Use Application Default Credentials
	// This supports:
	// - GOOGLE_APPLICATION_CREDENTIALS environment variable
	// - gcloud auth application-default login
	// - Service account on GCE/Cloud Run/Cloud Functions
	creds, err := google.FindDefaultCredentials(ctx,
		compute.ComputeReadonlyScope,
		dns.NdevClouddnsReadonlyScope,
		cloudresourcemanager.CloudPlatformReadOnlyScope,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrNoCredentials, err)
	}

	return creds, nil
}
