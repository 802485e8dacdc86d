package gcpidentity

import (
	"context"

	"github.com/elC0mpa/dns-doctor/model"
	"google.golang.org/api/cloudresourcemanager/v1"
)

type service struct {
	projectID string
	client    *cloudresourcemanager.Service
}

type IdentityService interface {
	GetProjectIdentity(ctx context.Context) (*model.ProjectIdentity, error)
}
