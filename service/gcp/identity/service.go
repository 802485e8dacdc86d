package gcpidentity

import (
	"context"

	"github.com/elC0mpa/dns-doctor/model"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/option"
)

func NewService(ctx context.Context, projectID string) (*service, error) {
	client, err := cloudresourcemanager.NewService(ctx, option.WithScopes(
		cloudresourcemanager.CloudPlatformReadOnlyScope,
	))
	if err != nil {
		return nil, err
	}

	return &service{
		projectID: projectID,
		client:    client,
	}, nil
}

// GetProjectIdentity implements service.IdentityService
// Best effort: callers degrade to an ID-only report header on failure
func (s *service) GetProjectIdentity(ctx context.Context) (*model.ProjectIdentity, error) {
	project, err := s.client.Projects.Get(s.projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return &model.ProjectIdentity{
		ProjectID:      s.projectID,
		DisplayName:    project.Name,
		LifecycleState: project.LifecycleState,
	}, nil
}
