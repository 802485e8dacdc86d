package inventory

import (
	"context"

	"github.com/elC0mpa/dns-doctor/model"
	svc "github.com/elC0mpa/dns-doctor/service"
)

type service struct {
	networkResolver svc.NetworkResolver
	zoneLister      svc.ZoneLister
}

type InventoryService interface {
	ResolveVMContext(ctx context.Context, vmName, project, zone string) (*model.VMContext, error)
	ScanProjects(ctx context.Context, projects []string) []model.ProjectScan
}
