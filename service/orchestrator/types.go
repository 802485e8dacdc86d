package orchestrator

import (
	"github.com/elC0mpa/dns-doctor/model"
	svc "github.com/elC0mpa/dns-doctor/service"
	"github.com/elC0mpa/dns-doctor/service/correlator"
	"github.com/elC0mpa/dns-doctor/service/inventory"
)

type service struct {
	inventoryService  inventory.InventoryService
	correlatorService correlator.CorrelatorService
	identityService   svc.IdentityService
	resolutionSampler svc.ResolutionSampler
}

type OrchestratorService interface {
	Orchestrate(flags model.Flags) error
}
