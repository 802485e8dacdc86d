package orchestrator

import (
	"context"

	"github.com/elC0mpa/dns-doctor/model"
	svc "github.com/elC0mpa/dns-doctor/service"
	"github.com/elC0mpa/dns-doctor/service/correlator"
	"github.com/elC0mpa/dns-doctor/service/inventory"
	"github.com/elC0mpa/dns-doctor/utils"
	log "github.com/sirupsen/logrus"
)

// resolutionSampler may be nil when no query-log dataset was configured
func NewService(
	inventoryService inventory.InventoryService,
	correlatorService correlator.CorrelatorService,
	identityService svc.IdentityService,
	resolutionSampler svc.ResolutionSampler,
) *service {
	return &service{
		inventoryService:  inventoryService,
		correlatorService: correlatorService,
		identityService:   identityService,
		resolutionSampler: resolutionSampler,
	}
}

func (s *service) Orchestrate(flags model.Flags) error {
	ctx := context.Background()

	vm, err := s.inventoryService.ResolveVMContext(ctx, flags.VMName, flags.Project, flags.Zone)
	if err != nil {
		return err
	}

	projects := append([]string{flags.Project}, flags.ExtraProjects...)
	scans := s.inventoryService.ScanProjects(ctx, projects)

	report, err := s.correlatorService.BuildReport(*vm, scans, flags.Project)
	if err != nil {
		return err
	}

	identity, err := s.identityService.GetProjectIdentity(ctx)
	if err != nil {
		// Header falls back to the project ID alone
		log.WithFields(log.Fields{
			"project": flags.Project,
		}).Warnf("could not fetch project identity: %v", err)
		identity = nil
	}

	utils.StopSpinner()

	utils.DrawReport(report, identity)

	if s.resolutionSampler != nil && len(report.Zones) > 0 {
		stats, err := s.resolutionSampler.SampleResolutions(ctx, *vm, zoneSuffixes(report))
		if err != nil {
			log.Warnf("could not sample query logs: %v", err)
			return nil
		}
		utils.DrawResolutionStats(stats)
	}

	return nil
}

// zoneSuffixes collects the DNS suffixes of the relevant zones, without the
// trailing dot the zone records carry (query logs store bare names)
func zoneSuffixes(report *model.Report) []string {
	suffixes := make([]string, 0, len(report.Zones))
	for _, classified := range report.Zones {
		suffix := classified.Zone.DNSName
		if len(suffix) > 0 && suffix[len(suffix)-1] == '.' {
			suffix = suffix[:len(suffix)-1]
		}
		suffixes = append(suffixes, suffix)
	}
	return suffixes
}
