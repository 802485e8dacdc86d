package correlator

import (
	"fmt"

	"github.com/elC0mpa/dns-doctor/model"
)

func NewService() *service {
	return &service{}
}

// DedupZones drops later duplicates of the same (owning project, zone name)
// pair. The first occurrence in scan order wins.
func (s *service) DedupZones(zones []model.ForwardingZone) []model.ForwardingZone {
	seen := make(map[string]struct{}, len(zones))
	result := make([]model.ForwardingZone, 0, len(zones))

	for _, zone := range zones {
		key := zone.OwningProject + "/" + zone.Name
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, zone)
	}

	return result
}

// SelectRelevant keeps the zones bound to the VM's network, preserving scan
// order. Zones with no bindings never match; that is the normal case for
// most zones in a project, not an error.
func (s *service) SelectRelevant(zones []model.ForwardingZone, vm model.VMContext) []model.ForwardingZone {
	result := make([]model.ForwardingZone, 0, len(zones))

	for _, zone := range zones {
		if _, ok := matchingBinding(zone, vm.Network); ok {
			result = append(result, zone)
		}
	}

	return result
}

// Classify resolves the source and target projects of a relevant zone.
// The source is always the project defining the zone. The target is always
// the primary project: the VM's network belongs to the primary project's
// resource set, whether the zone was found there or in an extra project.
func (s *service) Classify(zone model.ForwardingZone, vm model.VMContext, primaryProject string) model.BindingClassification {
	return model.BindingClassification{
		SourceProject: zone.OwningProject,
		TargetProject: primaryProject,
		CrossProject:  zone.OwningProject != primaryProject,
	}
}

// DetectDuplicateDNSNames groups relevant zones sharing a DNS name and keeps
// the groups with two or more zones. The match is an exact string compare,
// trailing dot included: a missing or extra dot is itself a misconfiguration
// signal worth surfacing.
func (s *service) DetectDuplicateDNSNames(relevant []model.ForwardingZone) []model.DuplicateDNSName {
	order := make([]string, 0, len(relevant))
	groups := make(map[string][]string, len(relevant))

	for _, zone := range relevant {
		if _, ok := groups[zone.DNSName]; !ok {
			order = append(order, zone.DNSName)
		}
		groups[zone.DNSName] = append(groups[zone.DNSName], zone.Name)
	}

	var duplicates []model.DuplicateDNSName
	for _, dnsName := range order {
		if len(groups[dnsName]) < 2 {
			continue
		}
		duplicates = append(duplicates, model.DuplicateDNSName{
			DNSName:   dnsName,
			ZoneNames: groups[dnsName],
		})
	}

	return duplicates
}

// DetectMultiTargetZones returns the names of zones forwarding to more than
// one target, in scan order. Zones with zero targets are not flagged here;
// the renderer notes those separately.
func (s *service) DetectMultiTargetZones(relevant []model.ForwardingZone) []string {
	var result []string

	for _, zone := range relevant {
		if len(zone.TargetIPs) > 1 {
			result = append(result, zone.Name)
		}
	}

	return result
}

// BuildReport runs the full correlation over the per-project scan results.
// Scans that failed contribute a skipped-project note instead of zones.
// An empty zone set is a valid result; an unresolved VM network is not.
func (s *service) BuildReport(vm model.VMContext, scans []model.ProjectScan, primaryProject string) (*model.Report, error) {
	if vm.Network == "" {
		return nil, fmt.Errorf("%w: instance %q in project %q", model.ErrNetworkNotResolved, vm.Name, vm.Project)
	}

	var zones []model.ForwardingZone
	var skippedProjects []model.SkippedProject
	var skippedZones []model.SkippedZone

	for _, scan := range scans {
		if scan.Err != nil {
			skippedProjects = append(skippedProjects, model.SkippedProject{
				Project: scan.Project,
				Reason:  scan.Err.Error(),
			})
			continue
		}
		zones = append(zones, scan.Zones...)
		skippedZones = append(skippedZones, scan.Skipped...)
	}

	relevant := s.SelectRelevant(s.DedupZones(zones), vm)

	classified := make([]model.ClassifiedZone, 0, len(relevant))
	for _, zone := range relevant {
		binding, _ := matchingBinding(zone, vm.Network)
		classified = append(classified, model.ClassifiedZone{
			Zone:           zone,
			Classification: s.Classify(zone, vm, primaryProject),
			MatchedBinding: binding,
		})
	}

	return &model.Report{
		VM:                vm,
		Zones:             classified,
		DuplicateDNSNames: s.DetectDuplicateDNSNames(relevant),
		MultiTargetZones:  s.DetectMultiTargetZones(relevant),
		SkippedProjects:   skippedProjects,
		SkippedZones:      skippedZones,
		ScannedProjects:   len(scans),
		TotalRelevant:     len(relevant),
	}, nil
}

// matchingBinding returns the first binding attached to the given network
func matchingBinding(zone model.ForwardingZone, network string) (model.NetworkBinding, bool) {
	for _, binding := range zone.Bindings {
		if binding.Network == network {
			return binding, true
		}
	}
	return model.NetworkBinding{}, false
}
