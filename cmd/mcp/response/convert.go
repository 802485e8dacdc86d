package response

import (
	"fmt"

	"github.com/elC0mpa/dns-doctor/model"
)

// ConvertReport converts model.Report to response.Report
func ConvertReport(report *model.Report) *Report {
	if report == nil {
		return nil
	}

	zones := make([]ZoneFinding, 0, len(report.Zones))
	crossProjectCount := 0

	for _, classified := range report.Zones {
		finding := ZoneFinding{
			ZoneName:       classified.Zone.Name,
			DNSName:        classified.Zone.DNSName,
			SourceProject:  classified.Classification.SourceProject,
			TargetProject:  classified.Classification.TargetProject,
			IsCrossProject: classified.Classification.CrossProject,
			VPCBinding:     classified.MatchedBinding.Network,
			TargetIPs:      classified.Zone.TargetIPs,
			HasMultipleIPs: len(classified.Zone.TargetIPs) > 1,
		}
		if finding.IsCrossProject {
			finding.CrossDirection = fmt.Sprintf("%s → %s", finding.SourceProject, finding.TargetProject)
			crossProjectCount++
		}
		zones = append(zones, finding)
	}

	duplicates := make([]DuplicateDNSName, 0, len(report.DuplicateDNSNames))
	for _, duplicate := range report.DuplicateDNSNames {
		duplicates = append(duplicates, DuplicateDNSName{
			DNSName:   duplicate.DNSName,
			ZoneNames: duplicate.ZoneNames,
		})
	}

	skippedProjects := make([]SkippedProject, 0, len(report.SkippedProjects))
	for _, skipped := range report.SkippedProjects {
		skippedProjects = append(skippedProjects, SkippedProject{
			Project: skipped.Project,
			Reason:  skipped.Reason,
		})
	}

	multiTarget := report.MultiTargetZones
	if multiTarget == nil {
		multiTarget = []string{}
	}

	return &Report{
		VM: VMContext{
			Name:    report.VM.Name,
			Project: report.VM.Project,
			Zone:    report.VM.Zone,
			Network: report.VM.Network,
		},
		Zones:             zones,
		DuplicateDNSNames: duplicates,
		MultiTargetZones:  multiTarget,
		SkippedProjects:   skippedProjects,
		SkippedZones:      ConvertSkippedZones(report.SkippedZones),
		ScannedProjects:   report.ScannedProjects,
		TotalRelevant:     report.TotalRelevant,
		CrossProjectCount: crossProjectCount,
	}
}

// ConvertZoneListing converts one project's raw zone records
func ConvertZoneListing(project string, zones []model.ForwardingZone, skipped []model.SkippedZone) *ZoneListing {
	converted := make([]ForwardingZone, 0, len(zones))

	for _, zone := range zones {
		networks := make([]string, 0, len(zone.Bindings))
		for _, binding := range zone.Bindings {
			networks = append(networks, binding.Network)
		}

		converted = append(converted, ForwardingZone{
			Name:          zone.Name,
			DNSName:       zone.DNSName,
			OwningProject: zone.OwningProject,
			Networks:      networks,
			TargetIPs:     zone.TargetIPs,
		})
	}

	return &ZoneListing{
		Project: project,
		Zones:   converted,
		Skipped: ConvertSkippedZones(skipped),
	}
}

// ConvertSkippedZones converts malformed-zone notes
func ConvertSkippedZones(skipped []model.SkippedZone) []SkippedZone {
	converted := make([]SkippedZone, 0, len(skipped))
	for _, zone := range skipped {
		converted = append(converted, SkippedZone{
			Project: zone.Project,
			Name:    zone.Name,
			Reason:  zone.Reason,
		})
	}
	return converted
}
