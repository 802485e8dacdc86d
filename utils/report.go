package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/elC0mpa/dns-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawReport renders the full inspection report: header, zone table,
// anomaly warnings and skip notes
func DrawReport(report *model.Report, identity *model.ProjectIdentity) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🩺  DNS FORWARDING INSPECTION REPORT"))
	fmt.Printf(" VM: %s\n", text.FgBlue.Sprint(report.VM.Name))
	fmt.Printf(" Project: %s\n", text.FgBlue.Sprint(projectLabel(report.VM.Project, identity)))
	fmt.Printf(" VPC: %s\n", text.FgBlue.Sprint(report.VM.Network))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	drawSkipNotes(report)

	if len(report.Zones) == 0 {
		fmt.Println("\n No forwarding zones found bound to this VM's VPC.")
		return
	}

	drawZoneTable(report.Zones)
	drawWarnings(report)

	fmt.Printf("\n Total forwarding zones scanned: %s\n", text.FgHiGreen.Sprintf("%d", report.TotalRelevant))
	fmt.Println(" Note: Metadata DNS may forward queries to the above targets due to these bindings.")
}

func drawZoneTable(zones []model.ClassifiedZone) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Forwarding Zone", "DNS Name", "Binding", "Source Project", "Target Project", "VPC Binding", "Target IPs"})
	tw.SetStyle(table.StyleRounded)

	for _, classified := range zones {
		label := bindingLabel(classified.Classification.CrossProject)
		if classified.Classification.CrossProject {
			label = text.FgHiRed.Sprint(label)
		} else {
			label = text.FgGreen.Sprint(label)
		}

		tw.AppendRow(table.Row{
			text.FgHiCyan.Sprint(classified.Zone.Name),
			classified.Zone.DNSName,
			label,
			classified.Classification.SourceProject,
			classified.Classification.TargetProject,
			classified.MatchedBinding.Network,
			formatTargets(classified.Zone.TargetIPs),
		})
	}

	tw.Render()
}

func drawWarnings(report *model.Report) {
	for _, classified := range report.Zones {
		if classified.Classification.CrossProject {
			fmt.Printf(" %s Cross binding: %s\n",
				text.FgHiYellow.Sprint("⚠"),
				crossDirection(classified.Classification))
		}
	}

	for _, duplicate := range report.DuplicateDNSNames {
		fmt.Printf(" %s Duplicate DNS name %s across zones: %s. This may cause resolution conflicts.\n",
			text.FgHiRed.Sprint("⚠"),
			text.FgHiYellow.Sprint(duplicate.DNSName),
			strings.Join(duplicate.ZoneNames, ", "))
	}

	for _, zoneName := range report.MultiTargetZones {
		fmt.Printf(" %s Multiple forwarding targets detected on zone %s.\n",
			text.FgHiRed.Sprint("⚠"),
			text.FgHiYellow.Sprint(zoneName))
	}

	for _, classified := range report.Zones {
		if len(classified.Zone.TargetIPs) == 0 {
			fmt.Printf(" %s Zone %s has no forwarding targets configured.\n",
				text.FgHiYellow.Sprint("⚠"),
				text.FgHiYellow.Sprint(classified.Zone.Name))
		}
	}
}

func drawSkipNotes(report *model.Report) {
	for _, skipped := range report.SkippedProjects {
		fmt.Printf(" %s Skipped project %s: %s\n",
			text.FgHiRed.Sprint("⚠"),
			text.FgHiYellow.Sprint(skipped.Project),
			text.FgRed.Sprint(skipped.Reason))
	}

	for _, skipped := range report.SkippedZones {
		fmt.Printf(" %s Skipped zone %s in project %s: %s\n",
			text.FgHiRed.Sprint("⚠"),
			text.FgHiYellow.Sprint(skipped.Name),
			text.FgHiYellow.Sprint(skipped.Project),
			text.FgRed.Sprint(skipped.Reason))
	}
}

func projectLabel(projectID string, identity *model.ProjectIdentity) string {
	if identity == nil || identity.DisplayName == "" || identity.DisplayName == projectID {
		return projectID
	}
	return fmt.Sprintf("%s (%s)", projectID, identity.DisplayName)
}

func bindingLabel(crossProject bool) string {
	if crossProject {
		return "Cross-project"
	}
	return "Same project"
}

func crossDirection(classification model.BindingClassification) string {
	return fmt.Sprintf("%s → %s", classification.SourceProject, classification.TargetProject)
}

func formatTargets(targetIPs []string) string {
	if len(targetIPs) == 0 {
		return "none configured"
	}
	return strings.Join(targetIPs, ", ")
}
