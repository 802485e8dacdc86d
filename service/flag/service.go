package flag

import (
	"flag"
	"fmt"
	"strings"

	"github.com/elC0mpa/dns-doctor/model"
)

type service struct{}

type FlagService interface {
	GetParsedFlags() (model.Flags, error)
}

func NewService() *service {
	return &service{}
}

func (s *service) GetParsedFlags() (model.Flags, error) {
	vmName := flag.String("vm", "", "VM instance name (required)")
	project := flag.String("project", "", "GCP project ID of the VM (required)")
	zone := flag.String("zone", "", "Zone of the VM (required)")
	extraProjects := flag.String("extra-projects", "", "Comma-separated list of extra projects to inspect for DNS zones")
	logDataset := flag.String("log-dataset", "", "BigQuery dataset holding the Cloud DNS query-log export")
	debug := flag.Bool("debug", false, "Enable debug logging and full stack traces")

	flag.Parse()

	if *vmName == "" || *project == "" || *zone == "" {
		flag.Usage()
		return model.Flags{}, fmt.Errorf("flags -vm, -project and -zone are required")
	}

	return model.Flags{
		VMName:        *vmName,
		Project:       *project,
		Zone:          *zone,
		ExtraProjects: splitProjects(*extraProjects),
		LogDataset:    *logDataset,
		Debug:         *debug,
	}, nil
}

// splitProjects turns the comma-separated flag value into a clean list
func splitProjects(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	projects := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			projects = append(projects, trimmed)
		}
	}

	if len(projects) == 0 {
		return nil
	}
	return projects
}
