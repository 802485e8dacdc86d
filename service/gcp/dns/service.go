package gcpdns

import (
	"context"
	"fmt"
	"strings"

	"github.com/elC0mpa/dns-doctor/model"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/dns/v1"
	"google.golang.org/api/option"
)

func NewService(ctx context.Context) (*service, error) {
	dnsClient, err := dns.NewService(ctx, option.WithScopes(
		dns.NdevClouddnsReadonlyScope,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud DNS client: %w", err)
	}

	return &service{
		dnsClient: dnsClient,
	}, nil
}

// ListForwardingZones implements service.ZoneLister
// Returns the project's managed zones that carry a forwarding config.
// Records missing a name or DNS name come back as skipped, not as errors.
func (s *service) ListForwardingZones(ctx context.Context, project string) ([]model.ForwardingZone, []model.SkippedZone, error) {
	resp, err := s.dnsClient.ManagedZones.List(project).Context(ctx).Do()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list managed zones in project %s: %w", project, err)
	}

	var zones []model.ForwardingZone
	var skipped []model.SkippedZone

	for _, managedZone := range resp.ManagedZones {
		if managedZone.ForwardingConfig == nil {
			continue
		}

		zone, err := convertZone(managedZone, project)
		if err != nil {
			log.WithFields(log.Fields{
				"project": project,
				"zone":    managedZone.Name,
			}).Warnf("skipping zone: %v", err)
			skipped = append(skipped, model.SkippedZone{
				Project: project,
				Name:    managedZone.Name,
				Reason:  err.Error(),
			})
			continue
		}
		zones = append(zones, zone)
	}

	log.WithFields(log.Fields{
		"project": project,
		"zones":   len(zones),
	}).Debug("listed forwarding zones")

	return zones, skipped, nil
}

// convertZone maps a dns/v1 managed zone onto the domain model
func convertZone(managedZone *dns.ManagedZone, project string) (model.ForwardingZone, error) {
	if managedZone.Name == "" {
		return model.ForwardingZone{}, fmt.Errorf("%w: missing zone name", model.ErrMalformedZone)
	}
	if managedZone.DnsName == "" {
		return model.ForwardingZone{}, fmt.Errorf("%w: zone %s has no dns name", model.ErrMalformedZone, managedZone.Name)
	}

	zone := model.ForwardingZone{
		Name:          managedZone.Name,
		DNSName:       managedZone.DnsName,
		OwningProject: project,
	}

	if managedZone.PrivateVisibilityConfig != nil {
		for _, network := range managedZone.PrivateVisibilityConfig.Networks {
			zone.Bindings = append(zone.Bindings, parseNetworkURL(network.NetworkUrl))
		}
	}

	for _, target := range managedZone.ForwardingConfig.TargetNameServers {
		if target.Ipv4Address != "" {
			zone.TargetIPs = append(zone.TargetIPs, target.Ipv4Address)
		}
	}

	return zone, nil
}

// parseNetworkURL splits a network URL into its VPC name and owning project
// e.g., "https://www.googleapis.com/compute/v1/projects/p2/global/networks/default"
// yields {Network: "default", Project: "p2"}
func parseNetworkURL(networkURL string) model.NetworkBinding {
	binding := model.NetworkBinding{URL: networkURL}

	segments := strings.Split(networkURL, "/")
	binding.Network = segments[len(segments)-1]

	for i, segment := range segments {
		if segment == "projects" && i+1 < len(segments) {
			binding.Project = segments[i+1]
			break
		}
	}

	return binding
}
