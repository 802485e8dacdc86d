package gcpdns

import (
	"context"

	"github.com/elC0mpa/dns-doctor/model"
	"google.golang.org/api/dns/v1"
)

type service struct {
	dnsClient *dns.Service
}

type DNSService interface {
	ListForwardingZones(ctx context.Context, project string) ([]model.ForwardingZone, []model.SkippedZone, error)
}
