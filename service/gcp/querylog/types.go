package gcpquerylog

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/elC0mpa/dns-doctor/model"
)

type service struct {
	projectID string
	dataset   string
	bqClient  *bigquery.Client
}

type QuerylogService interface {
	SampleResolutions(ctx context.Context, vm model.VMContext, suffixes []string) (*model.ResolutionStats, error)
	Close() error
}
