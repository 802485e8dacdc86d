package gcpquerylog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/elC0mpa/dns-doctor/model"
	"google.golang.org/api/iterator"
)

// sampleWindow is the trailing period the query-log samples cover
const sampleWindow = 24 * time.Hour

func NewService(ctx context.Context, projectID, dataset string) (*service, error) {
	bqClient, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create BigQuery client: %w", err)
	}

	return &service{
		projectID: projectID,
		dataset:   dataset,
		bqClient:  bqClient,
	}, nil
}

// Close closes the BigQuery client
func (s *service) Close() error {
	return s.bqClient.Close()
}

// SampleResolutions implements service.ResolutionSampler
// Aggregates resolution outcomes for the VM over the Cloud DNS query-log
// export, restricted to names under the relevant zones' DNS suffixes.
// The export writes one wildcard-sharded table per day:
// dns_googleapis_com_dns_queries_YYYYMMDD.
func (s *service) SampleResolutions(ctx context.Context, vm model.VMContext, suffixes []string) (*model.ResolutionStats, error) {
	windowEnd := time.Now().UTC()
	windowStart := windowEnd.Add(-sampleWindow)

	q := s.bqClient.Query(buildQuery(s.projectID, s.dataset, len(suffixes)))
	q.Parameters = []bigquery.QueryParameter{
		{Name: "vmName", Value: vm.Name},
		{Name: "windowStart", Value: windowStart},
	}
	for i, suffix := range suffixes {
		q.Parameters = append(q.Parameters, bigquery.QueryParameter{
			Name:  fmt.Sprintf("suffix%d", i),
			Value: suffix,
		})
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to execute BigQuery query: %w", err)
	}

	var samples []model.ResolutionSample

	for {
		var row struct {
			QueryName    string `bigquery:"query_name"`
			ResponseCode string `bigquery:"response_code"`
			QueryCount   int64  `bigquery:"query_count"`
		}

		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read BigQuery row: %w", err)
		}

		samples = append(samples, model.ResolutionSample{
			QueryName:    row.QueryName,
			ResponseCode: row.ResponseCode,
			QueryCount:   row.QueryCount,
		})
	}

	return &model.ResolutionStats{
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Samples:     samples,
	}, nil
}

// buildQuery assembles the aggregation SQL with one ENDS_WITH predicate per
// zone suffix. Suffix values are bound as query parameters, never inlined.
func buildQuery(projectID, dataset string, suffixCount int) string {
	predicates := make([]string, 0, suffixCount)
	for i := 0; i < suffixCount; i++ {
		predicates = append(predicates, fmt.Sprintf("ENDS_WITH(jsonPayload.queryname, @suffix%d)", i))
	}

	suffixFilter := "TRUE"
	if len(predicates) > 0 {
		suffixFilter = strings.Join(predicates, " OR ")
	}

	return fmt.Sprintf(`
		SELECT
			jsonPayload.queryname AS query_name,
			jsonPayload.responsecode AS response_code,
			COUNT(*) AS query_count
		FROM %s.%s.dns_googleapis_com_dns_queries_*
		WHERE
			timestamp >= @windowStart
			AND jsonPayload.vminstancename = @vmName
			AND (%s)
		GROUP BY query_name, response_code
		ORDER BY query_count DESC
	`, projectID, dataset, suffixFilter)
}
