package model

import "time"

// ResolutionSample is one aggregated row from the Cloud DNS query-log
// export: how often a name resolved with a given response code
type ResolutionSample struct {
	QueryName    string
	ResponseCode string
	QueryCount   int64
}

// ResolutionStats bundles the samples with the window they cover
type ResolutionStats struct {
	WindowStart time.Time
	WindowEnd   time.Time
	Samples     []ResolutionSample
}
