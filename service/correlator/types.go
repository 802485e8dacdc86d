package correlator

import "github.com/elC0mpa/dns-doctor/model"

type service struct{}

type CorrelatorService interface {
	DedupZones(zones []model.ForwardingZone) []model.ForwardingZone
	SelectRelevant(zones []model.ForwardingZone, vm model.VMContext) []model.ForwardingZone
	Classify(zone model.ForwardingZone, vm model.VMContext, primaryProject string) model.BindingClassification
	DetectDuplicateDNSNames(relevant []model.ForwardingZone) []model.DuplicateDNSName
	DetectMultiTargetZones(relevant []model.ForwardingZone) []string
	BuildReport(vm model.VMContext, scans []model.ProjectScan, primaryProject string) (*model.Report, error)
}
