package correlator

import (
	"errors"
	"testing"

	"github.com/elC0mpa/dns-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boundTo(networks ...string) []model.NetworkBinding {
	bindings := make([]model.NetworkBinding, 0, len(networks))
	for _, network := range networks {
		bindings = append(bindings, model.NetworkBinding{Network: network})
	}
	return bindings
}

func TestSelectRelevant(t *testing.T) {
	svc := NewService()
	vm := model.VMContext{Name: "vm-1", Project: "p1", Zone: "us-central1-a", Network: "default"}

	tests := []struct {
		name     string
		zones    []model.ForwardingZone
		expected []string
	}{
		{
			name: "keeps zones bound to the vm network",
			zones: []model.ForwardingZone{
				{Name: "z1", Bindings: boundTo("default")},
				{Name: "z2", Bindings: boundTo("other")},
				{Name: "z3", Bindings: boundTo("other", "default")},
			},
			expected: []string{"z1", "z3"},
		},
		{
			name: "excludes zones with no bindings",
			zones: []model.ForwardingZone{
				{Name: "z1", DNSName: "a.internal.", OwningProject: "p1"},
				{Name: "z2", Bindings: boundTo("default")},
			},
			expected: []string{"z2"},
		},
		{
			name:     "empty input yields empty output",
			zones:    nil,
			expected: []string{},
		},
		{
			name: "preserves scan order",
			zones: []model.ForwardingZone{
				{Name: "z3", Bindings: boundTo("default")},
				{Name: "z1", Bindings: boundTo("default")},
				{Name: "z2", Bindings: boundTo("default")},
			},
			expected: []string{"z3", "z1", "z2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relevant := svc.SelectRelevant(tt.zones, vm)

			names := make([]string, 0, len(relevant))
			for _, zone := range relevant {
				names = append(names, zone.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestClassify(t *testing.T) {
	svc := NewService()
	vm := model.VMContext{Name: "vm-1", Project: "p1", Zone: "us-central1-a", Network: "default"}

	t.Run("same project zone", func(t *testing.T) {
		zone := model.ForwardingZone{Name: "z1", OwningProject: "p1"}

		c := svc.Classify(zone, vm, "p1")

		assert.Equal(t, "p1", c.SourceProject)
		assert.Equal(t, "p1", c.TargetProject)
		assert.False(t, c.CrossProject)
	})

	t.Run("extra project zone targets the primary project", func(t *testing.T) {
		zone := model.ForwardingZone{Name: "z2", OwningProject: "p2"}

		c := svc.Classify(zone, vm, "p1")

		assert.Equal(t, "p2", c.SourceProject)
		assert.Equal(t, "p1", c.TargetProject)
		assert.True(t, c.CrossProject)
	})

	t.Run("deterministic", func(t *testing.T) {
		zone := model.ForwardingZone{Name: "z2", OwningProject: "p2"}

		first := svc.Classify(zone, vm, "p1")
		second := svc.Classify(zone, vm, "p1")

		assert.Equal(t, first, second)
	})

	t.Run("cross project flag always matches project inequality", func(t *testing.T) {
		for _, owner := range []string{"p1", "p2", "p3"} {
			zone := model.ForwardingZone{Name: "z", OwningProject: owner}
			c := svc.Classify(zone, vm, "p1")
			assert.Equal(t, c.SourceProject != c.TargetProject, c.CrossProject)
		}
	})
}

func TestDedupZones(t *testing.T) {
	svc := NewService()

	t.Run("first occurrence wins", func(t *testing.T) {
		zones := []model.ForwardingZone{
			{Name: "z1", OwningProject: "p1", DNSName: "a.internal."},
			{Name: "z1", OwningProject: "p1", DNSName: "stale.internal."},
			{Name: "z2", OwningProject: "p1"},
		}

		deduped := svc.DedupZones(zones)

		require.Len(t, deduped, 2)
		assert.Equal(t, "a.internal.", deduped[0].DNSName)
		assert.Equal(t, "z2", deduped[1].Name)
	})

	t.Run("same name under different projects is kept", func(t *testing.T) {
		zones := []model.ForwardingZone{
			{Name: "z1", OwningProject: "p1"},
			{Name: "z1", OwningProject: "p2"},
		}

		assert.Len(t, svc.DedupZones(zones), 2)
	})
}

func TestDetectDuplicateDNSNames(t *testing.T) {
	svc := NewService()

	t.Run("single occurrence is not reported", func(t *testing.T) {
		zones := []model.ForwardingZone{
			{Name: "z1", DNSName: "a.internal."},
			{Name: "z2", DNSName: "b.internal."},
		}

		assert.Empty(t, svc.DetectDuplicateDNSNames(zones))
	})

	t.Run("groups of two or more are reported in scan order", func(t *testing.T) {
		zones := []model.ForwardingZone{
			{Name: "z1", DNSName: "a.internal."},
			{Name: "z2", DNSName: "b.internal."},
			{Name: "z3", DNSName: "a.internal."},
			{Name: "z4", DNSName: "b.internal."},
			{Name: "z5", DNSName: "a.internal."},
		}

		duplicates := svc.DetectDuplicateDNSNames(zones)

		require.Len(t, duplicates, 2)
		assert.Equal(t, "a.internal.", duplicates[0].DNSName)
		assert.Equal(t, []string{"z1", "z3", "z5"}, duplicates[0].ZoneNames)
		assert.Equal(t, "b.internal.", duplicates[1].DNSName)
		assert.Equal(t, []string{"z2", "z4"}, duplicates[1].ZoneNames)
	})

	t.Run("trailing dot is not normalized", func(t *testing.T) {
		zones := []model.ForwardingZone{
			{Name: "z1", DNSName: "a.internal."},
			{Name: "z2", DNSName: "a.internal"},
		}

		assert.Empty(t, svc.DetectDuplicateDNSNames(zones))
	})
}

func TestDetectMultiTargetZones(t *testing.T) {
	svc := NewService()

	zones := []model.ForwardingZone{
		{Name: "z0", TargetIPs: nil},
		{Name: "z1", TargetIPs: []string{"1.1.1.1"}},
		{Name: "z2", TargetIPs: []string{"2.2.2.2", "3.3.3.3"}},
		{Name: "z3", TargetIPs: []string{"4.4.4.4", "5.5.5.5", "6.6.6.6"}},
	}

	assert.Equal(t, []string{"z2", "z3"}, svc.DetectMultiTargetZones(zones))
}

func TestBuildReport(t *testing.T) {
	svc := NewService()
	vm := model.VMContext{Name: "vm-1", Project: "p1", Zone: "us-central1-a", Network: "default"}

	t.Run("unresolved network is fatal", func(t *testing.T) {
		noNetwork := model.VMContext{Name: "vm-1", Project: "p1", Zone: "us-central1-a"}

		report, err := svc.BuildReport(noNetwork, nil, "p1")

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNetworkNotResolved)
		assert.Nil(t, report)
	})

	t.Run("empty scans yield an empty report, not an error", func(t *testing.T) {
		report, err := svc.BuildReport(vm, nil, "p1")

		require.NoError(t, err)
		assert.Empty(t, report.Zones)
		assert.Empty(t, report.DuplicateDNSNames)
		assert.Empty(t, report.MultiTargetZones)
		assert.Zero(t, report.TotalRelevant)
	})

	t.Run("same project zone", func(t *testing.T) {
		scans := []model.ProjectScan{
			{Project: "p1", Zones: []model.ForwardingZone{
				{Name: "z1", DNSName: "a.internal.", OwningProject: "p1", Bindings: boundTo("default"), TargetIPs: []string{"1.1.1.1"}},
			}},
		}

		report, err := svc.BuildReport(vm, scans, "p1")

		require.NoError(t, err)
		require.Len(t, report.Zones, 1)
		assert.Equal(t, "z1", report.Zones[0].Zone.Name)
		assert.False(t, report.Zones[0].Classification.CrossProject)
		assert.Equal(t, 1, report.TotalRelevant)
	})

	t.Run("cross project zone with multiple targets", func(t *testing.T) {
		scans := []model.ProjectScan{
			{Project: "p1"},
			{Project: "p2", Zones: []model.ForwardingZone{
				{Name: "z2", DNSName: "b.internal.", OwningProject: "p2", Bindings: boundTo("default"), TargetIPs: []string{"2.2.2.2", "3.3.3.3"}},
			}},
		}

		report, err := svc.BuildReport(vm, scans, "p1")

		require.NoError(t, err)
		require.Len(t, report.Zones, 1)
		assert.Equal(t, "p2", report.Zones[0].Classification.SourceProject)
		assert.Equal(t, "p1", report.Zones[0].Classification.TargetProject)
		assert.True(t, report.Zones[0].Classification.CrossProject)
		assert.Equal(t, []string{"z2"}, report.MultiTargetZones)
	})

	t.Run("duplicate dns name across projects", func(t *testing.T) {
		scans := []model.ProjectScan{
			{Project: "p1", Zones: []model.ForwardingZone{
				{Name: "z1", DNSName: "a.internal.", OwningProject: "p1", Bindings: boundTo("default")},
			}},
			{Project: "p2", Zones: []model.ForwardingZone{
				{Name: "z2", DNSName: "a.internal.", OwningProject: "p2", Bindings: boundTo("default")},
			}},
		}

		report, err := svc.BuildReport(vm, scans, "p1")

		require.NoError(t, err)
		require.Len(t, report.DuplicateDNSNames, 1)
		assert.Equal(t, "a.internal.", report.DuplicateDNSNames[0].DNSName)
		assert.Equal(t, []string{"z1", "z2"}, report.DuplicateDNSNames[0].ZoneNames)
	})

	t.Run("failed primary scan is skipped, extra project still contributes", func(t *testing.T) {
		scans := []model.ProjectScan{
			{Project: "p1", Err: errors.New("permission denied")},
			{Project: "p2", Zones: []model.ForwardingZone{
				{Name: "z2", DNSName: "b.internal.", OwningProject: "p2", Bindings: boundTo("default")},
			}},
		}

		report, err := svc.BuildReport(vm, scans, "p1")

		require.NoError(t, err)
		require.Len(t, report.SkippedProjects, 1)
		assert.Equal(t, "p1", report.SkippedProjects[0].Project)
		assert.Equal(t, "permission denied", report.SkippedProjects[0].Reason)
		require.Len(t, report.Zones, 1)
		assert.Equal(t, "z2", report.Zones[0].Zone.Name)
		assert.Equal(t, 2, report.ScannedProjects)
	})

	t.Run("duplicate listing is classified once", func(t *testing.T) {
		zone := model.ForwardingZone{Name: "z1", DNSName: "a.internal.", OwningProject: "p1", Bindings: boundTo("default")}
		scans := []model.ProjectScan{
			{Project: "p1", Zones: []model.ForwardingZone{zone}},
			{Project: "p1", Zones: []model.ForwardingZone{zone}},
		}

		report, err := svc.BuildReport(vm, scans, "p1")

		require.NoError(t, err)
		assert.Len(t, report.Zones, 1)
		assert.Empty(t, report.DuplicateDNSNames)
	})

	t.Run("matched binding is the first bound to the vm network", func(t *testing.T) {
		scans := []model.ProjectScan{
			{Project: "p1", Zones: []model.ForwardingZone{
				{Name: "z1", DNSName: "a.internal.", OwningProject: "p1", Bindings: []model.NetworkBinding{
					{Network: "other", Project: "p1"},
					{Network: "default", Project: "p1"},
					{Network: "default", Project: "p3"},
				}},
			}},
		}

		report, err := svc.BuildReport(vm, scans, "p1")

		require.NoError(t, err)
		require.Len(t, report.Zones, 1)
		assert.Equal(t, "default", report.Zones[0].MatchedBinding.Network)
		assert.Equal(t, "p1", report.Zones[0].MatchedBinding.Project)
	})

	t.Run("idempotent over the same input", func(t *testing.T) {
		scans := []model.ProjectScan{
			{Project: "p1", Zones: []model.ForwardingZone{
				{Name: "z1", DNSName: "a.internal.", OwningProject: "p1", Bindings: boundTo("default"), TargetIPs: []string{"1.1.1.1", "2.2.2.2"}},
				{Name: "z2", DNSName: "a.internal.", OwningProject: "p1", Bindings: boundTo("default")},
			}},
			{Project: "p2", Err: errors.New("not reachable")},
		}

		first, err := svc.BuildReport(vm, scans, "p1")
		require.NoError(t, err)
		second, err := svc.BuildReport(vm, scans, "p1")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
