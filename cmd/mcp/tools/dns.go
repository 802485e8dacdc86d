package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elC0mpa/dns-doctor/cmd/mcp/response"
	"github.com/elC0mpa/dns-doctor/service/correlator"
	gcpcompute "github.com/elC0mpa/dns-doctor/service/gcp/compute"
	gcpdns "github.com/elC0mpa/dns-doctor/service/gcp/dns"
	"github.com/elC0mpa/dns-doctor/service/inventory"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterDNSTools registers the forwarding-zone inspection tools with the
// MCP server. defaultProject and defaultZone come from the environment and
// can be overridden per call.
func RegisterDNSTools(s *server.MCPServer, defaultProject, defaultZone string) {
	s.AddTool(
		mcp.NewTool("dns_inspect_vm",
			mcp.WithDescription("Inspect which Cloud DNS private forwarding zones affect a VM's VPC network, including cross-project bindings, duplicate DNS names and multi-target zones."),
			mcp.WithString("vm", mcp.Required(), mcp.Description("VM instance name")),
			mcp.WithString("project", mcp.Description("GCP project ID of the VM (defaults to GCP_PROJECT_ID)")),
			mcp.WithString("zone", mcp.Description("Zone of the VM (defaults to GCP_VM_ZONE)")),
			mcp.WithString("extra_projects", mcp.Description("Comma-separated list of extra projects to inspect for DNS zones")),
		),
		makeInspectVMHandler(defaultProject, defaultZone),
	)

	s.AddTool(
		mcp.NewTool("dns_resolve_vm_network",
			mcp.WithDescription("Resolve the VPC network a VM's first interface is attached to."),
			mcp.WithString("vm", mcp.Required(), mcp.Description("VM instance name")),
			mcp.WithString("project", mcp.Description("GCP project ID of the VM (defaults to GCP_PROJECT_ID)")),
			mcp.WithString("zone", mcp.Description("Zone of the VM (defaults to GCP_VM_ZONE)")),
		),
		makeResolveNetworkHandler(defaultProject, defaultZone),
	)

	s.AddTool(
		mcp.NewTool("dns_list_forwarding_zones",
			mcp.WithDescription("List the Cloud DNS private forwarding zones defined in a project, with their network bindings and forwarding targets."),
			mcp.WithString("project", mcp.Description("GCP project ID (defaults to GCP_PROJECT_ID)")),
		),
		makeListZonesHandler(defaultProject),
	)
}

func makeInspectVMHandler(defaultProject, defaultZone string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		vmName, err := request.RequireString("vm")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		project := request.GetString("project", defaultProject)
		zone := request.GetString("zone", defaultZone)
		if project == "" || zone == "" {
			return mcp.NewToolResultError("project and zone are required (set GCP_PROJECT_ID and GCP_VM_ZONE or pass them explicitly)"), nil
		}

		inventoryService, err := buildInventoryService(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		vm, err := inventoryService.ResolveVMContext(ctx, vmName, project, zone)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve VM network: %v", err)), nil
		}

		projects := append([]string{project}, splitExtraProjects(request.GetString("extra_projects", ""))...)
		scans := inventoryService.ScanProjects(ctx, projects)

		report, err := correlator.NewService().BuildReport(*vm, scans, project)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to build report: %v", err)), nil
		}

		data, _ := json.MarshalIndent(response.ConvertReport(report), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeResolveNetworkHandler(defaultProject, defaultZone string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		vmName, err := request.RequireString("vm")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		project := request.GetString("project", defaultProject)
		zone := request.GetString("zone", defaultZone)
		if project == "" || zone == "" {
			return mcp.NewToolResultError("project and zone are required (set GCP_PROJECT_ID and GCP_VM_ZONE or pass them explicitly)"), nil
		}

		computeService, err := gcpcompute.NewService(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create Compute service: %v", err)), nil
		}

		network, err := computeService.ResolveNetwork(ctx, project, zone, vmName)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve VM network: %v", err)), nil
		}

		resp := response.NetworkResolution{
			VM:      vmName,
			Project: project,
			Zone:    zone,
			Network: network,
		}

		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeListZonesHandler(defaultProject string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		project := request.GetString("project", defaultProject)
		if project == "" {
			return mcp.NewToolResultError("project is required (set GCP_PROJECT_ID or pass it explicitly)"), nil
		}

		dnsService, err := gcpdns.NewService(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create Cloud DNS service: %v", err)), nil
		}

		zones, skipped, err := dnsService.ListForwardingZones(ctx, project)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list forwarding zones: %v", err)), nil
		}

		data, _ := json.MarshalIndent(response.ConvertZoneListing(project, zones, skipped), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func buildInventoryService(ctx context.Context) (inventory.InventoryService, error) {
	computeService, err := gcpcompute.NewService(ctx)
	if err != nil {
		return nil, fmt.Errorf("Failed to create Compute service: %w", err)
	}

	dnsService, err := gcpdns.NewService(ctx)
	if err != nil {
		return nil, fmt.Errorf("Failed to create Cloud DNS service: %w", err)
	}

	return inventory.NewService(computeService, dnsService), nil
}

func splitExtraProjects(raw string) []string {
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
	return projects
}
