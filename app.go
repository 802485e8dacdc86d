package main

import (
	"context"
	"fmt"
	"os"

	svc "github.com/elC0mpa/dns-doctor/service"
	"github.com/elC0mpa/dns-doctor/service/correlator"
	"github.com/elC0mpa/dns-doctor/service/flag"
	gcpcompute "github.com/elC0mpa/dns-doctor/service/gcp/compute"
	gcpconfig "github.com/elC0mpa/dns-doctor/service/gcp/config"
	gcpdns "github.com/elC0mpa/dns-doctor/service/gcp/dns"
	gcpidentity "github.com/elC0mpa/dns-doctor/service/gcp/identity"
	gcpquerylog "github.com/elC0mpa/dns-doctor/service/gcp/querylog"
	"github.com/elC0mpa/dns-doctor/service/inventory"
	"github.com/elC0mpa/dns-doctor/service/orchestrator"
	"github.com/elC0mpa/dns-doctor/utils"
	"github.com/jedib0t/go-pretty/v6/text"
	log "github.com/sirupsen/logrus"
)

func main() {
	utils.DrawBanner()

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		fmt.Println(text.FgHiRed.Sprintf("Error: %v", err))
		os.Exit(1)
	}

	log.SetLevel(log.WarnLevel)
	if flags.Debug {
		log.SetLevel(log.DebugLevel)
	}

	utils.StartSpinner()

	ctx := context.Background()

	cfgService := gcpconfig.NewService()
	if _, err := cfgService.GetCredentials(ctx); err != nil {
		fail(flags.Debug, err)
	}

	computeService, err := gcpcompute.NewService(ctx)
	if err != nil {
		fail(flags.Debug, err)
	}

	dnsService, err := gcpdns.NewService(ctx)
	if err != nil {
		fail(flags.Debug, err)
	}

	identityService, err := gcpidentity.NewService(ctx, flags.Project)
	if err != nil {
		fail(flags.Debug, err)
	}

	var resolutionSampler svc.ResolutionSampler
	if flags.LogDataset != "" {
		querylogService, err := gcpquerylog.NewService(ctx, flags.Project, flags.LogDataset)
		if err != nil {
			fail(flags.Debug, err)
		}
		defer querylogService.Close()
		resolutionSampler = querylogService
	}

	inventoryService := inventory.NewService(computeService, dnsService)
	correlatorService := correlator.NewService()

	orchestratorService := orchestrator.NewService(inventoryService, correlatorService, identityService, resolutionSampler)

	if err := orchestratorService.Orchestrate(flags); err != nil {
		fail(flags.Debug, err)
	}
}

func fail(debug bool, err error) {
	utils.StopSpinner()
	if debug {
		panic(err)
	}
	fmt.Println(text.FgHiRed.Sprintf("Error: %v", err))
	os.Exit(1)
}
