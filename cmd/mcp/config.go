package main

import "os"

// Config holds environment-based defaults for the DNS inspection tools
type Config struct {
	GCPProjectID string
	GCPVMZone    string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		GCPProjectID: os.Getenv("GCP_PROJECT_ID"),
		GCPVMZone:    os.Getenv("GCP_VM_ZONE"),
	}
}
