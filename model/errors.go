package model

import "errors"

var (
	// ErrNetworkNotResolved means the VM's VPC network could not be
	// determined; nothing can be relevant without it, so it is fatal
	ErrNetworkNotResolved = errors.New("vm network could not be resolved")

	// ErrNoCredentials means no Application Default Credentials were found
	ErrNoCredentials = errors.New("no application default credentials found")

	// ErrMalformedZone marks a zone record missing its name or DNS name
	ErrMalformedZone = errors.New("malformed zone record")
)
