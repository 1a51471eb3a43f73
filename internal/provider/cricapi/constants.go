package cricapi

import "time"

// Name identifies this provider in logs and metric attributes.
const Name = "cricapi"

const (
	defaultBaseURL     = "https://api.cricapi.com/v1"
	defaultHTTPTimeout = 10 * time.Second

	currentMatchesPath = "/currentMatches"
	statusSuccess      = "success"
)
