package model

// Scope carries the authenticated caller identity through use cases.
// Every repository query is scoped by Scope.UserID.
type Scope struct {
	UserID string
}

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)
