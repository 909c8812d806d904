// Package constants defines shared constant values used across the application.
package constants

// Environment names.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Gin context keys populated by the auth middleware.
const (
	ContextKeyActor  = "actor"
	ContextKeyUserID = "user_id"
)
