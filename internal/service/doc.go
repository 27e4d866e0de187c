// Package service contains the application services that orchestrate
// domain entities, stores, and remote collaborators.
package service
