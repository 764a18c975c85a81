// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo, domain/feedback,
// domain/user, domain/assist). This root package holds sentinel errors and
// validation types that are shared across all entities.
package domain
