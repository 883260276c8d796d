// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/petition, domain/signature).
// This root package holds sentinel errors, the ValidationError type, and the
// FieldErrors collection that stage validation writes into.
package domain
