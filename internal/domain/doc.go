// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/resistor). This root
// package holds the sentinel errors and typed errors that the application and
// adapter layers check with errors.Is and errors.As.
package domain
