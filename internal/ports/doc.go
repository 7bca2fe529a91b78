// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by the
// command entry point. Interaction ports are implemented by presentation
// adapters (terminal, console) and called by the application layer.
package ports
