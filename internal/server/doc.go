// Package server wires and runs the application's HTTP transport.
//
// It orchestrates the server lifecycle: startup, OS signal handling, and
// graceful shutdown of open connections.
package server
