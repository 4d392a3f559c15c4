// Package server runs the HTTP and gRPC transports of intelli-scan.
//
// Each configured transport binds its address first; the servers then run
// until a termination signal arrives and are stopped gracefully together.
package server
