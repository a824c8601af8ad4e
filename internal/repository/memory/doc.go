// Package memory holds map-backed repositories used by tests and local runs without MongoDB.
// Every repository is safe for concurrent use.
package memory
