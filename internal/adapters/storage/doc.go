// Package storage holds the petition store adapters. Each subpackage
// implements ports.Store: memory for tests and local runs, sqlite for a
// single-node deployment and postgres for production. The storagetest
// package checks them against the same behaviour.
package storage
