// Package mock provides test doubles for the ai package interfaces.
// The mock embedder is deterministic by default: the same input text
// always yields the same vector, which keeps similarity-based assertions
// stable across runs.
package mock
