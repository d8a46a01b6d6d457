// Package app wires configuration, logging and the shared tag filter for the
// urlkit binary.
package app
