// Package cli defines the Cobra command tree for the skillhub CLI. Each file
// in this package registers one top-level command (index, readme, validate,
// etc.) with the root command. Commands resolve settings through the config
// package and delegate the catalog work to registry, readme and scaffold.
package cli
