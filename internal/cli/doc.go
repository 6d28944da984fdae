// Package cli defines the Cobra command tree for the bbpm CLI. Each file in
// this package registers one top-level command (install, info, update, etc.)
// with the root command. Command implementations delegate to internal
// packages for resolution, installation and storage, and only handle
// arguments and output.
package cli
