// Package client implements the application runtime.
//
// It wires configuration, local storage, the remote store adapter, the
// offline sync services, the PDF exporter, and the terminal status indicator
// into a single process lifecycle consumed by the CLI commands.
package client
