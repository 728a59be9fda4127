// Package commands defines the genkey CLI.
//
// Commands
//
//   - genkey           Generate a key and print or write its PEM
//   - genkey mnemonic  Print a fresh BIP-39 mnemonic for --mnemonic
//   - genkey version   Print the version
//
// # Implementation
//
// The root command loads the YAML config, lets explicitly set flags
// override it, and hands the result to app.Generator. Diagnostics go to
// stderr through log/slog; stdout only ever carries key material.
package commands
