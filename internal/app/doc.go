// Package app wires the key generators, encoders and store together.
//
// Config describes one run (algorithm, container format, comment, output
// path and optional deterministic seed). It is loaded from a YAML file and
// then overridden by command-line flags. Generator turns a Config into a
// Result holding the PEM private key, the authorized_keys line and the
// key fingerprint; Emit writes a Result to disk or to a writer.
package app
