package types

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors, wrapped with the rejected input.
var (
	ErrUnknownAlgorithm = errors.New("unknown key algorithm")
	ErrUnknownFormat    = errors.New("unknown key format")
)

// Algorithm selects the key generation algorithm.
type Algorithm string

const (
	AlgorithmRSA     Algorithm = "rsa"
	AlgorithmEd25519 Algorithm = "ed25519"
)

// String returns the string form of the algorithm.
func (a Algorithm) String() string { return string(a) }

// ParseAlgorithm maps a case-insensitive name onto an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rsa", "rsa2048", "rsa-2048":
		return AlgorithmRSA, nil
	case "ed25519":
		return AlgorithmEd25519, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Format selects the private key container.
type Format string

const (
	FormatPKCS8   Format = "pkcs8"
	FormatOpenSSH Format = "openssh"
)

// String returns the string form of the format.
func (f Format) String() string { return string(f) }

// ParseFormat maps a case-insensitive name onto a Format.
// "der" and "ssh" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pkcs8", "der":
		return FormatPKCS8, nil
	case "openssh", "ssh":
		return FormatOpenSSH, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
