package domain

import (
	interfaces "genkey/internal/domain/interfaces"
	types "genkey/internal/domain/types"
)

// Type aliases expose domain types from the subpackages for compact imports.
type (
	Algorithm   = types.Algorithm
	Format      = types.Format
	Fingerprint = types.Fingerprint

	PKCS8Key   = interfaces.PKCS8Key
	SSHKey     = interfaces.SSHKey
	PrivateKey = interfaces.PrivateKey
)

const (
	AlgorithmRSA     = types.AlgorithmRSA
	AlgorithmEd25519 = types.AlgorithmEd25519

	FormatPKCS8   = types.FormatPKCS8
	FormatOpenSSH = types.FormatOpenSSH
)

var (
	ErrUnknownAlgorithm = types.ErrUnknownAlgorithm
	ErrUnknownFormat    = types.ErrUnknownFormat
)

// ParseAlgorithm resolves a user supplied algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) { return types.ParseAlgorithm(s) }

// ParseFormat resolves a user supplied container format name.
func ParseFormat(s string) (Format, error) { return types.ParseFormat(s) }
