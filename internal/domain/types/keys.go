package types

// Fingerprint is the SHA256 fingerprint of a public key as printed by
// ssh-keygen -l.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
