package interfaces

// PKCS8Key is a private key that can be wrapped in a PKCS#8 container.
type PKCS8Key interface {
	// AlgorithmIdentifier returns the pre-encoded DER AlgorithmIdentifier.
	AlgorithmIdentifier() []byte
	// PrivateKeyDER returns the algorithm specific private key DER that
	// goes inside the PKCS#8 OCTET STRING.
	PrivateKeyDER() ([]byte, error)
}

// SSHKey is a private key that can be written in openssh-key-v1 format.
type SSHKey interface {
	// KeyType returns the SSH key type name, e.g. "ssh-ed25519".
	KeyType() string
	// PublicKeyWire returns the SSH public key blob.
	PublicKeyWire() []byte
	// PrivateKeyWire returns the unpadded private section: both check
	// integers, key type, key fields and comment.
	PrivateKeyWire(checkint uint32, comment string) []byte
}

// PrivateKey is implemented by every key genkey can generate.
type PrivateKey interface {
	PKCS8Key
	SSHKey
}
