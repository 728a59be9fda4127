package crypto

import (
	"bytes"
	"fmt"

	"golang.org/x/crypto/ssh"

	"genkey/internal/domain"
)

// AuthorizedKey returns the authorized_keys line for key, with the comment
// appended when non-empty.
func AuthorizedKey(key domain.SSHKey, comment string) ([]byte, error) {
	pub, err := ssh.ParsePublicKey(key.PublicKeyWire())
	if err != nil {
		return nil, fmt.Errorf("ssh public key: %w", err)
	}
	line := bytes.TrimSuffix(ssh.MarshalAuthorizedKey(pub), []byte("\n"))
	if comment != "" {
		line = append(line, ' ')
		line = append(line, comment...)
	}
	return append(line, '\n'), nil
}

// Fingerprint returns the SHA256 fingerprint of key's public half in the
// format printed by ssh-keygen -l.
func Fingerprint(key domain.SSHKey) (domain.Fingerprint, error) {
	pub, err := ssh.ParsePublicKey(key.PublicKeyWire())
	if err != nil {
		return "", fmt.Errorf("ssh public key: %w", err)
	}
	return domain.Fingerprint(ssh.FingerprintSHA256(pub)), nil
}
