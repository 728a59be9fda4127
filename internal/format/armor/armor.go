// Package armor turns binary key containers into PEM text: RFC 4648
// Base64 wrapped at a fixed width between BEGIN and END lines.
package armor

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const (
	PKCS8Type    = "PRIVATE KEY"
	OpenSSHType  = "OPENSSH PRIVATE KEY"
	PKCS8Width   = 64
	OpenSSHWidth = 70
)

// Base64 encodes data with the standard alphabet and '=' padding.
func Base64(data []byte) []byte {
	out := make([]byte, 0, (len(data)+2)/3*4)
	n := len(data) / 3 * 3
	for i := 0; i < n; i += 3 {
		v := uint(data[i])<<16 | uint(data[i+1])<<8 | uint(data[i+2])
		out = append(out,
			alphabet[v>>18&0x3f],
			alphabet[v>>12&0x3f],
			alphabet[v>>6&0x3f],
			alphabet[v&0x3f],
		)
	}
	switch len(data) - n {
	case 2:
		v := uint(data[n])<<16 | uint(data[n+1])<<8
		out = append(out, alphabet[v>>18&0x3f], alphabet[v>>12&0x3f], alphabet[v>>6&0x3f], '=')
	case 1:
		v := uint(data[n]) << 16
		out = append(out, alphabet[v>>18&0x3f], alphabet[v>>12&0x3f], '=', '=')
	}
	return out
}

// Wrap inserts a newline after every width characters. No newline follows
// the last line.
func Wrap(text []byte, width int) []byte {
	if width <= 0 || len(text) <= width {
		return append([]byte(nil), text...)
	}
	out := make([]byte, 0, len(text)+len(text)/width)
	for i, c := range text {
		if i > 0 && i%width == 0 {
			out = append(out, '\n')
		}
		out = append(out, c)
	}
	return out
}

// Encode frames data as a PEM block of the given type.
func Encode(blockType string, data []byte, width int) []byte {
	body := Wrap(Base64(data), width)
	out := make([]byte, 0, len(body)+2*len(blockType)+40)
	out = append(out, "-----BEGIN "+blockType+"-----\n"...)
	out = append(out, body...)
	out = append(out, "\n-----END "+blockType+"-----\n"...)
	return out
}

// PKCS8 armors a PKCS#8 DER container.
func PKCS8(der []byte) []byte { return Encode(PKCS8Type, der, PKCS8Width) }

// OpenSSH armors an openssh-key-v1 blob.
func OpenSSH(blob []byte) []byte { return Encode(OpenSSHType, blob, OpenSSHWidth) }
