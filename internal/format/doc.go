// Package format groups the byte-exact encoders genkey writes keys with.
//
// Contents
//
//   - der      ASN.1 DER tag-length-value encoding
//   - pkcs8    RFC 5958 OneAsymmetricKey container
//   - openssh  openssh-key-v1 private key container and SSH wire strings
//   - armor    RFC 4648 Base64 and PEM framing
//
// None of these packages parse input; they only produce bytes.
package format
