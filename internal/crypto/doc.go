// Package crypto implements the key generation primitives used by genkey.
//
// Contents
//
//   - Modular arithmetic: extended-Euclid inverse, square-and-multiply
//     exponentiation, Miller-Rabin primality (ModInverse, ModPow,
//     IsProbablyPrime)
//   - RSA-2048 key generation with CRT parameters (GenerateRSA2048)
//   - Ed25519 key generation and public key derivation over the twisted
//     Edwards curve (GenerateEd25519, NewEd25519FromSeed)
//   - Deterministic Ed25519 seeds from hex or a BIP-39 mnemonic
//   - SSH public key lines and SHA256 fingerprints (AuthorizedKey,
//     Fingerprint)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// Nothing here calls crypto/rsa or crypto/ed25519; the arithmetic is done
// on math/big. Every generator takes its randomness as an io.Reader so
// tests can replay a fixed stream. Keys are immutable once built.
package crypto
