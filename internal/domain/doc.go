// Package domain defines the algorithm and format selectors and the key
// capability contracts shared across genkey.
// It contains plain types (types) and contracts (interfaces) only.
package domain
