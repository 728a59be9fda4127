// Package store writes generated keys to disk.
//
// WriteKey stages the bytes in a hidden file next to the target, sets the
// mode for the key's Kind (0600 private, 0644 public) before any key
// material is written, syncs, and renames the file over the target. A
// reader never sees a half written key.
package store
