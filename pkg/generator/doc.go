// Package generator produces random passwords and passphrases from a
// cryptographically secure source.
//
// Password mode guarantees at least one character from every enabled
// character class by seeding one mandatory character per class and then
// performing a secure Fisher-Yates shuffle, so mandatory characters are
// not predictably front-loaded. Passphrase mode draws words uniformly
// from a word list and joins them with a separator.
//
// Every random decision (class seeding, pool selection, shuffle
// permutation, word choice) reads fresh bytes from crypto/rand.
// Impossible configurations are rejected with a *ConfigError before any
// output is produced; a failed generation is never returned as a value
// a caller could mistake for a password.
package generator
