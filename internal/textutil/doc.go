// Package textutil provides the text canonicalization used for duplicate
// detection, plus token fingerprints for bag-of-words comparisons.
//
// The primary use cases are:
//   - Normalizing "Artist - Album" lines so case, accents, and spacing noise
//     do not affect comparison
//   - Creating token-based fingerprints from normalized text
//   - Computing cosine similarity between fingerprints
//
// Normalization lowercases with locale-independent rules, decomposes to NFD,
// drops nonspacing marks, and collapses whitespace. It is idempotent and safe
// for concurrent use.
package textutil
