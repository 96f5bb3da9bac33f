// Package similarity scores how alike two album titles are, on a 0..1 scale.
//
// The default scorer, Ratio, is the classic sequence-matcher ratio
// 2*M/T where M counts characters in greedily found longest matching blocks
// and T is the combined length. Thresholds tuned against that formula keep
// their meaning. Edit-distance and token scorers are available by name for
// lists where a different notion of "close" works better.
//
// All scorers are total, symmetric in intent, and return exactly 1 for
// identical inputs.
package similarity
