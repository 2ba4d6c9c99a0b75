// Package solver bridges to the external Connect Four position analyser.
//
// The analyser is an opaque oracle: a local binary that reads one position
// string on stdin and writes one line of scores on stdout. Every call spawns
// a fresh process; there is no pooling, caching, or retrying.
//
// Protocol:
//
// The position (1-based column digits, one per ply) is written followed by a
// newline. The single output line must split into at least 8 whitespace
// fields: the first echoes the position and is discarded, the next seven are
// the scores for columns 1..7. A score of -1000 marks a column that is not a
// legal continuation; a token that does not parse as an integer yields a
// null score. Nonzero exit or short output is an error, never a score.
//
// Usage:
//
//	s := solver.New("./c4solver")
//	analysis, err := s.Analyse(ctx, "4455")
package solver
