// Package natsort implements natural-order string comparison.
//
// Natural order compares embedded runs of decimal digits by their numeric value instead of
// byte by byte, so "img2" sorts before "img10". Whitespace is skipped, and runs that start with
// a leading zero are compared as fractional parts ("1.010" sorts before "1.02").
//
// Compare folds ASCII letter case and is the comparator used by strqueue. CompareCase keeps
// case significant.
//
// Usage Example:
//
//	names := []string{"img12", "IMG10", "img2", "img1"}
//	natsort.Strings(names)
//	// names == []string{"img1", "img2", "IMG10", "img12"}
package natsort
