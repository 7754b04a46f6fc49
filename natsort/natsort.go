package natsort

import "sort"

// Compare compares a and b in natural order, ignoring ASCII letter case.
// The result is negative if a < b, zero if a == b and positive if a > b.
func Compare(a, b string) int {
	return compare(a, b, true)
}

// CompareCase compares a and b in natural order with letter case significant.
func CompareCase(a, b string) int {
	return compare(a, b, false)
}

// Less reports whether a sorts before b under Compare.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Strings sorts s in place in natural order. The sort is stable.
func Strings(s []string) {
	sort.SliceStable(s, func(i, j int) bool { return Less(s[i], s[j]) })
}

func compare(a, b string, fold bool) int {
	ai, bi := 0, 0
	for {
		ca, cb := byteAt(a, ai), byteAt(b, bi)

		for isSpace(ca) {
			ai++
			ca = byteAt(a, ai)
		}
		for isSpace(cb) {
			bi++
			cb = byteAt(b, bi)
		}

		if isDigit(ca) && isDigit(cb) {
			var result int
			if ca == '0' || cb == '0' {
				result = compareFractional(a[ai:], b[bi:])
			} else {
				result = compareInteger(a[ai:], b[bi:])
			}
			if result != 0 {
				return result
			}
		}

		if ca == 0 && cb == 0 {
			return 0
		}

		if fold {
			ca, cb = toUpper(ca), toUpper(cb)
		}
		if ca < cb {
			return -1
		}
		if ca > cb {
			return 1
		}

		ai++
		bi++
	}
}

// compareInteger compares two right-aligned digit runs: the longer run is greater,
// and for runs of equal length the first differing digit decides.
func compareInteger(a, b string) int {
	bias := 0
	for i := 0; ; i++ {
		ca, cb := byteAt(a, i), byteAt(b, i)
		da, db := isDigit(ca), isDigit(cb)

		switch {
		case !da && !db:
			return bias
		case !da:
			return -1
		case !db:
			return 1
		case ca < cb:
			if bias == 0 {
				bias = -1
			}
		case ca > cb:
			if bias == 0 {
				bias = 1
			}
		}
	}
}

// compareFractional compares two left-aligned digit runs: the first differing digit decides.
func compareFractional(a, b string) int {
	for i := 0; ; i++ {
		ca, cb := byteAt(a, i), byteAt(b, i)
		da, db := isDigit(ca), isDigit(cb)

		switch {
		case !da && !db:
			return 0
		case !da:
			return -1
		case !db:
			return 1
		case ca < cb:
			return -1
		case ca > cb:
			return 1
		}
	}
}

// byteAt returns s[i], or 0 past the end of s.
func byteAt(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
