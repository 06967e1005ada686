package util

import "strings"

func Max(a, b int) int {
	if a < b {
		return b
	}
	return a
}

func Min(a, b int) int {
	if a > b {
		return b
	}
	return a
}

// JoinStringers joins the String() of each element with sep.
func JoinStringers[T interface{ String() string }](elems []T, sep string) string {
	strs := make([]string, len(elems))
	for i, el := range elems {
		strs[i] = el.String()
	}
	return strings.Join(strs, sep)
}
