package utils

import "strconv"

func RemoveEmptyStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if s != "" {
			result = append(result, s)
		}
	}

	return result
}

// FormatThousands renders n with comma separators, e.g. 1234567 -> "1,234,567".
func FormatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)

	start := 0
	if s[0] == '-' {
		start = 1
	}

	digits := len(s) - start
	if digits <= 3 {
		return s
	}

	var out []byte
	out = append(out, s[:start]...)
	first := digits % 3
	if first == 0 {
		first = 3
	}
	out = append(out, s[start:start+first]...)
	for i := start + first; i < len(s); i += 3 {
		out = append(out, ',')
		out = append(out, s[i:i+3]...)
	}

	return string(out)
}
