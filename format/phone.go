package format

import "strings"

// FormatPhoneNumber formats a 10-digit phone number as "(AAA) BBB-CCCC".
// Every non-digit character is ignored. It returns false unless exactly 10 digits remain.
func FormatPhoneNumber(input string) (string, bool) {
	digits := make([]byte, 0, 10)
	for i := 0; i < len(input); i++ {
		if c := input[i]; '0' <= c && c <= '9' {
			digits = append(digits, c)
		}
	}
	if len(digits) != 10 {
		return "", false
	}

	var b strings.Builder
	b.Grow(14)
	b.WriteByte('(')
	b.Write(digits[0:3])
	b.WriteString(") ")
	b.Write(digits[3:6])
	b.WriteByte('-')
	b.Write(digits[6:10])
	return b.String(), true
}
