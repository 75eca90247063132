package templates

import (
	"strconv"
	"strings"
)

// prefixedStrings renders "p0, p1, ..., pN-1".
func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// pairedStrings renders a parameter list "v0 T0, v1 T1, ...".
func pairedStrings(namePrefix, typePrefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		idx := strconv.Itoa(i)
		sb.WriteString(namePrefix)
		sb.WriteString(idx)
		sb.WriteByte(' ')
		sb.WriteString(typePrefix)
		sb.WriteString(idx)
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
