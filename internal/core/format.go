// Package core defines the domain model of the coffee tracker and the
// display formatting used at the rendering boundary.
//
// Aggregation never rounds; these helpers are the only place numbers are
// shaped for humans.
package core

import (
	"strconv"
	"strings"
)

// FormatNumber renders a value with at most two decimals, no trailing
// zeros, and thousands separators ("1,234.5").
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		s = "0"
	}
	return groupThousands(s)
}

// FormatMoney renders a EUR amount with exactly two decimals ("€1,234.50").
func FormatMoney(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "€" + groupThousands(strconv.FormatFloat(v, 'f', 2, 64))
}

// FormatCapsules renders a capsule count with its unit suffix.
func FormatCapsules(v float64) string {
	return FormatNumber(v) + " caps"
}

// FormatLiters renders a milk volume with its unit suffix.
func FormatLiters(v float64) string {
	return FormatNumber(v) + " L"
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}
	out := intPart + frac
	if neg {
		out = "-" + out
	}
	return out
}
