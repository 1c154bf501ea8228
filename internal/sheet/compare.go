package sheet

import (
	"cmp"
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// comparator orders cell values for column sort.
type comparator struct {
	collator *collate.Collator
}

func newComparator() *comparator {
	return &comparator{collator: collate.New(language.Und)}
}

func (c *comparator) compare(a, b string) int {
	aBlank := strings.TrimSpace(a) == ""
	bBlank := strings.TrimSpace(b) == ""
	switch {
	case aBlank && bBlank:
		return 0
	case aBlank:
		return 1
	case bBlank:
		return -1
	}

	an, aNum := Numeric(a)
	bn, bNum := Numeric(b)
	switch {
	case aNum && bNum:
		return cmp.Compare(an, bn)
	case aNum:
		return -1
	case bNum:
		return 1
	}

	return c.collator.CompareString(a, b)
}

// Numeric reports the numeric value of a cell, if it has one. It accepts
// what a JavaScript Number() conversion accepts: decimal and exponent forms,
// unsigned 0x, 0o and 0b integers, and Infinity with an optional sign.
// Surrounding whitespace is ignored. NaN is not numeric.
func Numeric(v string) (float64, bool) {
	s := strings.TrimSpace(v)
	switch s {
	case "":
		return 0, false
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 2 && s[0] == '0' {
		if base := radix(s[1]); base != 0 {
			digits := s[2:]
			if digits[0] == '+' || digits[0] == '-' {
				return 0, false
			}
			n, ok := new(big.Int).SetString(digits, base)
			if !ok {
				return 0, false
			}
			f, _ := new(big.Float).SetInt(n).Float64()
			return f, true
		}
	}

	if strings.Trim(s, "0123456789.eE+-") != "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

func radix(c byte) int {
	switch c {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}
