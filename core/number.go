package core

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a float64 that never fails to decode: numbers, numeric strings
// ("1 500,50" included) and anything else (which becomes 0) are accepted.
type Number float64

// Int is the integer counterpart of Number; decimals are truncated.
type Int int

func (n Number) Float() float64 { return float64(n) }

func (n Int) Float() float64 { return float64(n) }

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number(parseLenient(data))
	return nil
}

func (n *Int) UnmarshalJSON(data []byte) error {
	*n = Int(math.Trunc(parseLenient(data)))
	return nil
}

// ParseNumber parses a form value the lenient way; invalid input yields 0.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "", ",", ".").Replace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func parseLenient(data []byte) float64 {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return 0
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0
		}
		return ParseNumber(s)
	case 'n', 't', 'f', '{', '[':
		return 0
	default:
		return ParseNumber(string(data))
	}
}

// FormatEuros renders an amount the French way, rounded to the euro: "40 000 €".
func FormatEuros(amount float64) string {
	digits := strconv.FormatInt(int64(math.Abs(math.Round(amount))), 10)
	var b strings.Builder
	if math.Round(amount) < 0 {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}
	b.WriteString(" €")
	return b.String()
}
