package util

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// PhoneDigits coerces raw to its string form and keeps only the ASCII digits.
// Numbers are rendered in plain decimal so 1234567890 never becomes 1.23456789e+09.
func PhoneDigits(raw any) string {
	s := phoneText(raw)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// FormatPhone renders a North American number as (AAA)-PPP-SSSS.
// Anything that does not clean down to exactly 10 digits comes back as the bare digits.
func FormatPhone(raw any) string {
	d := PhoneDigits(raw)
	if len(d) != 10 {
		return d
	}
	return "(" + d[:3] + ")-" + d[3:6] + "-" + d[6:]
}

func phoneText(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case json.Number:
		return numberText(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// numberText renders a JSON number without exponent notation.
func numberText(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if f, err := n.Float64(); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return n.String()
}
