package domain

import (
	"bytes"
	"encoding/json"

	"advocates/internal/util"
)

type PhoneKind int

const (
	PhoneText PhoneKind = iota
	PhoneNumeric
)

// Phone arrives as either a JSON string or a JSON number. It is reduced to its
// digits on decode, so everything downstream sees one canonical form.
// A number that lost a leading zero upstream stays short; nothing here repairs it.
type Phone struct {
	Kind   PhoneKind
	Digits string
}

func NewPhone(raw any) Phone {
	kind := PhoneText
	switch raw.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, json.Number:
		kind = PhoneNumeric
	}
	return Phone{Kind: kind, Digits: util.PhoneDigits(raw)}
}

func (p Phone) String() string { return p.Digits }

// Display is the table form, (AAA)-PPP-SSSS for ten digits.
func (p Phone) Display() string { return util.FormatPhone(p.Digits) }

func (p *Phone) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*p = Phone{}
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = Phone{Kind: PhoneText, Digits: util.PhoneDigits(s)}
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*p = Phone{Kind: PhoneNumeric, Digits: util.PhoneDigits(n)}
	default:
		// bools, objects: coerce the raw token rather than reject the record
		*p = Phone{Kind: PhoneText, Digits: util.PhoneDigits(string(b))}
	}
	return nil
}

func (p Phone) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Digits)
}
