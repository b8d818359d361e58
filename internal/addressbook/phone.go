package addressbook

import "fmt"

// Phone is a value object holding a validated phone number: exactly
// 10 ASCII digits, no separators or whitespace. Always valid in
// memory — use NewPhone to construct.
type Phone struct {
	value string
}

// NewPhone creates a Phone from a raw string, validating the
// 10-digit format.
func NewPhone(raw string) (Phone, error) {
	if len(raw) != 10 {
		return Phone{}, fmt.Errorf("%q: %w", raw, ErrInvalidPhone)
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return Phone{}, fmt.Errorf("%q: %w", raw, ErrInvalidPhone)
		}
	}
	return Phone{value: raw}, nil
}

// String returns the phone number digits.
func (p Phone) String() string { return p.value }

// Equal reports whether two phone numbers have the same value.
func (p Phone) Equal(other Phone) bool { return p.value == other.value }
