package inventory

import "regexp"

var addressPattern = regexp.MustCompile(`^[0-9]{1,3}(\.[0-9]{1,3})*$`)

// Address is a validated network address. The zero value is not usable;
// construct through NewAddress so the text is checked exactly once.
type Address struct {
	text string
}

// NewAddress validates the textual form and returns the address.
func NewAddress(text string) (Address, error) {
	if !addressPattern.MatchString(text) {
		return Address{}, &ValidationError{
			Field:  "address",
			Value:  text,
			Reason: "must be dotted groups of digits, e.g. 192.168.1.1",
		}
	}
	return Address{text: text}, nil
}

func (a Address) String() string {
	return a.text
}
