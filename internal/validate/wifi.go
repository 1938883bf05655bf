package validate

import (
	"errors"
	"unicode/utf8"

	"github.com/specialistvlad/espgen/internal/model"
)

// Password accepts the empty string, meaning an open network, or a WPA
// passphrase of 8 to 63 characters.
func Password(v model.Value) (model.Value, error) {
	v, err := String(v)
	if err != nil {
		return model.Value{}, err
	}
	s, _ := v.AsString()
	if s == "" {
		return v, nil
	}
	n := utf8.RuneCountInString(s)
	if n < 8 {
		return model.Value{}, errors.New("WPA password must be at least 8 characters long")
	}
	if n > 63 {
		return model.Value{}, errors.New("WPA password must be at most 63 characters long")
	}
	return v, nil
}

// Channel accepts WiFi channels 1 through 14.
func Channel(v model.Value) (model.Value, error) {
	v, err := Int(v)
	if err != nil {
		return model.Value{}, err
	}
	c, _ := v.AsInt()
	if c < 1 {
		return model.Value{}, errors.New("minimum channel is 1")
	}
	if c > 14 {
		return model.Value{}, errors.New("maximum channel is 14")
	}
	return v, nil
}
