package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/espgen/internal/model"
)

// IPv4 parses a dotted quad into a typed IPv4 leaf.
func IPv4(v model.Value) (model.Value, error) {
	if v.Kind() == model.KindIPv4 {
		return v, nil
	}
	v, err := String(v)
	if err != nil {
		return model.Value{}, err
	}
	s, _ := v.AsString()
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return model.Value{}, fmt.Errorf("expected dot-separated IPv4 address, got %q", s)
	}
	var ip [4]byte
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return model.Value{}, fmt.Errorf("%q is not a valid IPv4 address: octet %q must be a number between 0 and 255", s, part)
		}
		ip[i] = byte(n)
	}
	return model.IPv4(ip).WithPos(v.Pos()), nil
}

// MACAddress parses `XX:XX:XX:XX:XX:XX` into a typed MAC leaf.
func MACAddress(v model.Value) (model.Value, error) {
	if v.Kind() == model.KindMAC {
		return v, nil
	}
	v, err := String(v)
	if err != nil {
		return model.Value{}, err
	}
	s, _ := v.AsString()
	parts := strings.Split(s, ":")
	if len(parts) != 6 {
		return model.Value{}, fmt.Errorf("MAC address must be format XX:XX:XX:XX:XX:XX, got %q", s)
	}
	var mac [6]byte
	for i, part := range parts {
		if len(part) != 2 {
			return model.Value{}, fmt.Errorf("MAC address parts must be two hex digits, got %q", part)
		}
		n, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return model.Value{}, fmt.Errorf("MAC address parts must be hexadecimal values from 00 to FF, got %q", part)
		}
		mac[i] = byte(n)
	}
	return model.MAC(mac).WithPos(v.Pos()), nil
}
