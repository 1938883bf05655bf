package expr

import (
	"fmt"

	"github.com/specialistvlad/espgen/internal/model"
)

// IPAddressType is the runtime's address class.
var IPAddressType = Global.Class("IPAddress")

// F pairs a member name with its value for BuildStruct.
func F(name string, value Expression) FieldValue {
	return FieldValue{Name: name, Value: value}
}

// BuildStruct creates a struct initializer. Fields are kept exactly in the
// order given; the builder neither sorts nor fills in missing members.
func BuildStruct(t Type, fields ...FieldValue) *StructInit {
	cp := make([]FieldValue, len(fields))
	copy(cp, fields)
	return &StructInit{Type: t, Fields: cp}
}

// BuildCall creates a call of method on target with ordered arguments.
func BuildCall(target Expression, method string, args ...Expression) *Call {
	cp := make([]Expression, len(args))
	copy(cp, args)
	return &Call{Receiver: target, Method: method, Args: cp}
}

// New creates a construction of t from positional arguments.
func New(t Type, args ...Expression) *Construct {
	cp := make([]Expression, len(args))
	copy(cp, args)
	return &Construct{Type: t, Args: cp}
}

// IPAddress converts an optional validated address. An absent address
// becomes IPAddress(0, 0, 0, 0) since the runtime type has no empty state.
func IPAddress(v model.Value, present bool) (Expression, error) {
	var ip [4]byte
	if present {
		var ok bool
		if ip, ok = v.AsIPv4(); !ok {
			return nil, fmt.Errorf("expected IPv4 address, got %s", v.Kind())
		}
	}
	return New(IPAddressType, Int(int64(ip[0])), Int(int64(ip[1])), Int(int64(ip[2])), Int(int64(ip[3]))), nil
}

// MACHex renders an optional hardware address as a 64-bit hex literal. An
// absent address becomes the all-zero address.
func MACHex(v model.Value, present bool) (Expression, error) {
	var mac [6]byte
	if present {
		var ok bool
		if mac, ok = v.AsMAC(); !ok {
			return nil, fmt.Errorf("expected MAC address, got %s", v.Kind())
		}
	}
	return Raw(fmt.Sprintf("0x%02X%02X%02X%02X%02X%02XULL", mac[0], mac[1], mac[2], mac[3], mac[4], mac[5])), nil
}

// FromValue converts a validated scalar into a literal.
func FromValue(v model.Value) (Expression, error) {
	switch v.Kind() {
	case model.KindNull:
		return Null(), nil
	case model.KindString:
		s, _ := v.AsString()
		return String(s), nil
	case model.KindInt:
		i, _ := v.AsInt()
		return Int(i), nil
	case model.KindBool:
		b, _ := v.AsBool()
		return Bool(b), nil
	case model.KindIPv4:
		return IPAddress(v, true)
	case model.KindMAC:
		return MACHex(v, true)
	}
	return nil, fmt.Errorf("cannot convert %s to an expression", v.Kind())
}

// Get converts the value under key of a validated mapping, or returns def
// when the key is absent.
func Get(m model.Value, key string, def Expression) (Expression, error) {
	v, ok := m.Get(key)
	if !ok {
		return def, nil
	}
	return FromValue(v)
}
