package schema

import (
	"github.com/invopop/jsonschema"
	"github.com/specialistvlad/espgen/internal/validate"
)

// Scalar wraps a primitive validator together with the JSON schema that
// documents what it accepts.
func Scalar(fn validate.Func, doc *jsonschema.Schema) Validator {
	return &primitive{fn: fn, doc: func() *jsonschema.Schema {
		cp := *doc
		return &cp
	}}
}

func uintPtr(n uint64) *uint64 { return &n }

// Documented scalar validators shared by component schemas.
var (
	String      = Scalar(validate.String, &jsonschema.Schema{Type: "string"})
	Boolean     = Scalar(validate.Boolean, &jsonschema.Schema{Type: "boolean"})
	PositiveInt = Scalar(validate.PositiveInt, &jsonschema.Schema{Type: "integer", Minimum: "0"})
	Identifier  = Scalar(validate.Identifier, &jsonschema.Schema{
		Type:    "string",
		Pattern: `^[a-zA-Z_][a-zA-Z0-9_]*$`,
	})
	Hostname = Scalar(validate.Hostname, &jsonschema.Schema{
		Type:      "string",
		Pattern:   `^[a-zA-Z0-9-]+$`,
		MinLength: uintPtr(1),
		MaxLength: uintPtr(63),
	})
	DomainName = Scalar(validate.DomainName, &jsonschema.Schema{
		Type:      "string",
		Pattern:   `^\.[a-zA-Z0-9._-]*$`,
		MaxLength: uintPtr(253),
	})
	SSID = Scalar(validate.SSID, &jsonschema.Schema{
		Type:      "string",
		MinLength: uintPtr(1),
		MaxLength: uintPtr(31),
	})
	Password = Scalar(validate.Password, &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{
			{Type: "string", MaxLength: uintPtr(0)},
			{Type: "string", MinLength: uintPtr(8), MaxLength: uintPtr(63)},
		},
	})
	Channel    = Scalar(validate.Channel, &jsonschema.Schema{Type: "integer", Minimum: "1", Maximum: "14"})
	IPv4       = Scalar(validate.IPv4, &jsonschema.Schema{Type: "string", Format: "ipv4"})
	MACAddress = Scalar(validate.MACAddress, &jsonschema.Schema{
		Type:    "string",
		Pattern: `^[0-9a-fA-F]{2}(:[0-9a-fA-F]{2}){5}$`,
	})
)
