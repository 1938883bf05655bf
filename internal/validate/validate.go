package validate

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/specialistvlad/espgen/internal/model"
)

// Func validates one value. Implementations must be pure and must accept
// their own output unchanged.
type Func func(model.Value) (model.Value, error)

// Chain runs validators left to right, feeding each the previous output.
func Chain(fns ...Func) Func {
	return func(v model.Value) (model.Value, error) {
		var err error
		for _, fn := range fns {
			if v, err = fn(v); err != nil {
				return model.Value{}, err
			}
		}
		return v, nil
	}
}

// Invalid returns a validator that always fails with msg.
func Invalid(msg string) Func {
	return func(model.Value) (model.Value, error) {
		return model.Value{}, errors.New(msg)
	}
}

// Any accepts every value unchanged.
func Any(v model.Value) (model.Value, error) {
	return v, nil
}

// String accepts any scalar and converts it to a string. Mappings, lists and
// null are rejected.
func String(v model.Value) (model.Value, error) {
	switch v.Kind() {
	case model.KindString:
		return v, nil
	case model.KindNull:
		return model.Value{}, errors.New("string value is None")
	case model.KindMap, model.KindList:
		return model.Value{}, errors.New("string value cannot be dictionary or list")
	}
	return model.String(v.String()).WithPos(v.Pos()), nil
}

// NonEmptyString accepts strings with at least one character.
func NonEmptyString(v model.Value) (model.Value, error) {
	v, err := String(v)
	if err != nil {
		return model.Value{}, err
	}
	if s, _ := v.AsString(); s == "" {
		return model.Value{}, errors.New("string value cannot be empty")
	}
	return v, nil
}

// StringLength accepts strings whose length is within [min, max].
func StringLength(min, max int) Func {
	return func(v model.Value) (model.Value, error) {
		v, err := String(v)
		if err != nil {
			return model.Value{}, err
		}
		s, _ := v.AsString()
		n := utf8.RuneCountInString(s)
		if n < min {
			return model.Value{}, fmt.Errorf("length of value must be at least %d", min)
		}
		if n > max {
			return model.Value{}, fmt.Errorf("length of value must be at most %d", max)
		}
		return v, nil
	}
}

// Int coerces a value to an integer. Integral floats and decimal strings are
// accepted.
func Int(v model.Value) (model.Value, error) {
	switch v.Kind() {
	case model.KindInt:
		return v, nil
	case model.KindFloat:
		f, _ := v.AsFloat()
		if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < math.MaxInt64 {
			return model.Int(int64(f)).WithPos(v.Pos()), nil
		}
	case model.KindString:
		s, _ := v.AsString()
		if i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return model.Int(i).WithPos(v.Pos()), nil
		}
	}
	return model.Value{}, fmt.Errorf("expected integer, got %s", describe(v))
}

// PositiveInt accepts integers greater than or equal to zero.
func PositiveInt(v model.Value) (model.Value, error) {
	v, err := Int(v)
	if err != nil {
		return model.Value{}, err
	}
	if i, _ := v.AsInt(); i < 0 {
		return model.Value{}, errors.New("value must be at least 0")
	}
	return v, nil
}

// IntRange accepts integers within [min, max].
func IntRange(min, max int64) Func {
	return func(v model.Value) (model.Value, error) {
		v, err := Int(v)
		if err != nil {
			return model.Value{}, err
		}
		i, _ := v.AsInt()
		if i < min {
			return model.Value{}, fmt.Errorf("value must be at least %d", min)
		}
		if i > max {
			return model.Value{}, fmt.Errorf("value must be at most %d", max)
		}
		return v, nil
	}
}

// Boolean accepts booleans and their common string spellings.
func Boolean(v model.Value) (model.Value, error) {
	if v.Kind() == model.KindBool {
		return v, nil
	}
	if s, ok := v.AsString(); ok {
		switch strings.ToLower(s) {
		case "true", "yes", "on", "enable":
			return model.Bool(true).WithPos(v.Pos()), nil
		case "false", "no", "off", "disable":
			return model.Bool(false).WithPos(v.Pos()), nil
		}
	}
	return model.Value{}, fmt.Errorf("expected boolean, got %s", describe(v))
}

// EnsureList wraps a non-list value into a one-element list. Null becomes
// the empty list.
func EnsureList(v model.Value) (model.Value, error) {
	switch v.Kind() {
	case model.KindList:
		return v, nil
	case model.KindNull:
		return model.List().WithPos(v.Pos()), nil
	}
	return model.List(v).WithPos(v.Pos()), nil
}

func describe(v model.Value) string {
	if v.Kind().IsScalar() && v.Kind() != model.KindNull {
		return fmt.Sprintf("%s %q", v.Kind(), v.String())
	}
	return v.Kind().String()
}
