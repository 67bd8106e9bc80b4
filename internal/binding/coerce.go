package binding

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// coerceString attempts the canonical parse of a raw string into the
// target type. Returned values use the concrete types Values getters
// expect: int, float64, bool, string, uuid.UUID, time.Time, TimeOfDay,
// Duration.
func coerceString(typ Type, raw string) (any, error) {
	switch typ {
	case TypeString:
		return raw, nil
	case TypeInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		return n, nil
	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		return f, nil
	case TypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		return b, nil
	case TypeUUID:
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		return id, nil
	case TypeDateTime:
		for _, layout := range datetimeLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, nil
			}
		}
		return nil, errors.New("invalid datetime: " + strconv.Quote(raw))
	case TypeDate:
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, err
		}
		return t, nil
	case TypeTimeOfDay:
		return ParseTimeOfDay(raw)
	case TypeDuration:
		return ParseBindDuration(raw)
	default:
		return nil, errors.New("cannot coerce to " + typ.String())
	}
}

// coerceJSON converts a decoded JSON value into the target type. Bodies
// are decoded with json.Number preserved so integers survive intact.
// String values fall back to the string coercion path, which keeps body
// semantics aligned with the string-based sources.
func coerceJSON(typ Type, raw any) (any, error) {
	switch v := raw.(type) {
	case string:
		return coerceString(typ, v)
	case json.Number:
		switch typ {
		case TypeInt:
			n, err := strconv.Atoi(v.String())
			if err != nil {
				return nil, err
			}
			return n, nil
		case TypeFloat:
			return v.Float64()
		case TypeDuration:
			secs, err := v.Float64()
			if err != nil {
				return nil, err
			}
			return Duration(time.Duration(secs * float64(time.Second))), nil
		default:
			return nil, errors.New("got a number, expected " + typ.String())
		}
	case bool:
		if typ == TypeBool {
			return v, nil
		}
		return nil, errors.New("got a boolean, expected " + typ.String())
	case map[string]any:
		if typ == TypeObject {
			return v, nil
		}
		return nil, errors.New("got an object, expected " + typ.String())
	default:
		return nil, errors.New("cannot coerce to " + typ.String())
	}
}
