package store

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mitchellh/mapstructure"
)

var timeType = reflect.TypeOf(time.Time{})

// decode merges input into target. Only keys present in input are written,
// so decoding into a cached instance is a field merge. An explicit nil
// resets its field to the zero value.
func decode(input map[string]any, target any) error {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(timeHook),
		WeaklyTypedInput: true,
		ZeroFields:       true,
		TagName:          "json",
		Result:           target,
	})
	if err != nil {
		return err
	}
	return d.Decode(input)
}

// timeHook accepts timestamps in any layout the server emits, plus unix
// seconds.
func timeHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != timeType {
		return data, nil
	}

	switch v := data.(type) {
	case string:
		if v == "" {
			return time.Time{}, nil
		}
		t, err := dateparse.ParseAny(v)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp %q: %w", v, err)
		}
		return t, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return nil, fmt.Errorf("invalid unix timestamp %q: %w", v, err)
		}
		return time.Unix(n, 0).UTC(), nil
	case float64:
		return time.Unix(int64(v), 0).UTC(), nil
	}

	return data, nil
}

func identityString(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		return id, true
	case json.Number:
		return id.String(), true
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), true
	case int:
		return strconv.Itoa(id), true
	case int64:
		return strconv.FormatInt(id, 10), true
	default:
		return "", false
	}
}
