package env

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// MarshalEnv renders one or more env-tagged structs (or pointers to them) as
// .env content. Empty strings without an envDefault are omitted so the
// variable stays unset on the next load.
func MarshalEnv(cfgs ...any) (string, error) {
	var lines []string
	for _, c := range cfgs {
		v := reflect.ValueOf(c)
		for v.Kind() == reflect.Ptr {
			if v.IsNil() {
				return "", fmt.Errorf("env: nil %T", c)
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return "", fmt.Errorf("env: expected struct, got %s", v.Kind())
		}

		structLines, err := marshalStruct(v)
		if err != nil {
			return "", err
		}
		lines = append(lines, structLines...)
	}

	if len(lines) == 0 {
		return "", nil
	}
	return strings.Join(lines, "\n") + "\n", nil
}

func marshalStruct(v reflect.Value) ([]string, error) {
	var lines []string
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		// "KEY,required,notEmpty" -> KEY
		key, _, _ := strings.Cut(field.Tag.Get("env"), ",")
		if key == "" {
			continue
		}

		val := v.Field(i)
		if val.Kind() == reflect.String && val.String() == "" {
			if _, hasDefault := field.Tag.Lookup("envDefault"); !hasDefault {
				continue
			}
		}

		str, err := formatValue(val)
		if err != nil {
			return nil, fmt.Errorf("env: field %s: %w", field.Name, err)
		}
		lines = append(lines, fmt.Sprintf("%s=%s", key, quote(str)))
	}
	return lines, nil
}

func formatValue(v reflect.Value) (string, error) {
	if v.Type() == durationType {
		return time.Duration(v.Int()).String(), nil
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	default:
		return "", fmt.Errorf("unsupported kind %s", v.Kind())
	}
}

// quote wraps values that godotenv would otherwise split or truncate.
func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " #\"'\n\t") {
		return strconv.Quote(s)
	}
	return s
}
