package router

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

// bindQuery fills obj from URL query parameters, matching fields by their
// json tag. Only flat structs of strings, integers, and bools are supported,
// which covers every GET request model of this API.
func bindQuery(r *http.Request, obj any) error {
	query := r.URL.Query()
	val := reflect.ValueOf(obj).Elem()
	typ := val.Type()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			continue
		}

		raw := query.Get(name)
		if raw == "" {
			continue
		}

		fv := val.Field(i)
		switch fv.Kind() {
		case reflect.String:
			fv.SetString(raw)

		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer for %s: %w", name, err)
			}
			fv.SetInt(n)

		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			n, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer for %s: %w", name, err)
			}
			fv.SetUint(n)

		case reflect.Bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("invalid boolean for %s: %w", name, err)
			}
			fv.SetBool(b)

		default:
			return fmt.Errorf("unsupported query field %s", name)
		}
	}

	return nil
}
