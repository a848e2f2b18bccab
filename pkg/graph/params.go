package graph

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Param is a single name/value request parameter.
type Param struct {
	Name  string
	Value string
}

// Params is an ordered list of request parameters. Unlike url.Values it
// keeps insertion order and allows duplicate names.
type Params []Param

// NewParams builds Params from alternating name/value strings. A trailing
// name without a value is ignored.
func NewParams(pairs ...string) Params {
	params := make(Params, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		params = append(params, Param{Name: pairs[i], Value: pairs[i+1]})
	}

	return params
}

// Add appends a parameter and returns the extended list.
func (p Params) Add(name, value string) Params {
	return append(p, Param{Name: name, Value: value})
}

// With returns a copy of p extended with other.
func (p Params) With(other ...Param) Params {
	out := make(Params, 0, len(p)+len(other))
	out = append(out, p...)

	return append(out, other...)
}

// Get returns the first value for name.
func (p Params) Get(name string) string {
	for _, param := range p {
		if param.Name == name {
			return param.Value
		}
	}

	return ""
}

// Has reports whether a parameter named name is present.
func (p Params) Has(name string) bool {
	for _, param := range p {
		if param.Name == name {
			return true
		}
	}

	return false
}

// Encode renders the parameters as a URL-encoded string in list order.
func (p Params) Encode() string {
	var builder strings.Builder

	for i, param := range p {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(param.Name))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(param.Value))
	}

	return builder.String()
}

// Values converts to url.Values. Order between names is lost.
func (p Params) Values() url.Values {
	values := make(url.Values, len(p))
	for _, param := range p {
		values.Add(param.Name, param.Value)
	}

	return values
}

// Masked returns a copy with the value of each named parameter replaced,
// for logging.
func (p Params) Masked(names ...string) Params {
	out := make(Params, len(p))
	copy(out, p)

	for i := range out {
		for _, name := range names {
			if out[i].Name == name {
				out[i].Value = "***"
			}
		}
	}

	return out
}

// FormParams assembles the parameters of a write operation from a struct
// whose fields carry `form:"name"` tags. Fields are emitted in declaration
// order; zero values and nil pointers are omitted. Tagged fields may be
// strings, booleans, integers, pointers to those, or any value implementing
// fmt.Stringer.
func FormParams(v any) (Params, error) {
	value := reflect.ValueOf(v)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return Params{}, nil
		}

		value = value.Elem()
	}

	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotAFormStruct, value.Kind())
	}

	typ := value.Type()
	params := Params{}

	for i := range typ.NumField() {
		field := typ.Field(i)

		name, ok := field.Tag.Lookup("form")
		if !ok || name == "-" || !field.IsExported() {
			continue
		}

		rendered, present, err := formValue(value.Field(i))
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}

		if present {
			params = params.Add(name, rendered)
		}
	}

	return params, nil
}

func formValue(field reflect.Value) (string, bool, error) {
	if field.Kind() == reflect.Pointer {
		if field.IsNil() {
			return "", false, nil
		}

		field = field.Elem()
	} else if field.IsZero() {
		return "", false, nil
	}

	if stringer, ok := field.Interface().(fmt.Stringer); ok {
		return stringer.String(), true, nil
	}

	switch field.Kind() {
	case reflect.String:
		return field.String(), true, nil
	case reflect.Bool:
		return strconv.FormatBool(field.Bool()), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(field.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(field.Uint(), 10), true, nil
	default:
		return "", false, fmt.Errorf("%w: %s", ErrUnsupportedFormField, field.Kind())
	}
}

// Clone returns an independent copy of p.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}

	out := make(Params, len(p))
	copy(out, p)

	return out
}
