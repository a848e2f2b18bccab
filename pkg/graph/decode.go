package graph

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"
)

// Decode maps a raw response body onto target, which must be a non-nil
// pointer. A service error envelope is reported as *ServiceError before any
// structural decoding. Empty JSON objects found where target expects a list
// are read as empty lists. Unknown fields are ignored and missing fields are
// left at their zero value. Any other mismatch is a *DecodeError.
func Decode(text string, target any) error {
	value := reflect.ValueOf(target)
	if value.Kind() != reflect.Pointer || value.IsNil() {
		return &DecodeError{Body: text, Err: ErrNilTarget}
	}

	err := CheckServiceError(text)
	if err != nil {
		return err
	}

	data, err := normalizeLists([]byte(text), value.Elem().Type())
	if err != nil {
		return &DecodeError{Body: text, Err: err}
	}

	err = json.Unmarshal(data, target)
	if err != nil {
		return &DecodeError{Body: text, Err: err}
	}

	return nil
}

// DecodeKeyed decodes a JSON object keyed by object id, as returned by the
// multi-id lookup endpoint.
func DecodeKeyed[T any](text string) (map[string]*T, error) {
	var keyed map[string]*T

	err := Decode(text, &keyed)
	if err != nil {
		return nil, err
	}

	return keyed, nil
}

// DecodeOrdered decodes an id-keyed object and lays the entities out in the
// order of ids. An id missing from the response leaves a nil slot at its
// position.
func DecodeOrdered[T any](text string, ids []string) ([]*T, error) {
	keyed, err := DecodeKeyed[T](text)
	if err != nil {
		return nil, err
	}

	ordered := make([]*T, len(ids))
	for i, id := range ids {
		ordered[i] = keyed[id]
	}

	return ordered, nil
}

// ParseBool reads the plain-text boolean returned by delete-style calls.
// Only "true" (case-insensitive, surrounding space ignored) and a
// {"success":true} object are true; any other body is false.
func ParseBool(text string) bool {
	trimmed := strings.TrimSpace(text)
	if strings.EqualFold(trimmed, "true") {
		return true
	}

	if strings.HasPrefix(trimmed, "{") {
		var envelope struct {
			Success bool `json:"success"`
		}

		if json.Unmarshal([]byte(trimmed), &envelope) == nil {
			return envelope.Success
		}
	}

	return false
}

type graphErrorBody struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode"`
	FbtraceID    string `json:"fbtrace_id"`
}

// CheckServiceError inspects a body for one of the service's error
// envelopes and returns it as *ServiceError. Bodies that are not error
// envelopes, including malformed JSON, yield nil.
func CheckServiceError(text string) error {
	trimmed := bytes.TrimSpace([]byte(text))
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	var envelope struct {
		Error     json.RawMessage `json:"error"`
		ErrorCode *int            `json:"error_code"`
		ErrorMsg  string          `json:"error_msg"`
	}

	if json.Unmarshal(trimmed, &envelope) != nil {
		return nil
	}

	if len(envelope.Error) > 0 && envelope.Error[0] == '{' {
		var body graphErrorBody
		if json.Unmarshal(envelope.Error, &body) == nil && (body.Message != "" || body.Type != "") {
			return &ServiceError{
				Code:    body.Code,
				Subcode: body.ErrorSubcode,
				Type:    body.Type,
				Message: body.Message,
				TraceID: body.FbtraceID,
			}
		}
	}

	if envelope.ErrorCode != nil {
		return &ServiceError{
			Code:    *envelope.ErrorCode,
			Message: envelope.ErrorMsg,
		}
	}

	return nil
}

var errTrailingData = errors.New("unexpected data after top-level value")

var unmarshalerType = reflect.TypeFor[json.Unmarshaler]()

// normalizeLists rewrites every empty object that sits where typ expects a
// list into an empty array. The original bytes are returned when nothing
// needs rewriting.
func normalizeLists(data []byte, typ reflect.Type) ([]byte, error) {
	if !bytes.Contains(data, []byte("{")) {
		return data, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var tree any

	err := decoder.Decode(&tree)
	if err != nil {
		return nil, err
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}

	normalized, changed := normalizeValue(tree, typ)
	if !changed {
		return data, nil
	}

	return json.Marshal(normalized)
}

func normalizeValue(value any, typ reflect.Type) (any, bool) {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	if typ.Kind() != reflect.Slice && typ.Kind() != reflect.Array && reflect.PointerTo(typ).Implements(unmarshalerType) {
		return value, false
	}

	switch typ.Kind() {
	case reflect.Slice, reflect.Array:
		if typ.Elem().Kind() == reflect.Uint8 {
			return value, false
		}

		switch node := value.(type) {
		case map[string]any:
			if len(node) == 0 {
				return []any{}, true
			}
		case []any:
			changed := false

			for i, elem := range node {
				if updated, ok := normalizeValue(elem, typ.Elem()); ok {
					node[i] = updated
					changed = true
				}
			}

			return node, changed
		}
	case reflect.Struct:
		node, ok := value.(map[string]any)
		if !ok {
			return value, false
		}

		fields := fieldsOf(typ)
		changed := false

		for key, elem := range node {
			fieldType, found := fields.lookup(key)
			if !found {
				continue
			}

			if updated, ok := normalizeValue(elem, fieldType); ok {
				node[key] = updated
				changed = true
			}
		}

		return node, changed
	case reflect.Map:
		node, ok := value.(map[string]any)
		if !ok {
			return value, false
		}

		changed := false

		for key, elem := range node {
			if updated, ok := normalizeValue(elem, typ.Elem()); ok {
				node[key] = updated
				changed = true
			}
		}

		return node, changed
	}

	return value, false
}

type structFields struct {
	exact  map[string]reflect.Type
	folded map[string]reflect.Type
}

func (f structFields) lookup(key string) (reflect.Type, bool) {
	if typ, ok := f.exact[key]; ok {
		return typ, true
	}

	typ, ok := f.folded[strings.ToLower(key)]

	return typ, ok
}

var fieldCache sync.Map

func fieldsOf(typ reflect.Type) structFields {
	if cached, ok := fieldCache.Load(typ); ok {
		return cached.(structFields)
	}

	fields := structFields{
		exact:  map[string]reflect.Type{},
		folded: map[string]reflect.Type{},
	}
	collectFields(typ, fields)

	fieldCache.Store(typ, fields)

	return fields
}

func collectFields(typ reflect.Type, fields structFields) {
	for i := range typ.NumField() {
		field := typ.Field(i)

		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}

		name, _, _ := strings.Cut(tag, ",")

		if field.Anonymous && name == "" {
			embedded := field.Type
			if embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}

			if embedded.Kind() == reflect.Struct {
				collectFields(embedded, fields)

				continue
			}
		}

		if !field.IsExported() {
			continue
		}

		if name == "" {
			name = field.Name
		}

		if _, exists := fields.exact[name]; !exists {
			fields.exact[name] = field.Type
		}

		folded := strings.ToLower(name)
		if _, exists := fields.folded[folded]; !exists {
			fields.folded[folded] = field.Type
		}
	}
}
