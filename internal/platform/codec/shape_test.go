package codec

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testShape = MustShape("record",
	Field{Key: "name", Kind: KindString},
	Field{Key: "age", Kind: KindInteger, NonNegative: true},
	Field{Key: "height", Kind: KindInteger},
)

func TestShape_SchemaListsEveryFieldAsRequired(t *testing.T) {
	doc := testShape.Schema()

	assert.Equal(t, "object", doc["type"])
	assert.ElementsMatch(t, []string{"name", "age", "height"}, doc["required"])

	props := doc["properties"].(map[string]interface{})
	assert.Equal(t, "string", props["name"].(map[string]interface{})["type"])
	assert.Equal(t, "integer", props["age"].(map[string]interface{})["type"])
	assert.Equal(t, 0, props["age"].(map[string]interface{})["minimum"])
}

func TestShape_Validate(t *testing.T) {
	tests := []struct {
		name    string
		obj     map[string]interface{}
		wantErr string
	}{
		{
			name: "valid go values",
			obj:  map[string]interface{}{"name": "Jane", "age": 40, "height": 170},
		},
		{
			name: "valid json numbers",
			obj:  map[string]interface{}{"name": "Jane", "age": json.Number("40"), "height": json.Number("170")},
		},
		{
			name: "extra keys are tolerated",
			obj:  map[string]interface{}{"name": "Jane", "age": 40, "height": 170, "note": "x"},
		},
		{
			name:    "missing key",
			obj:     map[string]interface{}{"name": "Jane", "height": 170},
			wantErr: "age",
		},
		{
			name:    "string where integer expected",
			obj:     map[string]interface{}{"name": "Jane", "age": "forty", "height": 170},
			wantErr: "age",
		},
		{
			name:    "fractional integer",
			obj:     map[string]interface{}{"name": "Jane", "age": 40.5, "height": 170},
			wantErr: "age",
		},
		{
			name:    "negative non-negative field",
			obj:     map[string]interface{}{"name": "Jane", "age": -1, "height": 170},
			wantErr: "age",
		},
		{
			name:    "number where string expected",
			obj:     map[string]interface{}{"name": 7, "age": 40, "height": 170},
			wantErr: "name",
		},
		{
			name:    "null object",
			obj:     nil,
			wantErr: "null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := testShape.Validate(tt.obj)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDecode), "expected ErrDecode, got %v", err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, "record", de.Shape)
		})
	}
}

func TestShape_NegativeAllowedWithoutNonNegative(t *testing.T) {
	err := testShape.Validate(map[string]interface{}{"name": "Jane", "age": 3, "height": -20})
	assert.NoError(t, err)
}

func TestDecodeError_Message(t *testing.T) {
	err := &DecodeError{Shape: "patient", Problems: []string{"a", "b"}}
	if !strings.HasPrefix(err.Error(), "patient: ") {
		t.Errorf("Error() = %q, want patient prefix", err.Error())
	}
	if !strings.Contains(err.Error(), "a; b") {
		t.Errorf("Error() = %q, want joined problems", err.Error())
	}
}

func TestInt(t *testing.T) {
	obj := map[string]interface{}{
		"int":      12,
		"number":   json.Number("15"),
		"fraction": json.Number("16.0"),
		"text":     "17",
	}

	cases := map[string]int{"int": 12, "number": 15, "fraction": 16, "text": 0, "missing": 0}
	for key, want := range cases {
		if got := Int(obj, key); got != want {
			t.Errorf("Int(%q) = %d, want %d", key, got, want)
		}
	}
}

func TestString(t *testing.T) {
	obj := map[string]interface{}{"name": "Jane", "id": 3}
	if got := String(obj, "name"); got != "Jane" {
		t.Errorf("String(name) = %q, want Jane", got)
	}
	if got := String(obj, "id"); got != "" {
		t.Errorf("String(id) = %q, want empty", got)
	}
}
