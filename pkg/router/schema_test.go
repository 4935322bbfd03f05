package router

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test structs used in the tests
type SimpleStruct struct {
	String  string  `json:"string"`
	Int     int     `json:"int"`
	Bool    bool    `json:"bool"`
	Float   float64 `json:"float"`
	Pointer *string `json:"pointer,omitempty"`
}

type StructWithArrays struct {
	StringArray []string       `json:"stringArray"`
	IntArray    []int          `json:"intArray"`
	ObjArray    []SimpleStruct `json:"objArray"`
}

type StructWithMaps struct {
	StringMap map[string]string       `json:"stringMap"`
	IntMap    map[string]int          `json:"intMap"`
	ObjMap    map[string]SimpleStruct `json:"objMap"`
}

type StructWithTags struct {
	Required    string `json:"required"`
	Optional    string `json:"optional,omitempty"`
	WithDoc     string `json:"withDoc" doc:"This is documentation"`
	WithExample string `json:"withExample" example:"Example value"`
	WithEnum    string `json:"withEnum" enum:"value1,value2,value3"`
}

type StructWithTime struct {
	Created time.Time `json:"created"`
}

type StructWithRawJSON struct {
	Data json.RawMessage `json:"data"`
}

type CircularStruct struct {
	Name     string           `json:"name"`
	Self     *CircularStruct  `json:"self,omitempty"`
	Children []CircularStruct `json:"children"`
}

func TestParseJsonTag(t *testing.T) {
	tests := map[string]struct {
		jsonTag      string
		fieldName    string
		wantName     string
		wantRequired bool
	}{
		"empty tag uses field name and required": {
			jsonTag:      "",
			fieldName:    "FieldName",
			wantName:     "FieldName",
			wantRequired: true,
		},
		"simple tag": {
			jsonTag:      "propertyName",
			fieldName:    "FieldName",
			wantName:     "propertyName",
			wantRequired: true,
		},
		"optional tag": {
			jsonTag:      "propertyName,omitempty",
			fieldName:    "FieldName",
			wantName:     "propertyName",
			wantRequired: false,
		},
		"multiple options": {
			jsonTag:      "propertyName,omitempty,string",
			fieldName:    "FieldName",
			wantName:     "propertyName",
			wantRequired: false,
		},
		"empty name in tag": {
			jsonTag:      ",omitempty",
			fieldName:    "FieldName",
			wantName:     "FieldName",
			wantRequired: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			gotName, gotRequired := parseJsonTag(tc.jsonTag, tc.fieldName)
			assert.Equal(t, tc.wantName, gotName)
			assert.Equal(t, tc.wantRequired, gotRequired)
		})
	}
}

func TestBasicTypeSchema(t *testing.T) {
	tests := map[string]struct {
		value    any
		expected map[string]any
	}{
		"string": {
			value:    "text",
			expected: map[string]any{"type": "string"},
		},
		"int": {
			value:    123,
			expected: map[string]any{"type": "integer"},
		},
		"bool": {
			value:    true,
			expected: map[string]any{"type": "boolean"},
		},
		"float": {
			value:    123.45,
			expected: map[string]any{"type": "number"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			schema := jsonSchema(tc.value)
			if diff := cmp.Diff(tc.expected, schema); diff != "" {
				t.Errorf("schema mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJsonSchemaSimpleStruct(t *testing.T) {
	schema := jsonSchema(SimpleStruct{})

	assert.Equal(t, "object", schema["type"])

	props := schema["properties"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "string"}, props["string"])
	assert.Equal(t, map[string]any{"type": "integer"}, props["int"])
	assert.Equal(t, map[string]any{"type": "boolean"}, props["bool"])
	assert.Equal(t, map[string]any{"type": "number"}, props["float"])

	// pointers resolve to the element type
	assert.Equal(t, map[string]any{"type": "string"}, props["pointer"])

	// omitempty fields are not required
	required := schema["required"].([]string)
	assert.ElementsMatch(t, []string{"string", "int", "bool", "float"}, required)
}

func TestJsonSchemaArrays(t *testing.T) {
	schema := jsonSchema(StructWithArrays{})
	props := schema["properties"].(map[string]any)

	stringArray := props["stringArray"].(map[string]any)
	assert.Equal(t, "array", stringArray["type"])
	assert.Equal(t, map[string]any{"type": "string"}, stringArray["items"])

	intArray := props["intArray"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "integer"}, intArray["items"])

	objArray := props["objArray"].(map[string]any)
	items := objArray["items"].(map[string]any)
	assert.Equal(t, "object", items["type"])
	assert.Contains(t, items["properties"].(map[string]any), "string")
}

func TestJsonSchemaMaps(t *testing.T) {
	schema := jsonSchema(StructWithMaps{})
	props := schema["properties"].(map[string]any)

	stringMap := props["stringMap"].(map[string]any)
	assert.Equal(t, "object", stringMap["type"])
	assert.Equal(t, map[string]any{"type": "string"}, stringMap["additionalProperties"])

	intMap := props["intMap"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "integer"}, intMap["additionalProperties"])

	objMap := props["objMap"].(map[string]any)
	additional := objMap["additionalProperties"].(map[string]any)
	assert.Equal(t, "object", additional["type"])
}

func TestJsonSchemaTagMetadata(t *testing.T) {
	schema := jsonSchema(StructWithTags{})
	props := schema["properties"].(map[string]any)

	withDoc := props["withDoc"].(map[string]any)
	assert.Equal(t, "This is documentation", withDoc["description"])

	withExample := props["withExample"].(map[string]any)
	assert.Equal(t, "Example value", withExample["example"])

	withEnum := props["withEnum"].(map[string]any)
	assert.Equal(t, []string{"value1", "value2", "value3"}, withEnum["enum"])

	required := schema["required"].([]string)
	assert.NotContains(t, required, "optional")
	assert.Contains(t, required, "required")
}

func TestJsonSchemaSpecialTypes(t *testing.T) {
	t.Run("time.Time", func(t *testing.T) {
		schema := jsonSchema(StructWithTime{})
		props := schema["properties"].(map[string]any)
		created := props["created"].(map[string]any)
		assert.Equal(t, "string", created["type"])
		assert.Equal(t, "date-time", created["format"])
	})

	t.Run("json.RawMessage", func(t *testing.T) {
		schema := jsonSchema(StructWithRawJSON{})
		props := schema["properties"].(map[string]any)
		assert.Equal(t, map[string]any{"type": "object"}, props["data"])
	})
}

func TestJsonSchemaCircularReference(t *testing.T) {
	schema := jsonSchema(CircularStruct{})
	props := schema["properties"].(map[string]any)

	self := props["self"].(map[string]any)
	assert.Equal(t, "object", self["type"])
	assert.Contains(t, self["description"], "circular reference")

	children := props["children"].(map[string]any)
	assert.Equal(t, "array", children["type"])
}

func TestCapitalize(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"lower":   {in: "todo", want: "Todo"},
		"already": {in: "Todo", want: "Todo"},
		"empty":   {in: "", want: ""},
		"single":  {in: "x", want: "X"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, capitalize(tc.in))
		})
	}
}

func TestGetTypeName(t *testing.T) {
	assert.Equal(t, "SimpleStruct", getTypeName(SimpleStruct{}))
	assert.Equal(t, "SimpleStruct", getTypeName(&SimpleStruct{}))
	assert.Equal(t, "", getTypeName([]SimpleStruct{}))
	assert.Equal(t, "", getTypeName(nil))
}

func TestSchemaRef(t *testing.T) {
	t.Run("named struct registers and references", func(t *testing.T) {
		router := NewDocRouter("Test API", "API for testing", "1.0.0")

		ref := router.schemaRef(SimpleStruct{})

		assert.Equal(t, map[string]any{"$ref": "#/components/schemas/SimpleStruct"}, ref)
		assert.Contains(t, router.schemaRegistry.getSchemas(), "SimpleStruct")
	})

	t.Run("slice of named structs becomes array of references", func(t *testing.T) {
		router := NewDocRouter("Test API", "API for testing", "1.0.0")

		ref := router.schemaRef([]SimpleStruct{})

		assert.Equal(t, "array", ref["type"])
		assert.Equal(t, map[string]any{"$ref": "#/components/schemas/SimpleStruct"}, ref["items"])
		assert.Contains(t, router.schemaRegistry.getSchemas(), "SimpleStruct")
	})

	t.Run("nested structs register their own components", func(t *testing.T) {
		router := NewDocRouter("Test API", "API for testing", "1.0.0")

		ref := router.schemaRef(User{})
		require.Equal(t, map[string]any{"$ref": "#/components/schemas/User"}, ref)

		schemas := router.schemaRegistry.getSchemas()
		require.Contains(t, schemas, "User")
		require.Contains(t, schemas, "Address")

		// the nested struct is referenced, not inlined
		userSchema := schemas["User"].(map[string]any)
		props := userSchema["properties"].(map[string]any)
		assert.Equal(t, map[string]any{"$ref": "#/components/schemas/Address"}, props["address"])
	})

	t.Run("nil yields nil", func(t *testing.T) {
		router := NewDocRouter("Test API", "API for testing", "1.0.0")
		assert.Nil(t, router.schemaRef(nil))
	})
}
