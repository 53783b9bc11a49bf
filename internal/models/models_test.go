package models

import (
	"encoding/json"
	"testing"

	"catalog-viewer/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, text string) Value {
	t.Helper()
	v, err := Decode([]byte(text))
	require.NoError(t, err)
	return v
}

func TestDecode_Kinds(t *testing.T) {
	tests := []struct {
		text string
		kind Kind
	}{
		{`{"a":1}`, KindObject},
		{`[1,2]`, KindArray},
		{`"text"`, KindString},
		{`42`, KindNumber},
		{`true`, KindBool},
		{`null`, KindNull},
		{"  {}  \n", KindObject},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.kind, mustDecode(t, tt.text).Kind())
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, text := range []string{"{not json", "", `{"a":1} trailing`, `{"a":1}{"b":2}`, "[1,"} {
		t.Run(text, func(t *testing.T) {
			v, err := Decode([]byte(text))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidDataFormat))
			assert.False(t, v.Exists())
		})
	}
}

func TestDecode_KeepsNumberText(t *testing.T) {
	v := mustDecode(t, `{"KladrCode": 7700000000000, "Price": 1.50}`)
	assert.Equal(t, "7700000000000", v.Field("KladrCode").String())
	assert.Equal(t, json.Number("1.50"), v.Field("Price").Raw())
}

func TestValue_FieldOnNonObjects(t *testing.T) {
	doc := mustDecode(t, `{"Zone": null, "List": [1], "Name": "x"}`)

	assert.False(t, Missing().Field("Title").Exists())
	assert.False(t, doc.Field("Zone").Field("Title").Exists())
	assert.False(t, doc.Field("List").Field("Title").Exists())
	assert.False(t, doc.Field("Name").Field("Title").Exists())
	assert.False(t, doc.Field("Absent").Field("Deeper").Field("Deepest").Exists())

	assert.True(t, doc.Field("Zone").Exists())
	assert.False(t, doc.Field("Zone").Present())
	assert.True(t, doc.Has("Zone"))
	assert.False(t, doc.Has("Absent"))
	assert.False(t, doc.Field("List").Has("0"))
}

func TestValue_Truthy(t *testing.T) {
	doc := mustDecode(t, `{"s":"x","e":"","z":0,"n":3,"f":false,"t":true,"nil":null,"arr":[],"obj":{}}`)
	truthy := map[string]bool{
		"s": true, "e": false, "z": false, "n": true, "f": false,
		"t": true, "nil": false, "arr": true, "obj": true, "absent": false,
	}
	for key, want := range truthy {
		assert.Equal(t, want, doc.Field(key).Truthy(), key)
	}
}

func TestValue_ItemsAndLen(t *testing.T) {
	doc := mustDecode(t, `{"arr":[{"Title":"a"},"b"],"obj":{"k":1,"j":2}}`)

	items := doc.Field("arr").Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Field("Title").String())
	assert.Equal(t, KindString, items[1].Kind())
	assert.Equal(t, 2, doc.Field("arr").Len())
	assert.Equal(t, 2, doc.Field("obj").Len())
	assert.Nil(t, doc.Field("obj").Items())
}

func TestValue_DoesNotMutateSource(t *testing.T) {
	text := `{"Regions":[{"Title":"Москва","RegionType":"City"}]}`
	doc := mustDecode(t, text)

	_ = doc.Field("Regions").Items()[0].Field("Title").String()

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, text, string(out))
}

func TestSection_OrderAndOverwrite(t *testing.T) {
	s := NewSection()
	s.Set("Заголовок", "A")
	s.Set("Описание", "B")
	s.Set("Заголовок", "C")

	assert.Equal(t, []string{"Заголовок", "Описание"}, s.Keys())
	v, ok := s.Get("Заголовок")
	assert.True(t, ok)
	assert.Equal(t, "C", v)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"Заголовок":"C","Описание":"B"}`, string(out))
}

func TestSection_PutSkipsMissingAndNull(t *testing.T) {
	doc := mustDecode(t, `{"a":null,"b":"x","c":0}`)
	s := NewSection()

	assert.False(t, s.Put("A", doc.Field("a")))
	assert.False(t, s.Put("Z", doc.Field("z")))
	assert.True(t, s.Put("B", doc.Field("b")))
	assert.True(t, s.Put("C", doc.Field("c")))
	assert.Equal(t, []string{"B", "C"}, s.Keys())
}

func TestSection_NestedMarshal(t *testing.T) {
	inner := NewSection()
	inner.Set("Тип", "Город")
	outer := NewSection()
	outer.Set("Москва", inner)
	outer.Set("Список", []interface{}{"a", "b"})

	out, err := json.Marshal(outer)
	require.NoError(t, err)
	assert.Equal(t, `{"Москва":{"Тип":"Город"},"Список":["a","b"]}`, string(out))
	assert.Same(t, inner, outer.Child("Москва"))
	assert.Nil(t, outer.Child("Список"))

	var nilSection *Section
	assert.True(t, nilSection.IsEmpty())
}

func TestSection_MarshalKeepsMarkup(t *testing.T) {
	s := NewSection()
	s.Set("Ссылка", "<a href=\"/x?a=1&b=2\">")
	inner := NewSection()
	inner.Set("<b>", "&")
	s.Set("Вложенный", inner)

	out, err := marshalRaw(s)
	require.NoError(t, err)
	assert.Equal(t, `{"Ссылка":"<a href=\"/x?a=1&b=2\">","Вложенный":{"<b>":"&"}}`, string(out))
}
