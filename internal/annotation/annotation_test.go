package annotation

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirectives(t *testing.T) {
	lines := []string{
		"// Head is the document head.",
		"//html:tag_name=head",
		"//html:void",
		"//html:text=Hello = World",
		"//html:attr=name=viewport",
		"//go:generate stringer -type=Head",
		"  //html:key_case = lower  ",
	}

	ds := ParseDirectives(lines)
	require.Len(t, ds, 5)

	assert.Equal(t, Directive{Name: "tag_name", Value: "head", HasValue: true}, ds[0])
	assert.Equal(t, Directive{Name: "void"}, ds[1])
	assert.Equal(t, Directive{Name: "text", Value: "Hello = World", HasValue: true}, ds[2])
	assert.Equal(t, Directive{Name: "attr", Value: "name=viewport", HasValue: true}, ds[3])
	assert.Equal(t, Directive{Name: "key_case", Value: "lower", HasValue: true}, ds[4])
}

func TestParseDirectives_IgnoresSpacedComments(t *testing.T) {
	// "// html:" is prose, not a directive.
	ds := ParseDirectives([]string{"// html:tag_name=div", "/* html:void */"})
	assert.Empty(t, ds)
}

func TestDirectives_Lookup(t *testing.T) {
	ds := ParseDirectives([]string{
		"//html:text=one",
		"//html:tag_name=p",
		"//html:text=two",
	})

	d, ok := ds.Lookup(Text)
	require.True(t, ok)
	assert.Equal(t, "two", d.Value, "last one wins")

	assert.True(t, ds.Has(TagName))
	assert.False(t, ds.Has(Void))

	all := ds.All(Text)
	require.Len(t, all, 2)
	assert.Equal(t, "one", all[0].Value)
	assert.Equal(t, "two", all[1].Value)
}

func TestDirectives_CheckKnown(t *testing.T) {
	tests := []struct {
		name       string
		lines      []string
		wantErr    bool
		suggestion string
	}{
		{"all known", []string{"//html:tag_name=div", "//html:void"}, false, ""},
		{"typo", []string{"//html:tagname=div"}, true, "tag_name"},
		{"far off", []string{"//html:stylesheet=x"}, true, ""},
		{"variant name on type", []string{"//html:value=x"}, true, ""},
		{"select", []string{"//html:tag_name=meta", "//html:select"}, false, ""},
		{"select typo", []string{"//html:selct"}, true, "select"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ParseDirectives(tt.lines).CheckKnown(TypeDirectives)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var uerr *UnknownError
			require.ErrorAs(t, err, &uerr)
			assert.Equal(t, tt.suggestion, uerr.Suggestion)
		})
	}
}

func TestUnknownError_Message(t *testing.T) {
	err := &UnknownError{Name: "viod", Suggestion: "void"}
	assert.Equal(t, `unknown html annotation "viod" (did you mean "void"?)`, err.Error())

	err = &UnknownError{Name: "zzz"}
	assert.Equal(t, `unknown html annotation "zzz"`, err.Error())
}

func TestSplitAttr(t *testing.T) {
	key, value, err := SplitAttr(Directive{Name: Attr, Value: "content=width=device-width"})
	require.NoError(t, err)
	assert.Equal(t, "content", key)
	assert.Equal(t, "width=device-width", value)

	_, _, err = SplitAttr(Directive{Name: Attr, Value: "content"})
	assert.Error(t, err)

	_, _, err = SplitAttr(Directive{Name: Attr, Value: "=x"})
	assert.Error(t, err)
}

func TestParseFieldTag(t *testing.T) {
	tests := []struct {
		name string
		tag  reflect.StructTag
		want FieldTag
	}{
		{"no tag", ``, FieldTag{Role: RoleNone}},
		{"other keys only", `json:"lang"`, FieldTag{Role: RoleNone}},
		{"attr", `html:"attr"`, FieldTag{Role: RoleAttr}},
		{"attr with key", `html:"attr,key=http-equiv"`, FieldTag{Role: RoleAttr, Key: "http-equiv"}},
		{"attr with literal", `html:"attr,value=utf-8"`, FieldTag{Role: RoleAttr, Value: "utf-8", HasValue: true}},
		{"attr with empty literal", `html:"attr,value="`, FieldTag{Role: RoleAttr, HasValue: true}},
		{"literal with commas", `html:"attr,key=content,value=width=device-width, initial-scale=1"`,
			FieldTag{Role: RoleAttr, Key: "content", Value: "width=device-width, initial-scale=1", HasValue: true}},
		{"literal swallows later options", `html:"attr,value=a,key=b"`, FieldTag{Role: RoleAttr, Value: "a,key=b", HasValue: true}},
		{"child", `html:"child"`, FieldTag{Role: RoleChild}},
		{"skip", `html:"-"`, FieldTag{Role: RoleSkip}},
		{"mixed with json", `json:"x" html:"attr,key=x-data"`, FieldTag{Role: RoleAttr, Key: "x-data"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFieldTag(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFieldTag_Unknown(t *testing.T) {
	tests := []struct {
		tag        reflect.StructTag
		name       string
		suggestion string
	}{
		{`html:"atr"`, "atr", "attr"},
		{`html:"children"`, "children", ""},
		{`html:"attr,kye=x"`, "kye", "key"},
		{`html:"attr,omitempty"`, "omitempty", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			_, err := ParseFieldTag(tt.tag)

			var uerr *UnknownError
			require.ErrorAs(t, err, &uerr)
			assert.Equal(t, tt.name, uerr.Name)
			assert.Equal(t, tt.suggestion, uerr.Suggestion)
		})
	}
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "none", RoleNone.String())
	assert.Equal(t, "-", RoleSkip.String())
	assert.Equal(t, "attr", RoleAttr.String())
	assert.Equal(t, "child", RoleChild.String())
}
