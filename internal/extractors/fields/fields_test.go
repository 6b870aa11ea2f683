package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrecedence(t *testing.T) {
	obj := map[string]any{
		"name":   "english",
		"名称":     "chinese",
		"absent": nil,
	}

	v, ok := Resolve(obj, "name", "名称")
	require.True(t, ok)
	assert.Equal(t, "english", v)

	v, ok = Resolve(obj, "missing", "名称")
	require.True(t, ok)
	assert.Equal(t, "chinese", v)

	// nil counts as absent, so resolution falls through
	v, ok = Resolve(obj, "absent", "name")
	require.True(t, ok)
	assert.Equal(t, "english", v)

	_, ok = Resolve(obj, "missing", "gone")
	assert.False(t, ok)
}

func TestResolveZeroValuesArePresent(t *testing.T) {
	obj := map[string]any{"price": float64(0), "价格": float64(88)}

	// explicit presence check: numeric zero must not fall through
	v, ok := Resolve(obj, "price", "价格")
	require.True(t, ok)
	assert.Equal(t, float64(0), v)
}

func TestResolveString(t *testing.T) {
	obj := map[string]any{"name": "  ACME  ", "count": float64(3)}

	assert.Equal(t, "ACME", ResolveString(obj, "name"))
	assert.Equal(t, "3", ResolveString(obj, "count"))
	assert.Empty(t, ResolveString(obj, "missing"))
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"numeric", float64(199.5), 199.5},
		{"int", 42, 42},
		{"yen prefixed string", "¥199.50", 199.5},
		{"suffixed string", "3999元", 3999},
		{"embedded number", "约 1200.5 元起", 1200.5},
		{"no digits", "free", 0},
		{"empty", "", 0},
		{"unsupported type", []any{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Amount(tt.in))
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"ascii comma", "a,b,c", []string{"a", "b", "c"}},
		{"full-width comma", "电子元件，连接器", []string{"电子元件", "连接器"}},
		{"ideographic comma", "模具、注塑、组装", []string{"模具", "注塑", "组装"}},
		{"mixed with blanks", "a, ,b，、c", []string{"a", "b", "c"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitList(tt.in)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFencedBlocks(t *testing.T) {
	text := "前言\n```json\n{\"a\":1}\n```\n中间\n```\n{\"b\":2}\n```\n结尾"

	blocks := FencedBlocks(text)
	require.Len(t, blocks, 2)
	assert.Equal(t, `{"a":1}`, blocks[0])
	assert.Equal(t, `{"b":2}`, blocks[1])

	assert.Nil(t, FencedBlocks("no fences here"))
}

func TestObjects(t *testing.T) {
	objs := Objects(`{"name":"one"}`)
	require.Len(t, objs, 1)
	assert.Equal(t, "one", objs[0]["name"])

	objs = Objects(`[{"name":"a"},{"name":"b"}]`)
	require.Len(t, objs, 2)

	assert.Nil(t, Objects(`not json at all`))
	assert.Nil(t, Objects(`[1,2,3]`))
	assert.Nil(t, Objects(`"just a string"`))
}

func TestStringList(t *testing.T) {
	obj := map[string]any{
		"business": "电子元件，连接器、线束",
		"tags":     []any{"数码", "办公"},
	}

	assert.Equal(t, []string{"电子元件", "连接器", "线束"}, StringList(obj, "business"))
	assert.Equal(t, []string{"数码", "办公"}, StringList(obj, "tags"))
	assert.Nil(t, StringList(obj, "missing"))
}

func TestStringMap(t *testing.T) {
	obj := map[string]any{"specs": map[string]any{"颜色": "黑色", "重量": "1.2kg"}}

	m := StringMap(obj, "specs")
	require.NotNil(t, m)
	assert.Equal(t, "黑色", m["颜色"])
	assert.Equal(t, "1.2kg", m["重量"])

	assert.Nil(t, StringMap(obj, "missing"))
}

func TestObjectList(t *testing.T) {
	obj := map[string]any{
		"cases": []any{
			map[string]any{"title": "案例一"},
			"not an object",
			map[string]any{"title": "案例二"},
		},
	}

	list := ObjectList(obj, "cases")
	require.Len(t, list, 2)
	assert.Equal(t, "案例一", list[0]["title"])
}
