package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeTextLines(t *testing.T) {
	strategy := NewFreeText()

	text := `为您推荐：
1. 罗技M185无线鼠标 ¥99 https://item.jd.com/1.html
2. 小米台灯，￥129元
3. 某某商品
4. 无印良品笔记本 https://item.taobao.com/item.htm?id=7`

	results := strategy.Extract(text)
	require.Len(t, results, 3)

	assert.Equal(t, "罗技M185无线鼠标", results[0].Name)
	assert.Equal(t, 99.0, results[0].Price)
	assert.Equal(t, "https://item.jd.com/1.html", results[0].PurchaseURL)
	assert.Equal(t, "京东", results[0].Platform)

	assert.Equal(t, "小米台灯", results[1].Name)
	assert.Equal(t, 129.0, results[1].Price)
	assert.Empty(t, results[1].PurchaseURL)

	assert.Equal(t, "无印良品笔记本", results[2].Name)
	assert.Equal(t, float64(0), results[2].Price)
	assert.Equal(t, "淘宝", results[2].Platform)
}

func TestFreeTextSuffixedPrice(t *testing.T) {
	strategy := NewFreeText()

	results := strategy.Extract("得力订书机 25元")
	require.Len(t, results, 1)
	assert.Equal(t, "得力订书机", results[0].Name)
	assert.Equal(t, 25.0, results[0].Price)
}

func TestFreeTextFirstTokenOnly(t *testing.T) {
	strategy := NewFreeText()

	// only the first price and first URL on a line are used
	results := strategy.Extract("组合装 ¥50 或 ¥80 https://a.example.com/1 https://b.example.com/2")
	require.Len(t, results, 1)
	assert.Equal(t, 50.0, results[0].Price)
	assert.Equal(t, "https://a.example.com/1", results[0].PurchaseURL)
}

func TestFreeTextNameWithoutPriceOrURLDiscarded(t *testing.T) {
	strategy := NewFreeText()
	assert.Empty(t, strategy.Extract("这里只有商品名字"))
}

func TestFreeTextMarkdownDecorationStripped(t *testing.T) {
	strategy := NewFreeText()

	results := strategy.Extract("- **降噪耳机**：¥899")
	require.Len(t, results, 1)
	assert.Equal(t, "降噪耳机", results[0].Name)
	assert.Equal(t, 899.0, results[0].Price)
}
