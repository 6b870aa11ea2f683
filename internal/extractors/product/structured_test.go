package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"
)

func TestStructuredBasic(t *testing.T) {
	strategy := NewStructured()

	text := "```json\n" + `{
		"商品名称": "罗技M185无线鼠标",
		"价格": "¥99.00",
		"购买链接": "https://item.jd.com/1.html",
		"品牌": "罗技",
		"标签": "办公，数码"
	}` + "\n```"

	results := strategy.Extract(text)
	require.Len(t, results, 1)

	p := results[0]
	assert.Equal(t, "罗技M185无线鼠标", p.Name)
	assert.Equal(t, 99.0, p.Price)
	assert.Equal(t, "https://item.jd.com/1.html", p.PurchaseURL)
	assert.Equal(t, "京东", p.Platform)
	assert.Equal(t, "罗技", p.Brand)
	assert.Equal(t, []string{"办公", "数码"}, p.Tags)
	assert.Equal(t, domain.DefaultCurrency, p.Currency)
	assert.Equal(t, domain.ProductStatusPending, p.Status)
	assert.Equal(t, domain.SourceAI, p.Source)
}

func TestStructuredPriceString(t *testing.T) {
	strategy := NewStructured()

	// "¥199.50" parses to 199.5
	results := strategy.Extract(`{"name": "台灯", "price": "¥199.50"}`)
	require.Len(t, results, 1)
	assert.Equal(t, 199.5, results[0].Price)
}

func TestStructuredNonNumericPriceDiscarded(t *testing.T) {
	strategy := NewStructured()

	// "free" has no digits: price 0, and without a URL the candidate
	// is dropped
	assert.Empty(t, strategy.Extract(`{"name": "赠品", "price": "free"}`))

	// with a URL the zero price is fine
	results := strategy.Extract(`{"name": "赠品", "price": "free", "url": "https://shop.example.com/1"}`)
	require.Len(t, results, 1)
	assert.Equal(t, float64(0), results[0].Price)
	assert.Equal(t, domain.PlatformOther, results[0].Platform)
}

func TestStructuredArrayAndSpecs(t *testing.T) {
	strategy := NewStructured()

	text := `[
		{"name": "机械键盘", "price": 299, "specifications": {"轴体": "红轴"}},
		{"name": "没有价格没有链接"},
		{"productName": "显示器", "url": "https://detail.tmall.com/item.htm?id=9"}
	]`

	results := strategy.Extract(text)
	require.Len(t, results, 2)

	assert.Equal(t, "机械键盘", results[0].Name)
	assert.Equal(t, float64(299), results[0].Price)
	assert.Equal(t, "红轴", results[0].Specifications["轴体"])

	assert.Equal(t, "显示器", results[1].Name)
	assert.Equal(t, "天猫", results[1].Platform)
}

func TestStructuredInvalidSyntax(t *testing.T) {
	strategy := NewStructured()
	assert.Empty(t, strategy.Extract("普通聊天文本"))
	assert.Empty(t, strategy.Extract("```json\n{broken\n```"))
}
