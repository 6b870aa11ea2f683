package supplier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListNumberedItems(t *testing.T) {
	strategy := NewList()

	text := `为您整理了候选：
1. 【供应商名称】: 深圳华强电子
2、公司名称：东莞三和模具
3. 【主营业务】: 连接器`

	results := strategy.Extract(text)
	require.Len(t, results, 2)
	assert.Equal(t, "深圳华强电子", results[0].Name)
	assert.Equal(t, "东莞三和模具", results[1].Name)
}

func TestListDashItems(t *testing.T) {
	strategy := NewList()

	text := "- **供应商名称**: 苏州精工\n- **主营业务**: 五金冲压"

	results := strategy.Extract(text)
	require.Len(t, results, 1)
	assert.Equal(t, "苏州精工", results[0].Name)
}

func TestListUnionOfSweeps(t *testing.T) {
	strategy := NewList()

	text := "1. 【供应商名称】: 甲公司\n- **供应商名称**: 乙公司"

	results := strategy.Extract(text)
	require.Len(t, results, 2)
	assert.Equal(t, "甲公司", results[0].Name)
	assert.Equal(t, "乙公司", results[1].Name)
}

func TestListNonNameLabelsIgnored(t *testing.T) {
	strategy := NewList()

	text := "1. 【价格】: 100元\n2. 【交期】: 两周"
	assert.Empty(t, strategy.Extract(text))
}
