package domain

// StageConfig carries the fixed display metadata and trigger phrases of
// one workflow stage. The table is compiled in and not user-editable at
// runtime.
type StageConfig struct {
	Stage       Stage
	Title       string
	Description string
	Icon        string
	Color       string

	// Triggers are the substrings whose presence in AI output text
	// auto-advances the workflow out of this stage. Stages with an empty
	// list only advance through an explicit user action.
	Triggers []string
}

// stageConfigs is the fixed per-stage configuration, in stage order.
// Only the first three stages carry auto-advance triggers; the later
// stages represent deliverables the user must confirm by hand.
var stageConfigs = []StageConfig{
	{
		Stage:       StageRequirementInput,
		Title:       "需求输入",
		Description: "描述您的采购需求",
		Icon:        "📝",
		Color:       "#3B82F6",
		Triggers:    []string{"需求已接收", "已记录您的采购需求"},
	},
	{
		Stage:       StagePreliminaryResearch,
		Title:       "初步调研",
		Description: "AI 对市场和候选供应商做初步调研",
		Icon:        "🔍",
		Color:       "#8B5CF6",
		Triggers:    []string{"初步调研完成", "调研报告如下"},
	},
	{
		Stage:       StageRefinement,
		Title:       "需求细化",
		Description: "根据调研结果细化采购需求",
		Icon:        "✏️",
		Color:       "#EC4899",
		Triggers:    []string{"需求细化完成", "需求清单已生成"},
	},
	{
		Stage:       StageRequirementList,
		Title:       "需求清单",
		Description: "确认最终需求清单",
		Icon:        "📋",
		Color:       "#F59E0B",
		Triggers:    []string{},
	},
	{
		Stage:       StageDeepSourcing,
		Title:       "深度寻源",
		Description: "按清单深度匹配供应商",
		Icon:        "🎯",
		Color:       "#10B981",
		Triggers:    []string{},
	},
	{
		Stage:       StageSupplierFavorite,
		Title:       "供应商收藏",
		Description: "收藏候选供应商",
		Icon:        "⭐",
		Color:       "#F97316",
		Triggers:    []string{},
	},
	{
		Stage:       StageSupplierInterview,
		Title:       "供应商约谈",
		Description: "与入选供应商约谈",
		Icon:        "🤝",
		Color:       "#06B6D4",
		Triggers:    []string{},
	},
}

// StageConfigs returns the full configuration table in stage order.
func StageConfigs() []StageConfig {
	out := make([]StageConfig, len(stageConfigs))
	copy(out, stageConfigs)
	return out
}

// ConfigFor returns the configuration of one stage.
func ConfigFor(s Stage) (StageConfig, bool) {
	for _, cfg := range stageConfigs {
		if cfg.Stage == s {
			return cfg, true
		}
	}
	return StageConfig{}, false
}
