package ai

// schema is the subset of the generateContent response-schema language the
// adapter needs. Attaching one to a request forces the model to emit a JSON
// document matching it.
type schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Nullable    bool               `json:"nullable,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Items       *schema            `json:"items,omitempty"`
	Properties  map[string]*schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// draftSchema constrains the parse call to the todo draft shape.
var draftSchema = &schema{
	Type: "object",
	Properties: map[string]*schema{
		"title": {
			Type:        "string",
			Description: "할 일의 제목 (간결하게)",
		},
		"description": {
			Type:        "string",
			Description: "할 일의 상세 설명 (여러 항목이 있을 경우 bullet point(•)로 구분하여 정리)",
		},
		"due_date": {
			Type:        "string",
			Nullable:    true,
			Description: "마감일 (YYYY-MM-DD 형식, 없으면 null)",
		},
		"due_time": {
			Type:        "string",
			Nullable:    true,
			Description: "마감 시간 (HH:MM 형식, 없으면 null)",
		},
		"priority": {
			Type:        "string",
			Enum:        []string{"high", "medium", "low"},
			Description: "우선순위 (긴급하거나 중요하면 high, 보통이면 medium, 여유있으면 low)",
		},
		"category": {
			Type:        "array",
			Items:       &schema{Type: "string"},
			Description: "카테고리 배열 (업무, 개인, 공부, 건강, 취미 등)",
		},
	},
	Required: []string{"title", "due_date", "due_time", "priority", "category"},
}

// analysisSchema constrains the analysis call to the narrative shape.
var analysisSchema = &schema{
	Type: "object",
	Properties: map[string]*schema{
		"summary": {
			Type:        "string",
			Description: "전체 할 일 요약 (총 개수, 완료 개수, 완료율)",
		},
		"urgentTasks": {
			Type:        "array",
			Items:       &schema{Type: "string"},
			Description: "긴급하게 처리해야 할 할 일 목록 (최대 5개)",
		},
		"insights": {
			Type:        "array",
			Items:       &schema{Type: "string"},
			Description: "할 일 분석 인사이트 (시간대별 분포, 마감일 집중도 등, 3-5개)",
		},
		"recommendations": {
			Type:        "array",
			Items:       &schema{Type: "string"},
			Description: "실행 가능한 추천 사항 (구체적이고 실용적인 조언, 3-5개)",
		},
	},
	Required: []string{"summary", "urgentTasks", "insights", "recommendations"},
}
