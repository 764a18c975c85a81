package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/taskmind/taskmind/internal/domain/assist"
)

// parsePrompt builds the instruction for the natural-language parse call.
// Date arithmetic rules are anchored to the current date so relative
// expressions ("내일", "다음 주 월요일") resolve correctly, and a default
// time of 09:00 applies when the input names a date but no time. The
// default time lives only here: the repair pass never invents one.
func parsePrompt(input string, now time.Time) string {
	today, clock := assist.KoreanDateTime(now)

	var b strings.Builder
	fmt.Fprintf(&b, `당신은 한국어 자연어를 할 일(TODO) 데이터로 변환하는 AI 어시스턴트입니다.

현재 정보:
- 오늘 날짜: %s
- 현재 시간: %s

사용자 입력: "%s"

위 입력을 분석하여 다음 규칙에 따라 구조화된 할 일 데이터로 변환하세요:

1. **제목 (title)**: 핵심 행동을 간결하게 추출 (예: "팀 회의 준비", "보고서 작성")

2. **설명 (description)**:
   - 제목에 포함되지 않은 중요한 세부 사항이나 단계들을 추출
   - 여러 항목이 있을 경우 bullet point(•)를 사용하여 정리
   - 각 항목은 줄바꿈으로 구분
   - 추가 정보가 없으면 빈 문자열

3. **마감일 (due_date)**:
   - "오늘" → 오늘 날짜
   - "내일" → 오늘 + 1일
   - "모레" → 오늘 + 2일
   - "다음 주 월요일" → 다음 월요일 날짜
   - 명시적 날짜 → 해당 날짜
   - 날짜 정보 없음 → null
   - 형식: YYYY-MM-DD

4. **마감 시간 (due_time)**:
   - 명시된 시간 추출 (예: "오후 3시" → "15:00", "저녁 7시" → "19:00")
   - 시간 정보 없고 날짜만 있으면 → "09:00" (기본값)
   - 날짜도 시간도 없으면 → null
   - 형식: HH:MM (24시간)

5. **우선순위 (priority)**:
   - "긴급", "중요", "빨리", "시급", "마감 임박" → "high"
   - "보통", "일반" → "medium"
   - "여유", "천천히", "나중에" → "low"
   - 명시되지 않았다면 문맥으로 판단 (회의, 발표, 제출 등 → high, 일상적인 일 → medium)

6. **카테고리 (category)**:
   - 업무 관련 → ["업무"]
   - 공부/학습 → ["공부"]
   - 운동/건강 → ["건강"]
   - 개인적인 일 → ["개인"]
   - 취미/여가 → ["취미"]
   - 여러 카테고리 가능 (예: ["업무", "공부"])
   - 명확하지 않으면 문맥으로 추론

**중요**: 날짜 계산 시 오늘(%s)을 기준으로 정확히 계산하세요.`, today, clock, input, today)

	return b.String()
}

// analyzePrompt builds the instruction for the analysis call. The statistics
// block and the per-todo digest are computed locally; the model only writes
// the narrative around them.
func analyzePrompt(todos []assist.Snapshot, period assist.Period, now time.Time) string {
	today, clock := assist.KoreanDateTime(now)
	st := assist.ComputeStats(todos, period, now)

	var b strings.Builder
	fmt.Fprintf(&b, `당신은 생산성 전문가이자 친근한 AI 어시스턴트입니다.
사용자의 할 일 목록을 깊이 있게 분석하여 실질적인 인사이트와 추천사항을 제공하세요.

**📅 현재 정보:**
- 오늘 날짜: %s
- 현재 시간: %s
- 분석 기간: %s

**📊 전체 통계:**
- 전체 할 일: %d개
- 완료: %d개 (%d%%)
- 미완료: %d개
- 지연된 할 일: %d개 ⚠️

**🎯 우선순위별 완료율:**
- 높음: %d/%d개 (%d%%)
- 보통: %d/%d개 (%d%%)
- 낮음: %d/%d개 (%d%%)
`,
		today, clock, period.Korean(),
		st.Total, st.Completed, st.CompletionRate, st.Total-st.Completed, st.Overdue,
		st.High.Completed, st.High.Total, st.High.Rate,
		st.Medium.Completed, st.Medium.Total, st.Medium.Rate,
		st.Low.Completed, st.Low.Total, st.Low.Rate,
	)

	if cats := joinCategoryCounts(st.TopCategories); cats != "" {
		fmt.Fprintf(&b, "\n**📁 주요 카테고리:** %s", cats)
	}
	if days := joinWeekdayCounts(st.Weekdays); days != "" {
		fmt.Fprintf(&b, "\n**📆 요일별 분포:** %s", days)
	}

	fmt.Fprintf(&b, `

**📝 할 일 목록:**
%s

---

**🔍 상세 분석 요청사항:**

1. **📈 요약 (summary)**:
   - 전체 할 일 개수, 완료 개수, 완료율을 한 문장으로 요약
   - 예: "총 8개의 할 일 중 5개 완료 (62.5%%)"

2. **🚨 긴급 할 일 (urgentTasks)**:
   - 지연된 할 일(⚠️표시) 우선 추출
   - 마감일이 임박했거나 우선순위가 높은 미완료 할 일
   - 제목만 나열 (최대 5개, 중요도 순), 없으면 빈 배열

3. **💡 인사이트 (insights)** - 4-6개 제공:
   - 전체 완료율과 우선순위별 완료 패턴 평가
   - 마감일 준수율 평가 (지연된 할 일 %d개 기준)
   - %s
   - 사용자가 잘하고 있는 부분을 데이터 근거로 구체적으로 강조
   - 각 인사이트는 한 문장, 친근하고 격려하는 톤 유지

4. **✨ 추천사항 (recommendations)** - 4-6개 제공:
   - 바로 실천할 수 있는 구체적인 시간 관리 행동
   - 우선순위 조정과 일정 재배치 제안
   - %s
   - "~하세요", "~해보세요" 등 행동 지향적 문구 사용

**📌 중요 원칙:**
- 한국어로 자연스럽게 작성
- 긍정적인 부분 먼저 언급, 개선점은 부드럽게 제시
- 데이터를 기반으로 정확하고 구체적인 분석
- 동기부여와 성취감을 주는 메시지 포함`,
		assist.Digest(todos, now),
		st.Overdue,
		periodInsightHint(period),
		periodRecommendationHint(period),
	)

	return b.String()
}

func periodInsightHint(period assist.Period) string {
	if period == assist.PeriodWeek {
		return "요일별 업무 분포의 균형과 가장 생산적인 요일 추론"
	}
	return "당일 시간대별 집중도와 남은 시간 대비 미완료 작업량 평가"
}

func periodRecommendationHint(period assist.Period) string {
	if period == assist.PeriodWeek {
		return "주간 패턴 기반 다음 주 계획과 평일 업무 분산 방법 제안"
	}
	return "오늘 남은 시간 활용법과 내일로 미뤄도 되는 작업 식별"
}

func joinCategoryCounts(counts []assist.CategoryCount) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%s(%d개)", c.Name, c.Count)
	}
	return strings.Join(parts, ", ")
}

func joinWeekdayCounts(counts []assist.WeekdayCount) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%s(%d개)", c.Day, c.Count)
	}
	return strings.Join(parts, ", ")
}
