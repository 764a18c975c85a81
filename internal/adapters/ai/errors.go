package ai

import (
	"errors"
	"strings"

	"github.com/taskmind/taskmind/internal/domain/assist"
)

// Classify maps an upstream failure to an *assist.Error by substring
// matching on the error text. The upstream SDK does not expose typed
// errors, so the match set mirrors the message fragments it is known to
// produce; anything unrecognized falls back to the operation code.
//
// An error that is already an *assist.Error passes through unchanged.
func Classify(fallback assist.Code, err error) *assist.Error {
	var aerr *assist.Error
	if errors.As(err, &aerr) {
		return aerr
	}

	msg := err.Error()
	lower := strings.ToLower(msg)

	code := fallback
	message := fallbackMessage(fallback)

	switch {
	case strings.Contains(lower, "api key"):
		code = assist.CodeInvalidAPIKey
		message = "AI API 키가 올바르지 않습니다. 관리자에게 문의하세요."
	case strings.Contains(lower, "quota"), strings.Contains(lower, "rate limit"), strings.Contains(msg, "429"):
		code = assist.CodeQuotaExceeded
		message = "AI API 사용량 한도에 도달했습니다. 잠시 후 다시 시도해주세요."
	case strings.Contains(lower, "network"), strings.Contains(msg, "ECONNREFUSED"),
		strings.Contains(lower, "connection refused"), strings.Contains(lower, "timeout"),
		strings.Contains(lower, "deadline exceeded"):
		code = assist.CodeNetworkError
		message = "네트워크 연결에 문제가 있습니다. 인터넷 연결을 확인하고 다시 시도해주세요."
	// The model and schema codes exist only on the parse surface; an
	// analysis failure with the same message keeps the analysis fallback.
	case fallback == assist.CodeParseError &&
		(strings.Contains(lower, "model") || strings.Contains(msg, "404")):
		code = assist.CodeModelNotFound
		message = "AI 모델을 찾을 수 없습니다. 관리자에게 문의하세요."
	case fallback == assist.CodeParseError &&
		(strings.Contains(lower, "schema") || strings.Contains(lower, "validation")):
		code = assist.CodeValidationError
		message = "AI 응답 형식이 올바르지 않습니다. 다시 시도해주세요."
	}

	return &assist.Error{Code: code, Message: message, Detail: msg}
}

func fallbackMessage(code assist.Code) string {
	if code == assist.CodeAnalysisError {
		return "할 일 분석 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
	}
	return "할 일 파싱 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
}
