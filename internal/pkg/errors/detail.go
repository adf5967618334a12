package errors

import (
	"fmt"
	"strings"
)

// FormatDetail превращает поле detail из ответа travel API в одну строку.
// Строка возвращается как есть, массив ошибок валидации склеивается через запятую.
func FormatDetail(detail interface{}) (string, bool) {
	switch d := detail.(type) {
	case nil:
		return "", false
	case string:
		if strings.TrimSpace(d) == "" {
			return "", false
		}
		return d, true
	case []interface{}:
		parts := make([]string, 0, len(d))
		for _, item := range d {
			if msg := validationItemMessage(item); msg != "" {
				parts = append(parts, msg)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return "Validation errors: " + strings.Join(parts, ", "), true
	case map[string]interface{}:
		if msg := validationItemMessage(d); msg != "" {
			return msg, true
		}
		return "", false
	default:
		return fmt.Sprintf("%v", d), true
	}
}

func validationItemMessage(item interface{}) string {
	switch v := item.(type) {
	case string:
		return v
	case map[string]interface{}:
		if msg, ok := v["msg"].(string); ok && msg != "" {
			return msg
		}
		if msg, ok := v["message"].(string); ok && msg != "" {
			return msg
		}
		return fmt.Sprintf("%v", v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// BackendError строит ошибку для non-2xx ответа travel API
func BackendError(statusCode int, detail interface{}) *AppError {
	appErr := ErrBackend.WithDetails(map[string]interface{}{
		"backend_status": statusCode,
	})
	if msg, ok := FormatDetail(detail); ok {
		appErr.Message = msg
	}
	// 4xx пробрасываем как есть, 5xx travel API отдаём как 502
	if statusCode >= 400 && statusCode < 500 {
		appErr.StatusCode = statusCode
	}
	return appErr
}
