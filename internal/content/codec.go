package content

import (
	"encoding/json"
	"strings"

	"storefront/internal/logger"

	"go.uber.org/zap"
)

// Decode разбирает сохранённый payload секции в общий структурированный вид.
// Битый JSON — не ошибка вызова: возвращается пустой объект, дальше всё
// заполняет слой дефолтов. Сломанная секция деградирует до дефолтного
// контента и никогда не роняет сборку страницы.
func Decode(raw string) map[string]any {
	if strings.TrimSpace(raw) == "" {
		return map[string]any{}
	}

	var v map[string]any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		logger.Log.Warn("Контент секции не разобран, применяются значения по умолчанию",
			zap.Int("raw_len", len(raw)),
			zap.Error(err),
		)
		return map[string]any{}
	}
	if v == nil {
		v = map[string]any{}
	}
	return v
}

// Encode сериализует контент секции для хранения. Несериализуемое значение
// деградирует до пустого объекта, а не до ошибки.
func Encode(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		logger.Log.Warn("Контент секции не сериализован, сохраняется пустой объект", zap.Error(err))
		return "{}"
	}
	return string(b)
}
