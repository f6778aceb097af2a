package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, 201, map[string]string{"id": "abc"})

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"id":"abc"}}`, rec.Body.String())
}

func TestError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, 404, "Не найдено")

	assert.Equal(t, 404, rec.Code)
	assert.JSONEq(t, `{"error":"Не найдено"}`, rec.Body.String())
}

// Несериализуемое тело не роняет хендлер: статус уже записан, ошибка уходит в лог.
func TestJSON_UnserializableDoesNotPanic(t *testing.T) {
	rec := httptest.NewRecorder()

	require.NotPanics(t, func() {
		JSON(rec, 200, make(chan int))
	})
	assert.Equal(t, 200, rec.Code)
}
