package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Stream names (должны совпадать с конфигурацией jormun)
const (
	StreamMatrixRequest  = "stream:asgard:matrix:request"
	StreamMatrixResponse = "stream:asgard:matrix:response"

	// StreamDataField - поле сообщения с JSON полезной нагрузкой
	StreamDataField = "data"
)

// MatrixRequestEvent - входящее событие с запросом матрицы.
// Request хранится как сырой JSON, чтобы домен не зависел от dto.
type MatrixRequestEvent struct {
	RequestID uuid.UUID       `json:"request_id"`
	Request   json.RawMessage `json:"request"`
}

// MatrixResponseEvent - ответ на MatrixRequestEvent
type MatrixResponseEvent struct {
	RequestID uuid.UUID       `json:"request_id"`
	Response  json.RawMessage `json:"response,omitempty"`
	Error     string          `json:"error,omitempty"`
	Code      string          `json:"code,omitempty"`
}

// HasRequestID проверяет, что событие можно сопоставить с ответом
func (e *MatrixRequestEvent) HasRequestID() bool {
	return e.RequestID != uuid.Nil
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data map[string]interface{}
}

// Payload возвращает JSON из поля StreamDataField
func (m StreamMessage) Payload() ([]byte, error) {
	switch v := m.Data[StreamDataField].(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case nil:
		return nil, fmt.Errorf("message %s has no %q field", m.ID, StreamDataField)
	default:
		return nil, fmt.Errorf("message %s: unexpected %q type %T", m.ID, StreamDataField, v)
	}
}
