package models

import "encoding/json"

// AnalysisRequest запрос к сервису анализа соответствия.
type AnalysisRequest struct {
	Position string   `json:"position"`
	Skills   []string `json:"skills"`
}

// AnalysisResult ответ сервиса анализа. Сервис возвращает произвольный JSON,
// поэтому кроме сообщения сохраняется исходное тело.
type AnalysisResult struct {
	Message string          `json:"message,omitempty"`
	Raw     json.RawMessage `json:"-"`
}

// MarshalJSON отдаёт исходное тело ответа, если оно есть.
func (a AnalysisResult) MarshalJSON() ([]byte, error) {
	if len(a.Raw) > 0 {
		return a.Raw, nil
	}
	type plain AnalysisResult
	return json.Marshal(plain(a))
}

// UnmarshalJSON сохраняет исходное тело и извлекает сообщение.
func (a *AnalysisResult) UnmarshalJSON(data []byte) error {
	type plain AnalysisResult
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = AnalysisResult(p)
	a.Raw = append(json.RawMessage(nil), data...)
	return nil
}
