package clients

import (
	"context"
	"errors"
	"net/http"

	"github.com/jboard/orchestrator/internal/models"
)

// AnalysisClient клиент сервиса анализа соответствия навыков вакансии.
type AnalysisClient struct {
	*Client
}

// NewAnalysisClient создаёт клиента сервиса анализа.
func NewAnalysisClient(c *Client) *AnalysisClient {
	return &AnalysisClient{Client: c}
}

// AnalyseMatch запрашивает анализ. Вызов дорогой, результат кэшируется выше.
func (c *AnalysisClient) AnalyseMatch(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	var result models.AnalysisResult
	err := c.do(ctx, "clients.AnalysisClient.AnalyseMatch", http.MethodPost, "/analyse", nil, req, &result)
	if err != nil && !errors.Is(err, errEmptyBody) {
		return nil, err
	}
	return &result, nil
}
