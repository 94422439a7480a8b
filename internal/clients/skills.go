package clients

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/jboard/orchestrator/internal/models"
)

// skillsResponse ответ сервиса навыков.
type skillsResponse struct {
	Username string   `json:"username"`
	Skills   []string `json:"skills"`
}

// SkillClient клиент хранилища навыков.
type SkillClient struct {
	*Client
}

// NewSkillClient создаёт клиента хранилища навыков.
func NewSkillClient(c *Client) *SkillClient {
	return &SkillClient{Client: c}
}

// GetAllSkills возвращает навыки пользователя. Пустой ответ даёт пустой список.
func (c *SkillClient) GetAllSkills(ctx context.Context, username string) ([]models.Skill, error) {
	const op = "clients.SkillClient.GetAllSkills"
	var resp *skillsResponse
	err := c.do(ctx, op, http.MethodGet, "/skills", url.Values{"username": {username}}, nil, &resp)
	if errors.Is(err, errEmptyBody) {
		return []models.Skill{}, nil
	}
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return []models.Skill{}, nil
	}

	skills := make([]models.Skill, 0, len(resp.Skills))
	for _, s := range resp.Skills {
		skills = append(skills, models.Skill{Username: resp.Username, Skill: s})
	}
	return skills, nil
}

// AddSkill добавляет навык пользователю.
func (c *SkillClient) AddSkill(ctx context.Context, skill models.Skill) error {
	return c.do(ctx, "clients.SkillClient.AddSkill", http.MethodPost, "/skills", nil, skill, nil)
}

// RemoveSkill удаляет навык пользователя.
func (c *SkillClient) RemoveSkill(ctx context.Context, skill models.Skill) error {
	return c.do(ctx, "clients.SkillClient.RemoveSkill", http.MethodPut, "/skills", nil, skill, nil)
}

// DeleteAllSkills удаляет все навыки пользователя.
func (c *SkillClient) DeleteAllSkills(ctx context.Context, username string) error {
	return c.do(ctx, "clients.SkillClient.DeleteAllSkills", http.MethodDelete, "/skills",
		url.Values{"username": {username}}, nil, nil)
}
