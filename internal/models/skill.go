package models

// Skill навык пользователя.
type Skill struct {
	Username string `json:"username"`
	Skill    string `json:"skill"`
}

// Meta метаданные списочных ответов.
type Meta struct {
	Total int `json:"total"`
}

// SkillList список навыков пользователя.
type SkillList struct {
	Skills []string `json:"skills"`
	Meta   Meta     `json:"meta"`
}
