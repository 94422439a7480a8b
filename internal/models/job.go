package models

// Job вакансия из каталога вакансий.
type Job struct {
	ID                      string `json:"id"`
	Title                   string `json:"title"`
	UpdatedAt               string `json:"updatedAt"`
	EmploymentType          string `json:"employmentType"`
	PublishedDate           string `json:"publishedDate"`
	ApplicationDeadline     string `json:"applicationDeadline"`
	CompensationTierSummary string `json:"compensationTierSummary"`
	WorkplaceType           string `json:"workplaceType"`
	OfficeLocation          string `json:"officeLocation"`
	Company                 string `json:"company"`
	URL                     string `json:"url"`
	SeniorityLevel          string `json:"seniorityLevel"`
	Field                   string `json:"field"`
}

// JobList список вакансий с метаданными.
type JobList struct {
	Data []Job `json:"data"`
	Meta Meta  `json:"meta"`
}
