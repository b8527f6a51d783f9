package dto

// CreateRegistrationRequest carries a raw submission from the public form.
// Dates arrive as text ("2006-01-02" or "02/01/2006") and are normalized by
// the validation layer.
type CreateRegistrationRequest struct {
	FullName       string `json:"fullName"`
	Phone          string `json:"phone"`
	CCCD           string `json:"cccd"`
	Gender         string `json:"gender"`
	BirthDate      string `json:"birthDate"`
	Address        string `json:"address"`
	CCCDIssueDate  string `json:"cccdIssueDate"`
	CCCDExpiryDate string `json:"cccdExpiryDate"`
	Factory        string `json:"factory"`
}

type CreateRegistrationResponse struct {
	Success        bool                    `json:"success"`
	Message        string                  `json:"message"`
	RegistrationID uint                    `json:"registrationId"`
	Data           RegistrationCreatedData `json:"data"`
}

// RegistrationCreatedData echoes the subset of fields the public form shows
// on its confirmation screen.
type RegistrationCreatedData struct {
	FullName         string `json:"fullName"`
	Phone            string `json:"phone"`
	Factory          string `json:"factory"`
	RegistrationDate string `json:"registrationDate"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type StatisticsData struct {
	Total       int64            `json:"total"`
	ByFactory   map[string]int64 `json:"byFactory"`
	ByGender    map[string]int64 `json:"byGender"`
	Recent7Days int64            `json:"recent7Days"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Uptime      string `json:"uptime"`
	Environment string `json:"environment"`
	DB          string `json:"db"`
}
