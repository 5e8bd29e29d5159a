package team

// Team groups employees under a lead.
type Team struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Department string   `json:"department"`
	LeadID     string   `json:"leadId"`
	Members    []string `json:"members"`
	CreatedAt  string   `json:"createdAt"`
}
