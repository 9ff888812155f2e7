package entity

// RotaConfig is the persisted rota configuration.
// Members order is the rotation order.
type RotaConfig struct {
	Members         []string          `json:"members"`
	StartMember     string            `json:"start_member"`
	SlackWebhookURL string            `json:"slack_webhook_url"`
	SlackIDMap      map[string]string `json:"slack_id_map"`
	Overrides       map[string]string `json:"overrides"`
}

// Settings holds the editable fields of RotaConfig, everything except overrides
type Settings struct {
	Members         []string          `json:"members"`
	StartMember     string            `json:"start_member"`
	SlackWebhookURL string            `json:"slack_webhook_url"`
	SlackIDMap      map[string]string `json:"slack_id_map"`
}

// Normalize replaces nil collections with empty ones so the config
// always serializes to lists and objects, never null.
func (c *RotaConfig) Normalize() {
	if c.Members == nil {
		c.Members = []string{}
	}
	if c.SlackIDMap == nil {
		c.SlackIDMap = map[string]string{}
	}
	if c.Overrides == nil {
		c.Overrides = map[string]string{}
	}
}
