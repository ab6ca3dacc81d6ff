package request

// AdvisorConfigRequest updates the narrative analysis service configuration.
type AdvisorConfigRequest struct {
	Endpoint string `json:"endpoint"`
	Token    string `json:"token"`
	Enabled  bool   `json:"enabled"`
}
