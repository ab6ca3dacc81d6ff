package model

// VersionInfo carries application and database schema version details.
type VersionInfo struct {
	AppVersion string `json:"app_version"`
	DBVersion  int64  `json:"db_version"`
}

// AdvisorConfig is the stored configuration of the external narrative
// analysis service. The token is held encrypted at rest; the plaintext
// never leaves the service layer.
type AdvisorConfig struct {
	ID       string `json:"id"`
	Endpoint string `json:"endpoint"`
	Token    string `json:"-"`
	Enabled  bool   `json:"enabled"`
}
