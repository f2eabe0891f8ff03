package config

type ServiceConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`

	// SessionSecret signs the session cookies.
	SessionSecret string `yaml:"session_secret"`
	// SessionMaxAgeMin is the session lifetime in minutes.
	SessionMaxAgeMin int `yaml:"session_max_age_min"`

	// AdminToken is the trusted-header fallback accepted by the admin
	// guard in place of a session (X-Admin-Token).
	AdminToken string `yaml:"admin_token"`

	// Fixed administrator credential, checked when no Admin row matches.
	AdminUsername string `yaml:"admin_username"`
	AdminPassword string `yaml:"admin_password"`

	// UploadDir is where payment proofs and sponsor logos are stored.
	UploadDir string `yaml:"upload_dir"`
	// AssetsDir holds the house emblem images embedded into tickets.
	AssetsDir string `yaml:"assets_dir"`
}
