package config

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// AllowOrigins lists the origins permitted by the CORS middleware.
	AllowOrigins []string `yaml:"allow_origins"`

	// BodyLimit caps multipart upload size, e.g. "16M".
	BodyLimit string `yaml:"body_limit"`
}
