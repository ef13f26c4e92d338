package config

// Config holds the application configuration.
type Config struct {
	ClientID     string `yaml:"clientId" validate:"required"`
	SaveFolder   string `yaml:"saveFolder"`
	CreateFolder bool   `yaml:"createFolder"`
	Overwrite    bool   `yaml:"overwrite"`
	HTTPS        bool   `yaml:"https"`
	LikesLimit   int    `yaml:"likesLimit"`
	Logger       Logger `yaml:"logger"`
	Tag          Tag    `yaml:"tag"`
}

// Logger holds the configuration for the app logging
type Logger struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Tag holds the configuration for the optional ID3 tag writer. When
// disabled the downloaded file is the raw stream, untouched.
type Tag struct {
	Enabled bool `yaml:"enabled"`
}
