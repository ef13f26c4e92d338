package config

var defaultConfig = Config{
	// The baked-in public web client id; SOUNDCLOUD_CLIENT_ID overrides
	// it. An empty save folder means the current directory.
	ClientID:     "02gUJC0hH2ct1EGOcYXQIzRFU91c72Ea",
	SaveFolder:   "",
	CreateFolder: false,
	Overwrite:    false,
	HTTPS:        false,
	LikesLimit:   10,
	Logger: Logger{
		Level:  "info",
		Format: "text",
	},
	Tag: Tag{
		Enabled: false,
	},
}
