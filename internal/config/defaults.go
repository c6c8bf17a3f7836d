package config

// DefaultBasePath makes every emitted asset reference relative, so a build
// can be hosted under any sub-path (e.g. a pages subdirectory).
const DefaultBasePath = "./"

// DefaultPublicExcludes are glob patterns never copied from the public dir.
var DefaultPublicExcludes = []string{
	".DS_Store",
	"**/*.tmp",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:         "Digital Allies V2",
		Description:   "Go + chi + WebSockets + html/template",
		BasePath:      DefaultBasePath,
		OutputDir:     "dist",
		PublicDir:     "public",
		PublicInclude: []string{"**"},
		PublicExclude: append([]string(nil), DefaultPublicExcludes...),
		Server: ServerConfig{
			Port:            8080,
			AllowAllOrigins: false,
		},
		LogLevel: LevelInfo,
	}
}
