package config

// Level names accepted for log_level.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Config is the top-level allies configuration, corresponding to .allies.yml.
type Config struct {
	Title         string       `yaml:"title" koanf:"title"`
	Description   string       `yaml:"description" koanf:"description"`
	BasePath      string       `yaml:"base_path" koanf:"base_path"`
	OutputDir     string       `yaml:"output_dir" koanf:"output_dir"`
	PublicDir     string       `yaml:"public_dir" koanf:"public_dir"`
	PublicInclude []string     `yaml:"public_include" koanf:"public_include"`
	PublicExclude []string     `yaml:"public_exclude" koanf:"public_exclude"`
	Server        ServerConfig `yaml:"server" koanf:"server"`
	LogLevel      string       `yaml:"log_level" koanf:"log_level"`
}

// ServerConfig holds settings for the live server.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
