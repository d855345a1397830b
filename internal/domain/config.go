package domain

type Config struct {
	Version       string
	ConfigPath    string
	Fill          string `yaml:"fill"`
	Length        int    `yaml:"length"`
	Template      string `yaml:"template"`
	LogPath       string `yaml:"logPath"`
	LogLevel      string `yaml:"logLevel"`
	LogMaxSize    int    `yaml:"logMaxSize"` // in megabytes
	LogMaxBackups int    `yaml:"logMaxBackups"`
}
