package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"leftpad/internal/domain"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "LEFTPAD__"

var configTemplate = `# config.yaml

# Fill
# Character used to pad when --fill is not given.
# Accepts a single character or an escape such as "\t" or "★".
# An empty value pads with spaces.
#
# Default: ""
#
fill: ""

# Length
# Minimum length, in bytes, when --length is not given
#
# Default: 0
#
length: 0

# Template
# Template used by the render command when --template is not given
# Placeholders: {name}, {name:10}, {name:10:*}, {num:#3}
#
# Default: ""
#
template: ""

# leftpad logs file
# If not defined, logs to stderr only
# Make sure to use forward slashes and include the filename with extension. e.g. "logs/leftpad.log"
#
# Optional
#
#logPath: ""

# Log level
#
# Default: "WARN"
#
# Options: "ERROR", "DEBUG", "INFO", "WARN", "TRACE"
#
logLevel: "WARN"

# Log Max Size
#
# Default: 50
#
# Max log size in megabytes
#
#logMaxSize: 50

# Log Max Backups
#
# Default: 3
#
# Max amount of old log files
#
#logMaxBackups: 3
`

func writeConfig(configPath string, configFile string) error {
	cfgPath := filepath.Join(configPath, configFile)

	// check if configPath exists, if not create it
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(configPath, os.ModePerm); err != nil {
			return errors.Wrapf(err, "could not create config directory: %s", configPath)
		}
	}

	// check if config exists, if not create it
	if _, err := os.Stat(cfgPath); errors.Is(err, os.ErrNotExist) {
		f, err := os.Create(cfgPath)
		if err != nil {
			return errors.Wrapf(err, "could not create config file: %s", cfgPath)
		}
		defer f.Close()

		if _, err = f.WriteString(configTemplate); err != nil {
			return errors.Wrapf(err, "could not write config file: %s", cfgPath)
		}

		return f.Sync()
	}

	return nil
}

type AppConfig struct {
	Config *domain.Config
	v      *viper.Viper
}

// New loads the config from configPath, or from the default search paths
// when configPath is empty, and applies LEFTPAD__ environment overrides.
func New(configPath string, version string) (*AppConfig, error) {
	c := &AppConfig{
		v: viper.New(),
	}
	c.defaults()
	c.Config = &domain.Config{
		Version:    version,
		ConfigPath: configPath,
	}

	if err := c.load(configPath); err != nil {
		return nil, err
	}
	if err := c.loadFromEnv(os.Environ()); err != nil {
		return nil, err
	}

	return c, nil
}

// ConfigFileUsed returns the file the config was read from, if any
func (c *AppConfig) ConfigFileUsed() string {
	return c.v.ConfigFileUsed()
}

func (c *AppConfig) defaults() {
	c.v.SetDefault("fill", "")
	c.v.SetDefault("length", 0)
	c.v.SetDefault("template", "")
	c.v.SetDefault("logPath", "")
	c.v.SetDefault("logLevel", "WARN")
	c.v.SetDefault("logMaxSize", 50)
	c.v.SetDefault("logMaxBackups", 3)
}

func (c *AppConfig) loadFromEnv(envs []string) error {
	for _, env := range envs {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}

		key, value, _ := strings.Cut(env, "=")
		if value == "" {
			continue
		}

		switch key {
		case envPrefix + "FILL":
			c.Config.Fill = value
		case envPrefix + "LENGTH":
			i, err := strconv.Atoi(value)
			if err != nil || i < 0 {
				return errors.Errorf("invalid %s: %q", key, value)
			}
			c.Config.Length = i
		case envPrefix + "TEMPLATE":
			c.Config.Template = value
		case envPrefix + "LOG_LEVEL":
			c.Config.LogLevel = value
		case envPrefix + "LOG_PATH":
			c.Config.LogPath = value
		case envPrefix + "LOG_MAX_SIZE":
			if i, _ := strconv.ParseInt(value, 10, 32); i > 0 {
				c.Config.LogMaxSize = int(i)
			}
		case envPrefix + "LOG_MAX_BACKUPS":
			if i, _ := strconv.ParseInt(value, 10, 32); i > 0 {
				c.Config.LogMaxBackups = int(i)
			}
		}
	}

	return nil
}

func (c *AppConfig) load(configPath string) error {
	c.v.SetConfigType("yaml")

	if configPath != "" {
		// clean trailing slash from configPath
		configPath = filepath.Clean(configPath)

		// check if path and file exists
		// if not, create path and file
		if err := writeConfig(configPath, "config.yaml"); err != nil {
			return err
		}

		c.v.SetConfigFile(filepath.Join(configPath, "config.yaml"))
	} else {
		c.v.SetConfigName("config")

		// Search config in directories
		c.v.AddConfigPath(".")
		c.v.AddConfigPath("$HOME/.config/leftpad")
		c.v.AddConfigPath("$HOME/.leftpad")
	}

	// read config, a missing file just means defaults
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.Wrapf(err, "could not read config file: %s", c.v.ConfigFileUsed())
		}
	}

	if err := c.v.Unmarshal(c.Config); err != nil {
		return errors.Wrapf(err, "could not unmarshal config file: %s", c.v.ConfigFileUsed())
	}

	if c.Config.Length < 0 {
		return errors.Errorf("length must not be negative: %d", c.Config.Length)
	}

	return nil
}
