package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ccw-labs/skillhub/internal/branding"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	fileName = "skillhub"
	fileType = "yaml"
)

// Config keys.
const (
	KeySkillsDir  = "skills_dir"
	KeyIndexFile  = "index_file"
	KeyReadmeFile = "readme_file"
	KeyAuthor     = "author"
	KeyPathPrefix = "path_prefix"
	KeyExclude    = "exclude"
	KeyLogLevel   = "log_level"
	KeyLogFormat  = "log_format"
)

// Keys returns every recognized config key.
func Keys() []string {
	return []string{
		KeySkillsDir, KeyIndexFile, KeyReadmeFile, KeyAuthor,
		KeyPathPrefix, KeyExclude, KeyLogLevel, KeyLogFormat,
	}
}

// validate is shared; building a validator is comparatively expensive.
var validate = validator.New()

// root is the hub directory the config file and relative paths resolve against.
var root = "."

// Settings is the resolved configuration for one run.
type Settings struct {
	Root       string   `mapstructure:"-"`
	SkillsDir  string   `mapstructure:"skills_dir" validate:"required"`
	IndexFile  string   `mapstructure:"index_file" validate:"required"`
	ReadmeFile string   `mapstructure:"readme_file" validate:"required"`
	Author     string   `mapstructure:"author" validate:"required"`
	PathPrefix string   `mapstructure:"path_prefix" validate:"required"`
	Exclude    []string `mapstructure:"exclude"`
	LogLevel   string   `mapstructure:"log_level" validate:"oneof=trace debug info warn warning error"`
	LogFormat  string   `mapstructure:"log_format" validate:"oneof=text json"`
}

// FilePath returns the path of the config file (<root>/skillhub.yaml).
func FilePath() string {
	return filepath.Join(root, fileName+"."+fileType)
}

func setDefaults() {
	viper.SetDefault(KeySkillsDir, filepath.Join(".claude", "skills"))
	viper.SetDefault(KeyIndexFile, filepath.Join("skill-hub", "index.json"))
	viper.SetDefault(KeyReadmeFile, "README.md")
	viper.SetDefault(KeyAuthor, branding.Author())
	viper.SetDefault(KeyPathPrefix, "skills")
	viper.SetDefault(KeyExclude, []string{})
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFormat, "text")
}

// Load initializes Viper for the hub rooted at dir. A missing config file is
// not an error; a config file that exists but cannot be parsed is.
func Load(dir string) error {
	if dir == "" {
		dir = "."
	}
	root = dir

	setDefaults()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	if _, err := os.Stat(FilePath()); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Current unmarshals and validates the loaded configuration. Relative paths
// are resolved against the hub root.
func Current() (*Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	s.Root = root
	s.SkillsDir = resolve(root, s.SkillsDir)
	s.IndexFile = resolve(root, s.IndexFile)
	s.ReadmeFile = resolve(root, s.ReadmeFile)
	return &s, nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
