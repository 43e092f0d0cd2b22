package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"github.com/danilapolakov92-cpu/danilapolakov92-cpu.github.io/internal/mirea"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"
)

const (
	DefaultGroup    = "ПКБО-01-24"
	DefaultTemplate = "template.html"
	DefaultOutput   = "index.html"
	DefaultFile     = "./data/config.yaml"
)

type Config struct {
	Group    string `yaml:"group"`
	APIURL   string `yaml:"api_url"`
	Template string `yaml:"template"`
	Output   string `yaml:"output"`

	DiscordWebhookID    string `yaml:"discord_webhook_id"`
	DiscordWebhookToken string `yaml:"discord_webhook_token"`
}

func Default() Config {
	return Config{
		Group:    DefaultGroup,
		APIURL:   mirea.DefaultBaseURL,
		Template: DefaultTemplate,
		Output:   DefaultOutput,
	}
}

// NotifyEnabled reports whether build summaries should be posted to Discord.
func (c Config) NotifyEnabled() bool {
	return c.DiscordWebhookID != "" && c.DiscordWebhookToken != ""
}

func (c Config) Validate() error {
	var err error

	if strings.TrimSpace(c.Group) == "" {
		err = multierr.Append(err, errors.New("group is empty"))
	}

	u, parseErr := url.Parse(c.APIURL)
	if parseErr != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		err = multierr.Append(err, fmt.Errorf("api url %q is not an absolute http(s) url", c.APIURL))
	}

	if c.Template == "" {
		err = multierr.Append(err, errors.New("template path is empty"))
	}

	if c.Output == "" {
		err = multierr.Append(err, errors.New("output path is empty"))
	}

	if (c.DiscordWebhookID == "") != (c.DiscordWebhookToken == "") {
		err = multierr.Append(err, errors.New("discord webhook id and token must be set together"))
	}

	return err
}

func readFile(afs afero.Fs, path string, c *Config) error {
	data, err := afero.ReadFile(afs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func override(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Load builds the configuration from defaults, the optional YAML file named
// by schedule_config, environment variables and finally the command line
// arguments, where the first argument is the group name. Call godotenv.Load
// beforehand to pick up a .env file.
func Load(afs afero.Fs, args []string) (Config, error) {
	c := Default()

	path := os.Getenv("schedule_config")
	if path == "" {
		path = DefaultFile
	}

	if err := readFile(afs, path, &c); err != nil {
		return Config{}, err
	}

	override(&c.Group, "schedule_group")
	override(&c.APIURL, "schedule_api_url")
	override(&c.Template, "schedule_template")
	override(&c.Output, "schedule_output")
	override(&c.DiscordWebhookID, "discord_webhook_id")
	override(&c.DiscordWebhookToken, "discord_webhook_token")

	if len(args) > 0 && args[0] != "" {
		c.Group = args[0]
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}
