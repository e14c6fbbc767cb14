// Package site holds the site-wide configuration threaded through every
// page render. It is loaded once at start and never mutated afterwards.
package site

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultMailingListFormID is the hosted subscription form used when the
// config does not name one.
const DefaultMailingListFormID = "a748ded7ce0da69e6042fa1e21042506"

// MailingListEndpoint is the hosted form base URL. Submissions are plain
// browser form posts; nothing is proxied through this server.
const MailingListEndpoint = "https://app.getvero.com/forms/"

// TeamMember is one entry of the "Meet The Team" grid. ID matches the
// author_id used in blog post front matter.
type TeamMember struct {
	ID     string `mapstructure:"id"`
	Name   string `mapstructure:"name"`
	Avatar string `mapstructure:"avatar"`
	GitHub string `mapstructure:"github"`
}

// Metadata is the custom metadata block of the site config.
type Metadata struct {
	Team []TeamMember `mapstructure:"team"`
}

// CustomFields mirrors the customFields section of the site config.
type CustomFields struct {
	Metadata Metadata `mapstructure:"metadata"`
}

// MailingList configures the subscription form.
type MailingList struct {
	FormID string `mapstructure:"formID"`
}

// Action returns the form action URL.
func (m MailingList) Action() string {
	id := m.FormID
	if id == "" {
		id = DefaultMailingListFormID
	}
	return MailingListEndpoint + id
}

// Config is the site configuration.
type Config struct {
	Title        string       `mapstructure:"title"`
	Tagline      string       `mapstructure:"tagline"`
	URL          string       `mapstructure:"url"`
	CustomFields CustomFields `mapstructure:"customFields"`
	MailingList  MailingList  `mapstructure:"mailingList"`
}

// Team returns the configured team, possibly empty.
func (c Config) Team() []TeamMember {
	return c.CustomFields.Metadata.Team
}

// Member looks up a team member by id.
func (c Config) Member(id string) (TeamMember, bool) {
	for _, m := range c.Team() {
		if m.ID == id {
			return m, true
		}
	}
	return TeamMember{}, false
}

// SetDefaults fills in unset fields.
func (c *Config) SetDefaults() {
	if c.Title == "" {
		c.Title = "Vector"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.MailingList.FormID == "" {
		c.MailingList.FormID = DefaultMailingListFormID
	}
}

// Load reads the site config from path. An empty path searches for
// site.yaml in the working directory. A missing file is not an error: the
// defaults and VECTORSITE_* environment variables apply.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("title", "Vector")
	v.SetDefault("url", "http://localhost:3000")
	v.SetDefault("mailingList.formID", DefaultMailingListFormID)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("site")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("VECTORSITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return cfg, fmt.Errorf("read site config: %w", err)
		}
		logrus.Warn("no site config found, using defaults")
	} else {
		logrus.WithField("file", v.ConfigFileUsed()).Info("loaded site config")
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode site config: %w", err)
	}
	cfg.SetDefaults()
	return cfg, nil
}
