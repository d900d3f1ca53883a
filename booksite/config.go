package booksite

import (
	_ "embed"
	"html/template"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const ConfigFile = "site.toml"

//go:embed default.toml
var defaultConfig string

type Link struct {
	Href      string `toml:"href"`
	Label     string `toml:"label"`
	Title     string `toml:"title"`
	AccessKey string `toml:"accesskey"`
	Suffix    string `toml:"suffix"`
}

type Update struct {
	Date        string        `toml:"date"`
	Description template.HTML `toml:"description"`
}

type Section struct {
	Heading string `toml:"heading"`
	Text    string `toml:"text"`
	Intro   string `toml:"intro"`
	Links   []Link `toml:"links"`
}

type Image struct {
	Src   string       `toml:"src"`
	Alt   string       `toml:"alt"`
	Style template.CSS `toml:"style"`
}

// Content is everything the page shows. HTML fields are trusted operator
// input and are emitted without escaping.
type Content struct {
	Title          string        `toml:"title"`
	Stylesheet     string        `toml:"stylesheet"`
	Heading        string        `toml:"heading"`
	Menu           []Link        `toml:"menu"`
	Welcome        template.HTML `toml:"welcome"`
	Intro          template.HTML `toml:"intro"`
	Cover          Image         `toml:"cover"`
	UpdatesHeading string        `toml:"updates_heading"`
	Updates        []Update      `toml:"updates"`
	Sidebar        []Section     `toml:"sidebar"`
	Footer         template.HTML `toml:"footer"`
}

type Config struct {
	ThemeRoot string  `toml:"theme_root"`
	Page      Content `toml:"page"`
}

func DefaultConfig() *Config {
	var config Config
	if _, err := toml.Decode(defaultConfig, &config); err != nil {
		panic(errors.Wrap(err, "embedded default.toml"))
	}

	return &config
}

// LoadConfig reads filename from the config directory and lays it over the
// embedded defaults. A missing file yields the defaults unchanged.
func LoadConfig(fs afero.Fs, filename string) (*Config, error) {
	path := filepath.Join(Env("CONFIG"), filename)
	config := DefaultConfig()

	data, err := afero.ReadFile(fs, path)
	if os.IsNotExist(err) {
		Debugf("no config at %s, using defaults", path)
		return config, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	var overlay Config
	md, err := toml.Decode(string(data), &overlay)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		Debugf("ignoring unknown keys in %s: %v", path, undecoded)
	}

	config.overlay(md, &overlay)

	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file %s", path)
	}

	return config, nil
}

func (config *Config) overlay(md toml.MetaData, o *Config) {
	if md.IsDefined("theme_root") {
		config.ThemeRoot = o.ThemeRoot
	}

	p, op := &config.Page, &o.Page
	set := func(key string) bool { return md.IsDefined("page", key) }

	if set("title") {
		p.Title = op.Title
	}
	if set("stylesheet") {
		p.Stylesheet = op.Stylesheet
	}
	if set("heading") {
		p.Heading = op.Heading
	}
	if set("menu") {
		p.Menu = op.Menu
	}
	if set("welcome") {
		p.Welcome = op.Welcome
	}
	if set("intro") {
		p.Intro = op.Intro
	}
	if set("cover") {
		p.Cover = op.Cover
	}
	if set("updates_heading") {
		p.UpdatesHeading = op.UpdatesHeading
	}
	if set("updates") {
		p.Updates = op.Updates
	}
	if set("sidebar") {
		p.Sidebar = op.Sidebar
	}
	if set("footer") {
		p.Footer = op.Footer
	}
}

// Menu is the navigation every page carries, as href/label pairs in order.
var Menu = []Link{
	{Href: "index.html", Label: "Home"},
	{Href: "data.html", Label: "Data"},
	{Href: "code.html", Label: "Code"},
	{Href: "errata.html", Label: "Errata"},
	{Href: "about.html", Label: "About the Book"},
	{Href: "contact.html", Label: "Contact"},
	{Href: "faq.html", Label: "FAQ"},
}

func (config *Config) Validate() error {
	if len(config.Page.Menu) != len(Menu) {
		return errors.Errorf("page.menu must have exactly %d items, got %d", len(Menu), len(config.Page.Menu))
	}

	for i, item := range config.Page.Menu {
		if item.Href != Menu[i].Href || item.Label != Menu[i].Label {
			return errors.Errorf("page.menu[%d] must be %s (%s), got %q (%q)", i, Menu[i].Label, Menu[i].Href, item.Label, item.Href)
		}
	}

	return nil
}

// Host derives the request host strings using this config's theme root.
func (config *Config) Host(name string) Host {
	return ParseHost(name).WithThemeRoot(config.ThemeRoot)
}
