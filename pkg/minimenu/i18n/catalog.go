// Package i18n translates menu titles, labels and details. Message IDs are
// the untranslated strings themselves, so a menu built in the default
// language needs no changes to be localized.
package i18n

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/internal"
)

var _ minimenu.Localizer = (*Catalog)(nil)

// Catalog holds translations for several languages and translates into the
// active one.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	active    []language.Tag
}

// New creates an empty catalog whose source strings are in base.
func New(base language.Tag) *Catalog {
	bundle := i18n.NewBundle(base)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return &Catalog{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, base.String()),
		active:    []language.Tag{base},
	}
}

// LoadFile reads a message file such as "fr.toml". The language comes from
// the file name.
func (c *Catalog) LoadFile(path string) error {
	if _, err := c.bundle.LoadMessageFile(path); err != nil {
		return fmt.Errorf("i18n: load %s: %w", path, err)
	}
	return nil
}

// LoadBytes parses message file contents. name supplies the language and
// format, e.g. "de.toml".
func (c *Catalog) LoadBytes(data []byte, name string) error {
	if _, err := c.bundle.ParseMessageFileBytes(data, name); err != nil {
		return fmt.Errorf("i18n: parse %s: %w", name, err)
	}
	return nil
}

// Add registers a single translation.
func (c *Catalog) Add(tag language.Tag, source, translation string) error {
	return c.bundle.AddMessages(tag, &i18n.Message{ID: source, Other: translation})
}

// SetLanguage selects the active language by preference order. Each entry
// is a BCP 47 tag such as "fr" or "pt-BR".
func (c *Catalog) SetLanguage(preferred ...string) error {
	tags := make([]language.Tag, 0, len(preferred))
	for _, p := range preferred {
		tag, err := language.Parse(p)
		if err != nil {
			return fmt.Errorf("i18n: language %q: %w", p, err)
		}
		tags = append(tags, tag)
	}

	c.active = tags
	c.localizer = i18n.NewLocalizer(c.bundle, preferred...)
	internal.GetInternalLogger().Debug("Language selected", "preferred", preferred, "matched", c.Language().String())
	return nil
}

// Language is the loaded language that best matches the preference list.
func (c *Catalog) Language() language.Tag {
	available := c.bundle.LanguageTags()
	if len(available) == 0 {
		return language.Und
	}
	_, index, _ := language.NewMatcher(available).Match(c.active...)
	return available[index]
}

// Languages lists the languages with loaded messages.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// Translate returns the active language's text for source, or source when
// there is none.
func (c *Catalog) Translate(source string) string {
	if source == "" {
		return source
	}
	text, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: source})
	if err != nil || text == "" {
		return source
	}
	return text
}
