package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
)

const french = `
Settings = "Réglages"
Back = "Retour"
Sound = "Son"
`

func TestCatalogTranslates(t *testing.T) {
	c := New(language.English)
	if err := c.LoadBytes([]byte(french), "fr.toml"); err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}
	if err := c.Add(language.German, "Back", "Zurück"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if got := c.Translate("Back"); got != "Back" {
		t.Errorf("English Translate(Back) = %q", got)
	}

	if err := c.SetLanguage("fr-CA", "en"); err != nil {
		t.Fatalf("SetLanguage() error = %v", err)
	}
	tests := map[string]string{
		"Settings":  "Réglages",
		"Back":      "Retour",
		"Vibration": "Vibration",
		"":          "",
	}
	for source, want := range tests {
		if got := c.Translate(source); got != want {
			t.Errorf("Translate(%q) = %q, want %q", source, got, want)
		}
	}

	if err := c.SetLanguage("de"); err != nil {
		t.Fatalf("SetLanguage() error = %v", err)
	}
	if got := c.Translate("Back"); got != "Zurück" {
		t.Errorf("German Translate(Back) = %q", got)
	}
	if got := c.Translate("Sound"); got != "Sound" {
		t.Errorf("German Translate(Sound) = %q, want the source text", got)
	}
}

func TestCatalogLanguage(t *testing.T) {
	c := New(language.English)
	if err := c.LoadBytes([]byte(french), "fr.toml"); err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}
	if err := c.SetLanguage("fr-CA"); err != nil {
		t.Fatalf("SetLanguage() error = %v", err)
	}
	if base, _ := c.Language().Base(); base.String() != "fr" {
		t.Errorf("Language() = %v, want French", c.Language())
	}
	found := false
	for _, tag := range c.Languages() {
		found = found || tag == language.French
	}
	if !found {
		t.Errorf("Languages() = %v, want French among them", c.Languages())
	}
}

func TestSetLanguageRejectsMalformedTags(t *testing.T) {
	c := New(language.English)
	if err := c.SetLanguage("not a language!"); err == nil {
		t.Error("SetLanguage() expected error")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fr.toml")
	if err := os.WriteFile(path, []byte(french), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(language.English)
	if err := c.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if err := c.SetLanguage("fr"); err != nil {
		t.Fatal(err)
	}
	if got := c.Translate("Sound"); got != "Son" {
		t.Errorf("Translate(Sound) = %q", got)
	}

	if err := c.LoadFile(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("LoadFile() of a missing file expected error")
	}
	if err := c.LoadBytes([]byte("Settings = "), "es.toml"); err == nil {
		t.Error("LoadBytes() of malformed TOML expected error")
	}
}
