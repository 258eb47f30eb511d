package messages

import (
	"fmt"
	"strings"
)

// Language represents a supported output language.
type Language string

const (
	English Language = "en"
	Korean  Language = "ko"
)

// DefaultLanguage is the fallback language.
const DefaultLanguage = Korean

// Key identifies a catalog entry.
type Key string

func (k Key) String() string {
	return string(k)
}

// Message is a language-agnostic piece of user-facing text: a catalog key plus the
// arguments for its template. Args of type Key are translated as well; after a JSON
// round trip they come back as plain strings, so string args naming a catalog entry
// are translated too.
type Message struct {
	Key  Key   `json:"key"`
	Args []any `json:"args,omitempty"`
}

func New(key Key, args ...any) Message {
	return Message{
		Key:  key,
		Args: args,
	}
}

func (m Message) IsZero() bool {
	return m.Key == ""
}

type Catalog struct {
	defaultLang  Language
	translations map[Language]map[Key]string
}

func NewCatalog(defaultLang Language) *Catalog {
	if !IsSupported(defaultLang) {
		defaultLang = DefaultLanguage
	}
	return &Catalog{
		defaultLang:  defaultLang,
		translations: translations,
	}
}

func (c *Catalog) DefaultLanguage() Language {
	return c.defaultLang
}

// Template returns the raw template for the key in the given language, falling back
// to the catalog default language, and then to the key itself.
func (c *Catalog) Template(lang Language, key Key) string {
	if langTranslations, ok := c.translations[lang]; ok {
		if tmpl, ok := langTranslations[key]; ok {
			return tmpl
		}
	}
	if lang != c.defaultLang {
		if tmpl, ok := c.translations[c.defaultLang][key]; ok {
			return tmpl
		}
	}
	return string(key)
}

func (c *Catalog) Render(lang Language, msg Message) string {
	if msg.IsZero() {
		return ""
	}

	tmpl := c.Template(lang, msg.Key)
	if len(msg.Args) == 0 {
		return tmpl
	}

	args := make([]any, len(msg.Args))
	for i, arg := range msg.Args {
		switch a := arg.(type) {
		case Key:
			args[i] = c.Template(lang, a)
		case string:
			if c.has(Key(a)) {
				args[i] = c.Template(lang, Key(a))
			} else {
				args[i] = a
			}
		default:
			args[i] = arg
		}
	}
	return fmt.Sprintf(tmpl, args...)
}

func (c *Catalog) has(key Key) bool {
	_, ok := c.translations[c.defaultLang][key]
	return ok
}

func (c *Catalog) RenderAll(lang Language, msgs []Message) []string {
	rendered := make([]string, 0, len(msgs))
	for _, m := range msgs {
		rendered = append(rendered, c.Render(lang, m))
	}
	return rendered
}

func SupportedLanguages() []Language {
	return []Language{Korean, English}
}

func IsSupported(lang Language) bool {
	_, ok := translations[lang]
	return ok
}

// ParseLanguage accepts values like "en", "en-US" or a full Accept-Language header
// and returns the first supported language found, or fallback.
func ParseLanguage(value string, fallback Language) Language {
	for _, part := range strings.Split(value, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if len(tag) < 2 {
			continue
		}
		lang := Language(strings.ToLower(tag[:2]))
		if IsSupported(lang) {
			return lang
		}
	}
	return fallback
}
