package i18n

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Translator resolves message keys to localized strings
type Translator struct {
	messages map[string]string
}

// builtin is the embedded english dictionary, used as the fallback when no
// dictionary file is loaded or a key is missing from the loaded one
var builtin = map[string]string{
	"theme.custom_theme": "Custom theme",
	"theme.user_theme":   "User theme",
	"compare.identical":  "Folders are identical",
	"compare.differs":    "Folders differ",
}

// Default returns a translator backed by the embedded english dictionary
func Default() *Translator {
	return &Translator{messages: builtin}
}

// New creates a translator from an explicit message map
func New(messages map[string]string) *Translator {
	return &Translator{messages: messages}
}

// LoadFromFile loads a YAML dictionary (flat key/value map).
// Keys missing from the file fall back to the embedded dictionary.
func LoadFromFile(path string) (*Translator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file: %w", err)
	}

	messages := make(map[string]string)
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary file: %w", err)
	}

	return &Translator{messages: messages}, nil
}

// Get returns the localized string for key. Unknown keys fall back to the
// embedded dictionary, then to the key itself.
func (t *Translator) Get(key string) string {
	if msg, ok := t.messages[key]; ok {
		return msg
	}
	if msg, ok := builtin[key]; ok {
		return msg
	}
	return key
}
