// Package menu holds the pure rules that turn stored products into what a customer sees.
// Nothing here performs I/O or keeps state.
package menu

import (
	"strings"

	"brewmenu/internal/domain/entity"
)

// Display is the text shown for a product in one language.
type Display struct {
	Name        string
	Description string
}

// Resolve computes the displayed name and description of p for lang.
// Each field is resolved on its own: the override for lang wins when present and not blank,
// otherwise the canonical field is used. The canonical language always yields canonical fields.
func Resolve(p *entity.Product, lang entity.Language) Display {
	if p == nil {
		return Display{}
	}

	return Display{
		Name:        resolveField(p.Name, p.NameOverrides, lang),
		Description: resolveField(p.Description, p.DescriptionOverrides, lang),
	}
}

func resolveField(canonical string, overrides map[entity.Language]string, lang entity.Language) string {
	if lang == entity.CanonicalLanguage {
		return canonical
	}

	if override := overrides[lang]; strings.TrimSpace(override) != "" {
		return override
	}

	return canonical
}
