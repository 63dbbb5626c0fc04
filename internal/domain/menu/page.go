package menu

import (
	"brewmenu/internal/domain/entity"
	"brewmenu/internal/domain/i18n"
)

// ViewState is the lifecycle state of the menu collection.
type ViewState string

const (
	StateLoading ViewState = "loading"
	StateReady   ViewState = "ready"
	StateError   ViewState = "error"
)

// PageOptions is the per-request view state.
type PageOptions struct {
	State          ViewState
	Category       entity.Category
	Language       entity.Language
	CurrencySymbol string
	// CanEdit exposes the admin edit affordance on every card.
	CanEdit bool
}

// Card is one resolved product ready for rendering.
type Card struct {
	ID            string
	Name          string
	Description   string
	Price         string
	PriceText     string
	ImageURL      string
	Label         entity.Label
	Badge         string // Empty for absent or unknown labels.
	Category      entity.Category
	CategoryLabel string // Empty for unknown categories.
	Editable      bool
}

// CategoryTab is one entry of the category filter bar.
type CategoryTab struct {
	Key    entity.Category
	Label  string
	Active bool
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Code   entity.Language
	Active bool
}

// Page is the fully resolved storefront for one request.
type Page struct {
	State      ViewState
	Language   entity.Language
	Category   entity.Category
	Title      string
	Subtitle   string
	Categories []CategoryTab
	Languages  []LanguageOption
	Cards      []Card
	// Message is the loading text, the empty-category text or "" when cards are shown.
	Message string
	CanEdit bool
}

// BuildPage filters and resolves products for the given view state.
// Unsupported languages use the default table and unknown categories fall back to "all".
func BuildPage(products []*entity.Product, opts PageOptions) Page {
	lang := opts.Language
	if !lang.IsSupported() {
		lang = i18n.DefaultLanguage
	}
	category := opts.Category
	if !category.IsFilter() {
		category = entity.CategoryAll
	}
	state := opts.State
	if state == "" {
		state = StateReady
	}

	strs := i18n.Lookup(lang)
	page := Page{
		State:      state,
		Language:   lang,
		Category:   category,
		Title:      strs.MenuTitle,
		Subtitle:   strs.MenuSubtitle,
		Categories: categoryTabs(strs, category),
		Languages:  languageOptions(lang),
		Cards:      []Card{},
		CanEdit:    opts.CanEdit,
	}

	switch state {
	case StateLoading:
		page.Message = strs.Loading

		return page
	case StateError:
		page.Message = strs.LoadFailed

		return page
	}

	for _, p := range FilterByCategory(products, category) {
		if p == nil {
			continue
		}
		page.Cards = append(page.Cards, buildCard(p, lang, strs, opts))
	}
	if len(page.Cards) == 0 {
		page.Message = strs.NoItems
	}

	return page
}

func buildCard(p *entity.Product, lang entity.Language, strs i18n.Strings, opts PageOptions) Card {
	display := Resolve(p, lang)

	return Card{
		ID:            p.ID.String(),
		Name:          display.Name,
		Description:   display.Description,
		Price:         FormatPrice(p.Price),
		PriceText:     FormatPriceWithSymbol(p.Price, opts.CurrencySymbol),
		ImageURL:      p.ImageURL,
		Label:         p.Label,
		Badge:         strs.LabelBadge(p.Label),
		Category:      p.Category,
		CategoryLabel: strs.CategoryLabel(p.Category),
		Editable:      opts.CanEdit,
	}
}

func categoryTabs(strs i18n.Strings, active entity.Category) []CategoryTab {
	keys := append([]entity.Category{entity.CategoryAll}, entity.Categories...)
	tabs := make([]CategoryTab, 0, len(keys))
	for _, key := range keys {
		tabs = append(tabs, CategoryTab{Key: key, Label: strs.CategoryLabel(key), Active: key == active})
	}

	return tabs
}

func languageOptions(active entity.Language) []LanguageOption {
	supported := i18n.Supported()
	options := make([]LanguageOption, 0, len(supported))
	for _, l := range supported {
		options = append(options, LanguageOption{Code: l, Active: l == active})
	}

	return options
}
