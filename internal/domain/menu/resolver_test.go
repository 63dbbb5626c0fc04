package menu

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"brewmenu/internal/domain/entity"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		product  *entity.Product
		lang     entity.Language
		wantName string
		wantDesc string
	}{
		{
			name: "empty override is ignored",
			product: &entity.Product{
				Name:          "Espresso",
				Description:   "Rich and bold",
				NameOverrides: map[entity.Language]string{entity.LanguageChinese: ""},
				Price:         decimal.RequireFromString("3.5"),
			},
			lang:     entity.LanguageChinese,
			wantName: "Espresso",
			wantDesc: "Rich and bold",
		},
		{
			name: "whitespace-only override is ignored",
			product: &entity.Product{
				Name:          "Espresso",
				NameOverrides: map[entity.Language]string{entity.LanguageChinese: "   "},
				Price:         decimal.RequireFromString("3.5"),
			},
			lang:     entity.LanguageChinese,
			wantName: "Espresso",
		},
		{
			name: "override is used for its language",
			product: &entity.Product{
				Name:          "Latte",
				NameOverrides: map[entity.Language]string{entity.LanguageVietnamese: "Latte Đá"},
				Price:         decimal.NewFromInt(5),
			},
			lang:     entity.LanguageVietnamese,
			wantName: "Latte Đá",
		},
		{
			name: "fields resolve independently",
			product: &entity.Product{
				Name:          "Chai Latte",
				Description:   "Spiced tea with milk",
				NameOverrides: map[entity.Language]string{entity.LanguageChinese: "印度奶茶"},
			},
			lang:     entity.LanguageChinese,
			wantName: "印度奶茶",
			wantDesc: "Spiced tea with milk",
		},
		{
			name: "canonical language ignores overrides",
			product: &entity.Product{
				Name:                 "Cold Brew",
				Description:          "Slow steeped",
				NameOverrides:        map[entity.Language]string{entity.LanguageEnglish: "Other", entity.LanguageChinese: "冷萃"},
				DescriptionOverrides: map[entity.Language]string{entity.LanguageEnglish: "Other"},
			},
			lang:     entity.LanguageEnglish,
			wantName: "Cold Brew",
			wantDesc: "Slow steeped",
		},
		{
			name: "language without overrides falls back",
			product: &entity.Product{
				Name:          "Matcha Latte",
				NameOverrides: map[entity.Language]string{entity.LanguageChinese: "抹茶拿铁"},
			},
			lang:     entity.LanguageVietnamese,
			wantName: "Matcha Latte",
		},
		{
			name:     "empty canonical stays empty",
			product:  &entity.Product{},
			lang:     entity.LanguageChinese,
			wantName: "",
			wantDesc: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.product, tt.lang)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantDesc, got.Description)
		})
	}
}

func TestResolve_IsDeterministic(t *testing.T) {
	p := &entity.Product{
		Name:                 "Berry Smoothie",
		Description:          "Mixed berries",
		DescriptionOverrides: map[entity.Language]string{entity.LanguageVietnamese: "Dâu tổng hợp"},
	}

	first := Resolve(p, entity.LanguageVietnamese)
	second := Resolve(p, entity.LanguageVietnamese)

	assert.Equal(t, first, second)
	assert.Equal(t, "Dâu tổng hợp", p.DescriptionOverrides[entity.LanguageVietnamese])
}

func TestResolve_NilProduct(t *testing.T) {
	assert.Equal(t, Display{}, Resolve(nil, entity.LanguageChinese))
}
