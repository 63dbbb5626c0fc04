package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"brewmenu/internal/domain/entity"
)

func TestLookup_SupportedLanguages(t *testing.T) {
	assert.Equal(t, "Our Drink Menu", Lookup(entity.LanguageEnglish).MenuTitle)
	assert.Equal(t, "我们的饮品菜单", Lookup(entity.LanguageChinese).MenuTitle)
	assert.Equal(t, "Thực Đơn Đồ Uống", Lookup(entity.LanguageVietnamese).MenuTitle)
}

func TestLookup_UnsupportedFallsBackToDefault(t *testing.T) {
	for _, code := range []entity.Language{"fr", "", "EN", "zh-CN"} {
		assert.Equal(t, Lookup(DefaultLanguage), Lookup(code), code)
	}
}

func TestLookup_EveryTableIsComplete(t *testing.T) {
	for _, lang := range Supported() {
		s := Lookup(lang)
		assert.NotEmpty(t, s.MenuTitle, lang)
		assert.NotEmpty(t, s.NoItems, lang)
		assert.NotEmpty(t, s.CategoryLabel(entity.CategoryAll), lang)
		for _, c := range entity.Categories {
			assert.NotEmpty(t, s.CategoryLabel(c), "%s/%s", lang, c)
		}
		for _, l := range entity.Labels {
			assert.NotEmpty(t, s.LabelBadge(l), "%s/%s", lang, l)
		}
	}
}

func TestStrings_UnknownKeysDegrade(t *testing.T) {
	s := Lookup(entity.LanguageEnglish)

	assert.Empty(t, s.CategoryLabel("juice"))
	assert.Empty(t, s.LabelBadge("seasonal"))
	assert.Empty(t, s.LabelBadge(entity.LabelNone))
	assert.Equal(t, "BESTSELLER", s.LabelBadge(entity.LabelBestseller))
}

func TestParse(t *testing.T) {
	tests := []struct {
		raw    string
		want   entity.Language
		wantOK bool
	}{
		{raw: "en", want: entity.LanguageEnglish, wantOK: true},
		{raw: "ZH", want: entity.LanguageChinese, wantOK: true},
		{raw: "zh-CN", want: entity.LanguageChinese, wantOK: true},
		{raw: "vi_VN", want: entity.LanguageVietnamese, wantOK: true},
		{raw: "", wantOK: false},
		{raw: "not a tag!", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := Parse(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFromAcceptLanguage(t *testing.T) {
	got, ok := FromAcceptLanguage("vi-VN,vi;q=0.9,en;q=0.8")
	assert.True(t, ok)
	assert.Equal(t, entity.LanguageVietnamese, got)

	_, ok = FromAcceptLanguage("")
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, entity.LanguageChinese, Resolve("", "bogus!", "zh"))
	assert.Equal(t, DefaultLanguage, Resolve("", "bogus!"))
}
