package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_IsValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.IsValid(), c)
		assert.True(t, c.IsFilter(), c)
	}

	assert.False(t, CategoryAll.IsValid())
	assert.True(t, CategoryAll.IsFilter())
	assert.False(t, Category("Coffee").IsValid())
	assert.False(t, Category("juice").IsFilter())
}

func TestLabel_IsValid(t *testing.T) {
	assert.True(t, LabelNone.IsValid())
	for _, l := range Labels {
		assert.True(t, l.IsValid(), l)
	}
	assert.False(t, Label("seasonal").IsValid())
}

func TestProduct_CloneDoesNotShareOverrides(t *testing.T) {
	original := &Product{
		Name:          "Latte",
		NameOverrides: map[Language]string{LanguageVietnamese: "Latte Đá"},
	}

	cloned := original.Clone()
	cloned.NameOverrides[LanguageVietnamese] = "changed"

	assert.Equal(t, "Latte Đá", original.NameOverrides[LanguageVietnamese])
	assert.Nil(t, cloned.DescriptionOverrides)

	var nilProduct *Product
	assert.Nil(t, nilProduct.Clone())
}

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"user", "admin", "barista", "admin"})

	assert.Equal(t, Roles{RoleUser, RoleAdmin}, roles)
	assert.Equal(t, []string{"user", "admin"}, roles.ToStrings())

	u := &User{Roles: roles}
	assert.True(t, u.IsAdmin())
	assert.False(t, (&User{Roles: Roles{RoleUser}}).IsAdmin())
}

func TestLanguage(t *testing.T) {
	assert.True(t, LanguageChinese.IsSupported())
	assert.False(t, Language("fr").IsSupported())
	assert.Equal(t, []Language{LanguageChinese, LanguageVietnamese}, OverrideLanguages())
	assert.Equal(t, LanguageEnglish, SupportedLanguages[0])
}
