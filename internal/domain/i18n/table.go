// Package i18n holds the static UI string table and language negotiation.
package i18n

import (
	"brewmenu/internal/domain/entity"
)

// Strings is every user-facing string of the storefront in one language.
type Strings struct {
	MenuTitle    string                     `json:"menuTitle"`
	MenuSubtitle string                     `json:"menuSubtitle"`
	Loading      string                     `json:"loading"`
	NoItems      string                     `json:"noItems"`
	AdminLogin   string                     `json:"adminLogin"`
	SignOut      string                     `json:"signOut"`
	Dashboard    string                     `json:"dashboard"`
	LoadFailed   string                     `json:"loadFailed"`
	Retry        string                     `json:"retry"`
	Categories   map[entity.Category]string `json:"categories"`
	Labels       map[entity.Label]string    `json:"labels"`
}

// CategoryLabel returns the localized category name, or "" for an unknown category.
func (s Strings) CategoryLabel(c entity.Category) string {
	return s.Categories[c]
}

// LabelBadge returns the badge text for a label, or "" when the label is absent or unknown.
func (s Strings) LabelBadge(l entity.Label) string {
	return s.Labels[l]
}

// DefaultLanguage is used whenever a requested language has no table.
const DefaultLanguage = entity.LanguageEnglish

var badges = map[entity.Label]string{
	entity.LabelNew:        "NEW",
	entity.LabelPopular:    "POPULAR",
	entity.LabelBestseller: "BESTSELLER",
}

var table = map[entity.Language]Strings{
	entity.LanguageEnglish: {
		MenuTitle:    "Our Drink Menu",
		MenuSubtitle: "Cambodian handmade, Cambodian taste, Cambodian Style",
		Loading:      "Loading menu...",
		NoItems:      "No drinks in this category yet.",
		AdminLogin:   "Admin Login",
		SignOut:      "Sign Out",
		Dashboard:    "Dashboard",
		LoadFailed:   "We couldn't load the menu.",
		Retry:        "Try again",
		Categories: map[entity.Category]string{
			entity.CategoryAll:      "All",
			entity.CategoryCoffee:   "Coffee",
			entity.CategoryTea:      "Tea",
			entity.CategorySmoothie: "Smoothies",
			entity.CategoryOther:    "Other",
		},
		Labels: badges,
	},
	entity.LanguageChinese: {
		MenuTitle:    "我们的饮品菜单",
		MenuSubtitle: "柬埔寨手工制作，柬埔寨味道，柬埔寨风格",
		Loading:      "正在加载菜单...",
		NoItems:      "该分类暂无饮品。",
		AdminLogin:   "管理员登录",
		SignOut:      "退出登录",
		Dashboard:    "管理后台",
		LoadFailed:   "菜单加载失败。",
		Retry:        "重试",
		Categories: map[entity.Category]string{
			entity.CategoryAll:      "全部",
			entity.CategoryCoffee:   "咖啡",
			entity.CategoryTea:      "茶饮",
			entity.CategorySmoothie: "奶昔",
			entity.CategoryOther:    "其他",
		},
		Labels: badges,
	},
	entity.LanguageVietnamese: {
		MenuTitle:    "Thực Đơn Đồ Uống",
		MenuSubtitle: "Thủ công Campuchia, hương vị Campuchia, phong cách Campuchia",
		Loading:      "Đang tải thực đơn...",
		NoItems:      "Chưa có đồ uống trong danh mục này.",
		AdminLogin:   "Đăng Nhập Admin",
		SignOut:      "Đăng Xuất",
		Dashboard:    "Bảng Điều Khiển",
		LoadFailed:   "Không thể tải thực đơn.",
		Retry:        "Thử lại",
		Categories: map[entity.Category]string{
			entity.CategoryAll:      "Tất Cả",
			entity.CategoryCoffee:   "Cà Phê",
			entity.CategoryTea:      "Trà",
			entity.CategorySmoothie: "Sinh Tố",
			entity.CategoryOther:    "Khác",
		},
		Labels: badges,
	},
}

// Lookup returns the table for lang, falling back to the default language for anything unsupported.
func Lookup(lang entity.Language) Strings {
	if s, ok := table[lang]; ok {
		return s
	}

	return table[DefaultLanguage]
}

// Supported lists the languages that have a table, in presentation order.
func Supported() []entity.Language {
	out := make([]entity.Language, 0, len(entity.SupportedLanguages))
	for _, l := range entity.SupportedLanguages {
		if _, ok := table[l]; ok {
			out = append(out, l)
		}
	}

	return out
}
