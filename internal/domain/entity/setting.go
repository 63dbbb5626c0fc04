package entity

import "time"

// SettingKey names a shop preference.
type SettingKey string

const (
	SettingShopName SettingKey = "shop_name"
	SettingShopLogo SettingKey = "shop_logo"
)

// SettingKeys lists every shop preference.
var SettingKeys = []SettingKey{SettingShopName, SettingShopLogo}

func (k SettingKey) IsValid() bool {
	return k == SettingShopName || k == SettingShopLogo
}

// ShopSettings is the resolved pair of shop preferences.
type ShopSettings struct {
	Name string
	Logo string
	// LogoIsDefault is true when no logo override is stored.
	LogoIsDefault bool
}

// SettingChange is emitted when a preference is set or cleared.
type SettingChange struct {
	Key     SettingKey
	Value   string // Effective value after the change, defaults applied.
	Cleared bool
	At      time.Time
}
