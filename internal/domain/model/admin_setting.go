package model

// Feature toggle keys. Unset keys read as disabled.
const (
	SettingRegistrationOpen = "registration_open"
	SettingTeamsEnabled     = "teams_enabled"
	SettingLeaderboardOpen  = "leaderboard_open"
	SettingLoginEnabled     = "login_enabled"
)

// AdminSetting is a boolean feature toggle keyed by name.
type AdminSetting struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Key     string `gorm:"size:100;not null;uniqueIndex" json:"key"`
	Enabled bool   `gorm:"not null;default:false" json:"enabled"`
}

func (AdminSetting) TableName() string {
	return "admin_settings"
}
