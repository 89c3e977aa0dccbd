package entity

// Setting is a key/value row in the settings table. The bill sequence state
// (lastBillNumber, lastBillDate) lives here alongside any operator-defined
// keys.
type Setting struct {
	Key   string `gorm:"primaryKey;size:100" json:"key"`
	Value string `gorm:"not null" json:"value"`
}

// Well-known setting keys owned by the sequence generator.
const (
	SettingLastBillNumber = "lastBillNumber"
	SettingLastBillDate   = "lastBillDate"
)

// TableName returns the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}
