package models

// TeamCategory represents a classification of contest teams.
// Names are unique; AllowSelfRegistration controls whether teams may
// register themselves into the category.
type TeamCategory struct {
	ID                    uint   `gorm:"primaryKey"`
	Name                  string `gorm:"uniqueIndex;not null"`
	SortOrder             int    `gorm:"not null"`
	Color                 string `gorm:"size:32"`
	Visible               bool   `gorm:"not null"`
	AllowSelfRegistration bool   `gorm:"not null"`
}

func (c *TeamCategory) TableName() string {
	return "team_categories"
}
