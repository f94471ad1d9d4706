package model

// CountryBlock is a named group of countries (e.g. a region or market).
type CountryBlock struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	Countries []Country `gorm:"foreignKey:CountryBlockID;constraint:OnDelete:RESTRICT" json:"countries,omitempty"`
}

// Country belongs to exactly one country block and owns courses.
type Country struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	CountryBlockID uint         `gorm:"not null;index" json:"country_block_id"`
	CountryBlock   CountryBlock `gorm:"foreignKey:CountryBlockID" json:"-"`
}
