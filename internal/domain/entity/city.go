package entity

// City is a search dimension for doctors; managed by admins.
type City struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`

	// Relationships
	Doctors []DoctorProfile `gorm:"foreignKey:CityID" json:"doctors,omitempty"`
}

func (City) TableName() string {
	return "cities"
}
