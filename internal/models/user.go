package models

// User holds a person that schedules are assigned to. Password stores a bcrypt
// hash; nothing in the application authenticates against it.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"column:first_name;size:50"`
	LastName  string `gorm:"column:last_name;size:50"`
	Email     string `gorm:"size:100"`
	Password  string `gorm:"size:100"`
}

func (User) TableName() string {
	return "users"
}

func (user User) FullName() string {
	if user.LastName == "" {
		return user.FirstName
	}
	if user.FirstName == "" {
		return user.LastName
	}
	return user.FirstName + " " + user.LastName
}
