package models

// User is one account row. The password hash never leaves the database layer:
// it is excluded from every JSON rendering of the model.
type User struct {
	UserID         uint   `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username       string `gorm:"column:username;uniqueIndex;not null" json:"username"`
	HashedPassword string `gorm:"column:hashed_password;not null" json:"-"`
	Firstname      string `gorm:"column:firstname" json:"firstname"`
	Lastname       string `gorm:"column:lastname" json:"lastname"`
	Age            int    `gorm:"column:age" json:"age"`
}

func (User) TableName() string { return "tbl_users" }
