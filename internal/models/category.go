package models

type Category struct {
	BaseModel
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}
