package model

import "gorm.io/gorm"

type Department struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
	Users       []User `json:"users,omitempty" gorm:"foreignKey:DepartmentID"`
}
