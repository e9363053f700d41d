package model

import "gorm.io/gorm"

// AllModels lists every table owned by the application, in dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&Doctor{},
		&Patient{},
		&Admin{},
		&Treatment{},
		&Upload{},
		&Appointment{},
		&Session{},
		&SecurityLog{},
	}
}

// Migrate creates or updates the schema for AllModels.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
