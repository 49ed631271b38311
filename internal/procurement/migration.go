package procurement

import "gorm.io/gorm"

func RunSchemaMigration(db *gorm.DB) error {
	return db.AutoMigrate(
		&Category{},
		&Vendor{},
		&Customer{},
		&Address{},
		&Item{},
		&Order{},
		&OrderPlanning{},
		&OrderProduction{},
		&OrderLogistics{},
		&Upload{},
	)
}
