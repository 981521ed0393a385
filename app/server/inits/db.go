package inits

import (
	"fmt"
	"time"

	"kokoro-diary/app/server/models"

	"github.com/alexedwards/argon2id"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DB(conn string, seed bool) (db *gorm.DB, err error) {
	// TranslateError maps the driver's unique-violation into gorm.ErrDuplicatedKey,
	// which the register handler relies on.
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{TranslateError: true}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if seed {
		if err = seedData(db); err != nil {
			return nil, fmt.Errorf("failed to seed data into database: %w", err)
		}
	}

	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Diary{},
	)
}

// seedData creates a demo user with 20 dated diaries, every third carrying an
// AI comment. Only runs against an empty users table.
func seedData(db *gorm.DB) (err error) {
	var counter int64

	if err = db.Model(&models.User{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get user count: %w", err)
	} else if counter > 0 {
		return nil
	}

	var password string
	if password, err = argon2id.CreateHash("password", argon2id.DefaultParams); err != nil {
		return fmt.Errorf("failed to generate password: %w", err)
	}

	user := models.User{
		Name:     "test",
		Password: password,
	}
	if err = db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create test user: %w", err)
	}

	var diaries []*models.Diary
	for i := 0; i < 20; i++ {
		diary := &models.Diary{
			Text:     fmt.Sprintf("This is sample diary number %d.", i+1),
			Date:     time.Now().AddDate(0, 0, -i),
			AuthorID: user.ID,
		}
		if i%3 == 0 {
			comment := fmt.Sprintf("I read diary number %d, keep it up!", i+1)
			diary.AIComment = &comment
		}
		diaries = append(diaries, diary)
	}
	if err = db.Create(diaries).Error; err != nil {
		return fmt.Errorf("failed to create sample diaries: %w", err)
	}

	return nil
}
