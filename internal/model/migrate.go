package model

import "gorm.io/gorm"

// AutoMigrate runs GORM auto-migration for all models and creates custom indexes.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&Territory{},
		&Licensee{},
		&LicenseeApplication{},
		&Athlete{},
		&Venue{},
		&Camp{},
		&CampDay{},
		&Registration{},
		&CampAttendance{},
		&PickupToken{},
		&WaiverTemplate{},
		&WaiverSigning{},
		&CurriculumTemplate{},
		&CurriculumBlock{},
		&LmsModule{},
		&LmsProgress{},
		&Product{},
		&ProductVariant{},
	); err != nil {
		return err
	}

	// Case-insensitive unique email for non-soft-deleted users.
	if err := db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower " +
			"ON users ((lower(email))) WHERE deleted_at IS NULL",
	).Error; err != nil {
		return err
	}

	// One camp day per (camp, date).
	if err := db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_camp_days_camp_date " +
			"ON camp_days (camp_id, date)",
	).Error; err != nil {
		return err
	}

	// One attendance row per (camp_day, athlete).
	if err := db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_attendance_day_athlete " +
			"ON camp_attendances (camp_day_id, athlete_id)",
	).Error; err != nil {
		return err
	}

	// One signing per athlete per template version.
	if err := db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_signings_template_version_athlete " +
			"ON waiver_signings (template_id, template_version, athlete_id)",
	).Error; err != nil {
		return err
	}

	// One progress row per (user, module).
	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_lms_progress_user_module " +
			"ON lms_progress (user_id, module_id)",
	).Error
}
