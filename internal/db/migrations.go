package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role') THEN
			CREATE TYPE user_role AS ENUM ('SUPER_ADMIN', 'LOCATION_ADMIN', 'OPERATOR', 'KEPALA_BP', 'MEKANIK', 'LOGISTIK');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'task_status') THEN
			CREATE TYPE task_status AS ENUM ('PENDING', 'IN_PROGRESS', 'COMPLETED', 'DELAYED');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'attendance_type') THEN
			CREATE TYPE attendance_type AS ENUM ('masuk', 'pulang');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		role user_role NOT NULL,
		nik VARCHAR(32),
		batangan TEXT,
		location VARCHAR(255),
		username VARCHAR(128),
		password VARCHAR(255),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_users_username ON users (username) WHERE username IS NOT NULL AND username <> '';`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_users_nik ON users (nik) WHERE nik IS NOT NULL AND nik <> '';`,
	`CREATE TABLE IF NOT EXISTS locations (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		hull_number VARCHAR(64) PRIMARY KEY,
		license_plate VARCHAR(32) NOT NULL,
		type VARCHAR(64),
		operator_name VARCHAR(255),
		location VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_location ON vehicles (location);`,
	`CREATE TABLE IF NOT EXISTS reports (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id VARCHAR(64) NOT NULL REFERENCES vehicles(hull_number) ON DELETE CASCADE,
		operator_name VARCHAR(255) NOT NULL,
		location VARCHAR(255) NOT NULL,
		report_date VARCHAR(10) NOT NULL,
		items JSONB NOT NULL,
		kerusakan_lain JSONB,
		overall_status VARCHAR(32) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_reports_vehicle_day ON reports (vehicle_id, report_date);`,
	`CREATE INDEX IF NOT EXISTS idx_reports_location ON reports (location);`,
	`CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports (created_at);`,
	`CREATE TABLE IF NOT EXISTS mechanic_tasks (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_hull_number VARCHAR(64) NOT NULL REFERENCES vehicles(hull_number) ON DELETE CASCADE,
		license_plate VARCHAR(32),
		location VARCHAR(255) NOT NULL,
		repair_description TEXT NOT NULL,
		target_date VARCHAR(10) NOT NULL,
		target_time VARCHAR(5) NOT NULL,
		triggering_report_id UUID REFERENCES reports(id) ON DELETE SET NULL,
		mechanics JSONB NOT NULL,
		status task_status NOT NULL DEFAULT 'PENDING',
		delay_reason TEXT,
		started_at TIMESTAMPTZ,
		completed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_mechanic_tasks_vehicle ON mechanic_tasks (vehicle_hull_number);`,
	`CREATE INDEX IF NOT EXISTS idx_mechanic_tasks_status ON mechanic_tasks (status);`,
	`CREATE TABLE IF NOT EXISTS mechanic_task_status_log (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		task_id UUID NOT NULL REFERENCES mechanic_tasks(id) ON DELETE CASCADE,
		old_status task_status,
		new_status task_status NOT NULL,
		note TEXT,
		changed_by UUID REFERENCES users(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_task_status_log_task_id ON mechanic_task_status_log (task_id);`,
	`CREATE TABLE IF NOT EXISTS spare_part_logs (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		task_id UUID NOT NULL REFERENCES mechanic_tasks(id) ON DELETE CASCADE,
		vehicle_hull_number VARCHAR(64) NOT NULL,
		parts_used TEXT NOT NULL,
		log_date VARCHAR(10) NOT NULL,
		logged_by_name VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_spare_part_logs_task ON spare_part_logs (task_id);`,
	`CREATE TABLE IF NOT EXISTS attendances (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		user_name VARCHAR(255) NOT NULL,
		type attendance_type NOT NULL,
		status VARCHAR(32),
		location VARCHAR(255),
		photo TEXT,
		attendance_date VARCHAR(10) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_attendances_user_type_day ON attendances (user_id, type, attendance_date);`,
	`CREATE INDEX IF NOT EXISTS idx_attendances_date ON attendances (attendance_date);`,
	`CREATE TABLE IF NOT EXISTS penalties (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		user_name VARCHAR(255) NOT NULL,
		user_nik VARCHAR(32),
		vehicle_hull_number VARCHAR(64),
		points INTEGER NOT NULL CHECK (points BETWEEN 1 AND 10),
		reason TEXT NOT NULL,
		given_by VARCHAR(128) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_penalties_user_id ON penalties (user_id);`,
	`CREATE TABLE IF NOT EXISTS complaints (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		author_id UUID NOT NULL,
		author_name VARCHAR(255) NOT NULL,
		location VARCHAR(255),
		message TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS suggestions (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		author_id UUID NOT NULL,
		author_name VARCHAR(255) NOT NULL,
		location VARCHAR(255),
		message TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title VARCHAR(255) NOT NULL,
		message TEXT NOT NULL,
		read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user_id ON notifications (user_id);`,
	`CREATE TABLE IF NOT EXISTS ritasi_logs (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_hull_number VARCHAR(64) NOT NULL REFERENCES vehicles(hull_number) ON DELETE CASCADE,
		operator_id UUID NOT NULL,
		operator_name VARCHAR(255) NOT NULL,
		location VARCHAR(255) NOT NULL,
		destination VARCHAR(255),
		log_date VARCHAR(10) NOT NULL,
		depart_plant_at TIMESTAMPTZ NOT NULL,
		arrive_site_at TIMESTAMPTZ,
		depart_site_at TIMESTAMPTZ,
		arrive_plant_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_ritasi_logs_date ON ritasi_logs (log_date);`,
	`CREATE TABLE IF NOT EXISTS job_mix_formulas (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		grade VARCHAR(64),
		components JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE OR REPLACE FUNCTION set_row_updated_at()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_mechanic_tasks_updated_at') THEN
			CREATE TRIGGER trg_mechanic_tasks_updated_at
				BEFORE UPDATE ON mechanic_tasks
				FOR EACH ROW
				EXECUTE PROCEDURE set_row_updated_at();
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_ritasi_logs_updated_at') THEN
			CREATE TRIGGER trg_ritasi_logs_updated_at
				BEFORE UPDATE ON ritasi_logs
				FOR EACH ROW
				EXECUTE PROCEDURE set_row_updated_at();
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_job_mix_formulas_updated_at') THEN
			CREATE TRIGGER trg_job_mix_formulas_updated_at
				BEFORE UPDATE ON job_mix_formulas
				FOR EACH ROW
				EXECUTE PROCEDURE set_row_updated_at();
		END IF;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
