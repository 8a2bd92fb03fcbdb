package db

import (
	"context"
	"database/sql"
)

const tableOpts = ` ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`

// schema is applied in order; foreign keys point only at earlier tables.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	passport_number VARCHAR(50) NOT NULL,
	nationality VARCHAR(100) NOT NULL DEFAULT '',
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(50) NOT NULL DEFAULT '',
	password_hash VARCHAR(255) NOT NULL,
	role_id TINYINT NOT NULL DEFAULT 2,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_users_email (email),
	UNIQUE KEY uniq_users_passport (passport_number)
)` + tableOpts,

	`CREATE TABLE IF NOT EXISTS packages (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	price DECIMAL(12,2) NOT NULL,
	hotel VARCHAR(255) NOT NULL DEFAULT '',
	duration_days INT NOT NULL,
	transport VARCHAR(100) NOT NULL DEFAULT '',
	CONSTRAINT chk_packages_price CHECK (price > 0),
	CONSTRAINT chk_packages_duration CHECK (duration_days > 0)
)` + tableOpts,

	`CREATE TABLE IF NOT EXISTS hotels (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	city VARCHAR(100) NOT NULL DEFAULT '',
	rating TINYINT NOT NULL DEFAULT 0
)` + tableOpts,

	`CREATE TABLE IF NOT EXISTS guides (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	phone VARCHAR(50) NOT NULL DEFAULT '',
	email VARCHAR(255) NOT NULL DEFAULT ''
)` + tableOpts,

	`CREATE TABLE IF NOT EXISTS trips (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	package_id BIGINT NOT NULL,
	trip_date DATE NOT NULL,
	price DECIMAL(12,2) NOT NULL DEFAULT 0,
	hotel_id BIGINT NULL,
	KEY idx_trips_date (trip_date),
	CONSTRAINT fk_trips_package FOREIGN KEY (package_id) REFERENCES packages(id),
	CONSTRAINT fk_trips_hotel FOREIGN KEY (hotel_id) REFERENCES hotels(id) ON DELETE SET NULL
)` + tableOpts,

	`CREATE TABLE IF NOT EXISTS buses (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	trip_id BIGINT NOT NULL,
	bus_number VARCHAR(50) NOT NULL,
	capacity INT NOT NULL,
	guide_id BIGINT NULL,
	CONSTRAINT fk_buses_trip FOREIGN KEY (trip_id) REFERENCES trips(id),
	CONSTRAINT fk_buses_guide FOREIGN KEY (guide_id) REFERENCES guides(id) ON DELETE SET NULL
)` + tableOpts,

	`CREATE TABLE IF NOT EXISTS travellers (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	user_id BIGINT NULL,
	name VARCHAR(255) NOT NULL,
	passport_number VARCHAR(50) NOT NULL,
	nationality VARCHAR(100) NOT NULL DEFAULT '',
	dob DATE NULL,
	phone VARCHAR(50) NOT NULL DEFAULT '',
	email VARCHAR(255) NOT NULL DEFAULT '',
	emergency_contact VARCHAR(255) NOT NULL DEFAULT '',
	handled_by BIGINT NULL,
	CONSTRAINT fk_travellers_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE SET NULL,
	CONSTRAINT fk_travellers_staff FOREIGN KEY (handled_by) REFERENCES users(id) ON DELETE SET NULL
)` + tableOpts,

	`CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	user_id BIGINT NOT NULL,
	package_id BIGINT NOT NULL,
	bus_id BIGINT NULL,
	travel_date DATE NOT NULL,
	payment_method VARCHAR(50) NOT NULL,
	status ENUM('Pending','Confirmed','Cancelled') NOT NULL DEFAULT 'Pending',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	KEY idx_bookings_user (user_id),
	CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users(id),
	CONSTRAINT fk_bookings_package FOREIGN KEY (package_id) REFERENCES packages(id),
	CONSTRAINT fk_bookings_bus FOREIGN KEY (bus_id) REFERENCES buses(id) ON DELETE SET NULL
)` + tableOpts,

	`CREATE TABLE IF NOT EXISTS booking_files (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_id BIGINT NOT NULL,
	file_path VARCHAR(512) NOT NULL,
	uploaded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	KEY idx_booking_files_booking (booking_id),
	CONSTRAINT fk_booking_files_booking FOREIGN KEY (booking_id) REFERENCES bookings(id) ON DELETE CASCADE
)` + tableOpts,

	`CREATE TABLE IF NOT EXISTS support_requests (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	user_id BIGINT NOT NULL,
	issue TEXT NOT NULL,
	status ENUM('Pending','Resolved') NOT NULL DEFAULT 'Pending',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	KEY idx_support_user (user_id),
	CONSTRAINT fk_support_user FOREIGN KEY (user_id) REFERENCES users(id)
)` + tableOpts,

	// no FK: the trail outlives deleted users
	`CREATE TABLE IF NOT EXISTS activity_log (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	user_id BIGINT NOT NULL,
	action VARCHAR(500) NOT NULL,
	timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	KEY idx_activity_user (user_id)
)` + tableOpts,
}

// EnsureSchema creates any missing table.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schema {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return Classify("ensure schema", err)
		}
	}
	return nil
}
