// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines the eight life-tracking tables, created idempotently.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS daily_activities (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		date TEXT NOT NULL,
		category TEXT NOT NULL,
		subcategory TEXT,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS qualitative_metrics (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		date TEXT NOT NULL,
		life_score INTEGER NOT NULL,
		work_score INTEGER NOT NULL,
		health_score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS quantitative_metrics (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		date TEXT NOT NULL,
		wake_up_time TEXT,
		workouts INTEGER,
		meditation_minutes INTEGER,
		brain_training_minutes INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT,
		target_value REAL NOT NULL,
		current_value REAL NOT NULL DEFAULT 0,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS user_settings (
		user_id TEXT PRIMARY KEY,
		default_wake_time TEXT,
		work_weight REAL NOT NULL DEFAULT 1.0,
		life_weight REAL NOT NULL DEFAULT 1.0,
		health_weight REAL NOT NULL DEFAULT 1.0,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS custom_categories (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		category_name TEXT NOT NULL,
		subcategories TEXT,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS daily_checklist (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		date TEXT NOT NULL,
		checklist_data TEXT,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (user_id, date),
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_activities_user_date ON daily_activities(user_id, date);
	CREATE INDEX IF NOT EXISTS idx_qualitative_user_date ON qualitative_metrics(user_id, date);
	CREATE INDEX IF NOT EXISTS idx_quantitative_user_date ON quantitative_metrics(user_id, date);
	CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id);
	CREATE INDEX IF NOT EXISTS idx_categories_user ON custom_categories(user_id);
	`

	_, err := d.db.Exec(schema)
	return err
}
