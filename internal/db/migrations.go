package db

import (
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"

	"github.com/aldertane/vesta/migrations"
	"gorm.io/gorm"
)

// Migration files are named NNNN_description.sql and run in version
// order, each inside its own transaction. Applied versions are recorded
// in schema_migrations, so reopening an up-to-date database is a no-op.
// Every script creates fresh objects with IF NOT EXISTS; there is no
// in-place column surgery to guard against.

var migrationNamePattern = regexp.MustCompile(`^(\d+)_.+\.sql$`)

type migrationScript struct {
	version string
	name    string
	sql     string
}

func runMigrations(database *gorm.DB) error {
	const ledgerSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if err := database.Exec(ledgerSQL).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	scripts, err := readMigrationScripts()
	if err != nil {
		return err
	}
	applied, err := appliedMigrationVersions(database)
	if err != nil {
		return err
	}

	for _, script := range scripts {
		if applied[script.version] {
			continue
		}
		if err := runMigrationScript(database, script); err != nil {
			return err
		}
	}
	return nil
}

func readMigrationScripts() ([]migrationScript, error) {
	entries, err := fs.ReadDir(migrations.Files, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	scripts := make([]migrationScript, 0, len(entries))
	byVersion := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		match := migrationNamePattern.FindStringSubmatch(name)
		if match == nil {
			continue
		}

		version := match[1]
		if other, taken := byVersion[version]; taken {
			return nil, fmt.Errorf("migration version %s used by both %s and %s", version, other, name)
		}
		byVersion[version] = name

		body, err := fs.ReadFile(migrations.Files, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		scripts = append(scripts, migrationScript{version: version, name: name, sql: string(body)})
	}

	// Versions are zero-padded to equal width, so the lexical order is
	// the numeric order.
	sort.Slice(scripts, func(i, j int) bool { return scripts[i].version < scripts[j].version })
	return scripts, nil
}

func appliedMigrationVersions(database *gorm.DB) (map[string]bool, error) {
	versions := make([]string, 0)
	if err := database.Raw(`SELECT version FROM schema_migrations`).Scan(&versions).Error; err != nil {
		return nil, fmt.Errorf("load applied migration versions: %w", err)
	}

	applied := make(map[string]bool, len(versions))
	for _, version := range versions {
		applied[version] = true
	}
	return applied, nil
}

func runMigrationScript(database *gorm.DB, script migrationScript) error {
	return database.Transaction(func(tx *gorm.DB) error {
		ran := 0
		for _, statement := range strings.Split(script.sql, ";") {
			statement = strings.TrimSpace(statement)
			if statement == "" {
				continue
			}
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("run migration %s: %w", script.name, err)
			}
			ran++
		}
		if ran == 0 {
			return fmt.Errorf("migration %s has no SQL statements", script.name)
		}

		if err := tx.Exec(
			`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`,
			script.version, script.name,
		).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", script.name, err)
		}
		return nil
	})
}
