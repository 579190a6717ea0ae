package testhelpers

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	upSuffix   = ".up.sql"
	downSuffix = ".down.sql"
)

// ApplyMigrations применяет все .up.sql файлы каталога по возрастанию имени
func ApplyMigrations(db *sql.DB, migrationsPath string) error {
	files, err := migrationFiles(migrationsPath, upSuffix)
	if err != nil {
		return err
	}
	return execFiles(db, migrationsPath, files)
}

// RollbackMigrations применяет .down.sql файлы в обратном порядке
func RollbackMigrations(db *sql.DB, migrationsPath string) error {
	files, err := migrationFiles(migrationsPath, downSuffix)
	if err != nil {
		return err
	}
	for i, j := 0, len(files)-1; i < j; i, j = i+1, j-1 {
		files[i], files[j] = files[j], files[i]
	}
	return execFiles(db, migrationsPath, files)
}

func migrationFiles(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func execFiles(db *sql.DB, dir string, files []string) error {
	for _, file := range files {
		content, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", file, err)
		}
	}
	return nil
}
