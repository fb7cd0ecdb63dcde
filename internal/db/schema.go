package db

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	embeddedschema "github.com/terraincognita07/rota/schema"
	"gorm.io/gorm"
)

var schemaFilePattern = regexp.MustCompile(`^(\d+)_.*\.sql$`)

type schemaFile struct {
	Order      int
	Name       string
	Statements []string
}

// EnsureSchema runs the embedded CREATE TABLE IF NOT EXISTS files for the
// dialect in prefix order inside a single transaction. Running it again
// against an initialized store changes nothing.
func EnsureSchema(database *gorm.DB, dialect string) error {
	files, err := loadSchemaFiles(dialect)
	if err != nil {
		return err
	}

	return database.Transaction(func(tx *gorm.DB) error {
		for _, file := range files {
			for _, statement := range file.Statements {
				if err := tx.Exec(statement).Error; err != nil {
					return fmt.Errorf("execute %s statement %q: %w", file.Name, statement, err)
				}
			}
			log.Printf("schema %s/%s applied (created or already exists)", dialect, file.Name)
		}
		return nil
	})
}

func loadSchemaFiles(dialect string) ([]schemaFile, error) {
	entries, err := fs.ReadDir(embeddedschema.Files, dialect)
	if err != nil {
		return nil, fmt.Errorf("read embedded schema for %s: %w", dialect, err)
	}

	files := make([]schemaFile, 0, len(entries))
	seenOrders := make(map[int]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		fileName := strings.TrimSpace(entry.Name())
		matches := schemaFilePattern.FindStringSubmatch(fileName)
		if len(matches) != 2 {
			continue
		}

		order, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, fmt.Errorf("parse schema order from %s: %w", fileName, err)
		}
		if existing, exists := seenOrders[order]; exists {
			return nil, fmt.Errorf("duplicate schema order %d in %s and %s", order, existing, fileName)
		}
		seenOrders[order] = fileName

		rawSQL, err := fs.ReadFile(embeddedschema.Files, path.Join(dialect, fileName))
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", fileName, err)
		}

		statements := splitSQLStatements(string(rawSQL))
		if len(statements) == 0 {
			return nil, fmt.Errorf("schema %s has no SQL statements", fileName)
		}

		files = append(files, schemaFile{
			Order:      order,
			Name:       fileName,
			Statements: statements,
		})
	}

	if len(files) == 0 {
		return nil, errors.New("no embedded schema files for " + dialect)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Order < files[j].Order
	})
	return files, nil
}

func splitSQLStatements(sqlText string) []string {
	rawParts := strings.Split(sqlText, ";")
	statements := make([]string, 0, len(rawParts))
	for _, rawPart := range rawParts {
		statement := strings.TrimSpace(rawPart)
		if statement == "" {
			continue
		}
		statements = append(statements, statement)
	}
	return statements
}
