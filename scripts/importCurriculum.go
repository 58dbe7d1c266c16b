package main

import (
	"encoding/csv"
	"fmt"
	"learnhub/config"
	"learnhub/database"
	courseModels "learnhub/models/course"
	"log"
	"os"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// importStats counts what an import did
type importStats struct {
	Sections int
	Items    int
	Skipped  int
}

// Usage: go run ./scripts/importCurriculum.go <course-id> <file.csv>
// The CSV header must contain section,type,title and may contain duration.
func main() {
	if len(os.Args) != 3 {
		log.Fatal("usage: importCurriculum <course-id> <file.csv>")
	}
	courseID, err := strconv.Atoi(os.Args[1])
	if err != nil || courseID <= 0 {
		log.Fatalf("Invalid course id %q", os.Args[1])
	}

	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	file, err := os.Open(os.Args[2])
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	stats, err := importCurriculum(database.Database.Db, uint(courseID), records)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Sections created: %d", stats.Sections)
	log.Printf("Items created: %d", stats.Items)
	log.Printf("Skipped: %d", stats.Skipped)
}

// importCurriculum appends the rows to the course in file order. Sections are
// matched by title and created when missing; each item goes to the end of its
// section. Everything is written in one transaction.
func importCurriculum(db *gorm.DB, courseID uint, records [][]string) (importStats, error) {
	var stats importStats

	if len(records) < 2 {
		return stats, fmt.Errorf("CSV file is empty or has only headers")
	}

	headerIndex := make(map[string]int)
	for i, h := range records[0] {
		headerIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"section", "type", "title"} {
		if _, ok := headerIndex[required]; !ok {
			return stats, fmt.Errorf("CSV header is missing %q", required)
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var course courseModels.Course
		if err := tx.First(&course, courseID).Error; err != nil {
			return fmt.Errorf("course %d: %w", courseID, err)
		}

		sections := make(map[string]*courseModels.Section)
		var existing []courseModels.Section
		if err := tx.Where("course_id = ?", courseID).Find(&existing).Error; err != nil {
			return err
		}
		nextOrder := 0
		for i := range existing {
			sections[existing[i].Title] = &existing[i]
			if existing[i].Order >= nextOrder {
				nextOrder = existing[i].Order + 1
			}
		}

		for i, row := range records[1:] {
			sectionTitle := getField(row, headerIndex, "section")
			kind := strings.ToLower(getField(row, headerIndex, "type"))
			title := getField(row, headerIndex, "title")

			if sectionTitle == "" || title == "" || !courseModels.IsContentKind(kind) {
				log.Printf("Skipping row %d: section, title and a valid type are required", i+2)
				stats.Skipped++
				continue
			}

			section, ok := sections[sectionTitle]
			if !ok {
				section = &courseModels.Section{CourseID: courseID, Title: sectionTitle, Order: nextOrder}
				if err := tx.Create(section).Error; err != nil {
					return err
				}
				sections[sectionTitle] = section
				nextOrder++
				stats.Sections++
			}

			sortOrder, err := courseModels.NextSortOrder(tx, section.ID)
			if err != nil {
				return err
			}

			record := courseModels.NewRecord(kind)
			base := record.Base()
			base.SectionID = section.ID
			base.Title = title
			base.SortOrder = sortOrder
			if d := getField(row, headerIndex, "duration"); d != "" {
				minutes, err := strconv.Atoi(d)
				if err != nil || minutes < 0 {
					log.Printf("Row %d: ignoring invalid duration %q", i+2, d)
				} else {
					base.Duration = &minutes
				}
			}

			if err := tx.Create(record).Error; err != nil {
				return err
			}
			stats.Items++
		}
		return nil
	})
	return stats, err
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
