package utils

import (
	"learnhub/database"
	courseModels "learnhub/models/course"
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitializeOrderScheduler starts the nightly sort-order compaction job
func InitializeOrderScheduler(spec string) (*cron.Cron, error) {
	log.Println("[ORDER-SCHEDULER] Initializing order compaction scheduler...")

	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		log.Println("[ORDER-SCHEDULER] Running sort order compaction...")
		changed, err := CompactSortOrders(database.Database.Db)
		if err != nil {
			log.Printf("[ORDER-SCHEDULER] Compaction failed: %v", err)
			return
		}
		log.Printf("[ORDER-SCHEDULER] Compaction finished, %d rows renumbered", changed)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Printf("[ORDER-SCHEDULER] Order scheduler started - schedule %q", spec)
	return c, nil
}

// CompactSortOrders renumbers section orders per course and content sort
// orders per section to 0..n-1, keeping the current display order.
// It returns the number of rows whose position changed.
func CompactSortOrders(db *gorm.DB) (int, error) {
	changed := 0

	var courseIDs []uint
	if err := db.Model(&courseModels.Section{}).Distinct().Pluck("course_id", &courseIDs).Error; err != nil {
		return 0, err
	}

	for _, courseID := range courseIDs {
		var sections []courseModels.Section
		if err := db.Where("course_id = ?", courseID).Order("order_index asc, id asc").Find(&sections).Error; err != nil {
			return changed, err
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			for i, section := range sections {
				if section.Order == i {
					continue
				}
				if err := tx.Model(&courseModels.Section{}).Where("id = ?", section.ID).Update("order_index", i).Error; err != nil {
					return err
				}
				changed++
			}
			return nil
		})
		if err != nil {
			return changed, err
		}

		for _, section := range sections {
			n, err := compactSection(db, section.ID)
			changed += n
			if err != nil {
				return changed, err
			}
		}
	}

	return changed, nil
}

func compactSection(db *gorm.DB, sectionID uint) (int, error) {
	changed := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		refs, err := courseModels.SectionItems(tx, sectionID)
		if err != nil {
			return err
		}
		for i, ref := range refs {
			if ref.SortOrder == i {
				continue
			}
			if err := courseModels.SetSortOrder(tx, ref.Type, ref.ID, i); err != nil {
				return err
			}
			changed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}
