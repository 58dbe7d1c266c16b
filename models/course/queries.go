package course

import (
	"sort"

	"gorm.io/gorm"
)

// ItemRef identifies one content row and its position in the merged section list
type ItemRef struct {
	ID        uint   `json:"id"`
	Type      string `json:"type" gorm:"-"`
	SortOrder int    `json:"sort_order"`
}

// kindRank breaks sort_order ties the same way the editor merges collections
func kindRank(kind string) int {
	for i, k := range ContentKinds {
		if k == kind {
			return i
		}
	}
	return len(ContentKinds)
}

// SectionItems returns every lesson, quiz and assignment of a section merged
// into display order.
func SectionItems(db *gorm.DB, sectionID uint) ([]ItemRef, error) {
	refs := make([]ItemRef, 0)
	for _, kind := range ContentKinds {
		var rows []ItemRef
		if err := db.Model(NewRecord(kind)).
			Select("id, sort_order").
			Where("section_id = ?", sectionID).
			Scan(&rows).Error; err != nil {
			return nil, err
		}
		for i := range rows {
			rows[i].Type = kind
		}
		refs = append(refs, rows...)
	}

	sort.SliceStable(refs, func(i, j int) bool {
		if refs[i].SortOrder != refs[j].SortOrder {
			return refs[i].SortOrder < refs[j].SortOrder
		}
		if refs[i].Type != refs[j].Type {
			return kindRank(refs[i].Type) < kindRank(refs[j].Type)
		}
		return refs[i].ID < refs[j].ID
	})
	return refs, nil
}

// NextSortOrder returns the position after the last item of a section
func NextSortOrder(db *gorm.DB, sectionID uint) (int, error) {
	next := 0
	for _, kind := range ContentKinds {
		var maxOrder int
		if err := db.Model(NewRecord(kind)).
			Where("section_id = ?", sectionID).
			Select("COALESCE(MAX(sort_order), -1)").
			Scan(&maxOrder).Error; err != nil {
			return 0, err
		}
		if maxOrder+1 > next {
			next = maxOrder + 1
		}
	}
	return next, nil
}

// SetSortOrder writes one item's position
func SetSortOrder(tx *gorm.DB, kind string, id uint, order int) error {
	return tx.Model(NewRecord(kind)).Where("id = ?", id).Update("sort_order", order).Error
}

// DeleteSectionContent removes every item of a section, including quiz questions
func DeleteSectionContent(tx *gorm.DB, sectionID uint) error {
	var quizIDs []uint
	if err := tx.Model(&Quiz{}).Where("section_id = ?", sectionID).Pluck("id", &quizIDs).Error; err != nil {
		return err
	}
	if len(quizIDs) > 0 {
		if err := tx.Where("quiz_id IN ?", quizIDs).Delete(&QuizQuestion{}).Error; err != nil {
			return err
		}
	}
	for _, kind := range ContentKinds {
		if err := tx.Where("section_id = ?", sectionID).Delete(NewRecord(kind)).Error; err != nil {
			return err
		}
	}
	return nil
}
