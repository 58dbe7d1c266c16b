package curriculum

import (
	"context"
	"fmt"
)

// Splice returns a copy of items with the element at src moved to dst.
// Indices must be in range; src == dst returns an unchanged copy.
func Splice[T any](items []T, src, dst int) []T {
	out := make([]T, 0, len(items))
	out = append(out, items...)
	if src == dst {
		return out
	}

	moved := out[src]
	out = append(out[:src], out[src+1:]...)
	out = append(out[:dst], append([]T{moved}, out[dst:]...)...)
	return out
}

// OnReorder handles a drop inside one section
func (m *Manager) OnReorder(ctx context.Context, sectionID uint, src, dst int) error {
	return m.Reorder(ctx, Move{SourceSection: sectionID, DestSection: sectionID, Src: src, Dst: dst})
}

// Reorder moves one item within a section. The new order is shown at once
// and persisted as one batch; if the batch is rejected the section goes back
// to exactly the order it had before. Drops onto another section are ignored.
// A second drag on a section whose batch is still in flight fails with
// ErrReorderInProgress. Refreshes of the section that complete while the batch
// is in flight are not applied; the section is fetched again once it settles.
func (m *Manager) Reorder(ctx context.Context, mv Move) error {
	if m.isClosed() {
		return ErrClosed
	}
	if mv.SourceSection != mv.DestSection {
		m.logger.Printf("[CURRICULUM] cross-section move %d -> %d ignored", mv.SourceSection, mv.DestSection)
		return nil
	}
	sectionID := mv.SourceSection

	if !m.store.beginReorder(sectionID) {
		return ErrReorderInProgress
	}

	err := m.persistMove(ctx, sectionID, mv.Src, mv.Dst)

	if m.store.endReorder(sectionID) {
		if rerr := m.RefreshSection(ctx, sectionID); rerr != nil {
			m.logger.Printf("[CURRICULUM] refresh of section %d after reorder failed: %v", sectionID, rerr)
		}
	}
	return err
}

// persistMove applies the move to the store and sends it as one batch,
// restoring the snapshot if the batch is rejected
func (m *Manager) persistMove(ctx context.Context, sectionID uint, src, dst int) error {
	snapshot := m.store.Content(sectionID)
	if err := checkIndex("src", src, len(snapshot)); err != nil {
		return err
	}
	if err := checkIndex("dst", dst, len(snapshot)); err != nil {
		return err
	}
	if src == dst {
		return nil
	}

	next := Splice(snapshot, src, dst)
	batch := make([]OrderEntry, len(next))
	for i := range next {
		next[i].SortOrder = i
		batch[i] = OrderEntry{ID: next[i].ID, Type: next[i].Type, SortOrder: i}
	}

	m.store.replaceContent(sectionID, next)

	if err := m.backend.ReorderContent(ctx, sectionID, batch); err != nil {
		m.store.replaceContent(sectionID, snapshot)
		m.logger.Printf("[CURRICULUM] reorder of section %d rejected, order restored: %v", sectionID, err)
		return &RequestError{Op: fmt.Sprintf("reorder section %d", sectionID), Err: err}
	}
	return nil
}

func checkIndex(field string, i, n int) error {
	if i < 0 || i >= n {
		return &ValidationError{Fields: map[string]string{
			field: fmt.Sprintf("%v: %d not in [0, %d)", ErrIndexOutOfRange, i, n),
		}}
	}
	return nil
}
