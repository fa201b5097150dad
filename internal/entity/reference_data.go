// FILE: internal/entity/reference_data.go
// Shared, admin-editable reference data. The whole structure is persisted
// as a single document; storage backends must overwrite it wholesale.
package entity

// ReferenceData holds the mutable lists every session reads plus the
// notification target and the rating history.
type ReferenceData struct {
	Industries     []string `json:"industries"`
	BotTypes       []string `json:"bot_types"`
	Ratings        []int    `json:"ratings"`
	NotifyTargetID int64    `json:"notify_target_id"`
}

// DefaultReferenceData returns the seed data written on first run when the
// storage backend has no prior state.
func DefaultReferenceData() *ReferenceData {
	return &ReferenceData{
		Industries: []string{
			"Парикмахерская",
			"Розничный магазин",
			"Оптовая торговля",
			"Ресторан",
			"Фитнес-центр",
		},
		BotTypes: []string{
			"Бот для продаж",
			"Бот для онлайн-заказов",
			"Бот для поддержки клиентов",
			"Бот для бронирования",
		},
		Ratings:        []int{},
		NotifyTargetID: 0,
	}
}

// Clone returns a deep copy so callers can mutate freely before committing.
func (d *ReferenceData) Clone() *ReferenceData {
	out := &ReferenceData{
		Industries:     make([]string, len(d.Industries)),
		BotTypes:       make([]string, len(d.BotTypes)),
		Ratings:        make([]int, len(d.Ratings)),
		NotifyTargetID: d.NotifyTargetID,
	}
	copy(out.Industries, d.Industries)
	copy(out.BotTypes, d.BotTypes)
	copy(out.Ratings, d.Ratings)
	return out
}
