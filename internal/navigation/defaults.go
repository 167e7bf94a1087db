package navigation

import (
	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/i18n"
)

// DefaultItems returns the seed menu used when the navigation table is empty.
func DefaultItems() []*Item {
	entries := []struct {
		key   string
		label i18n.Text
		href  string
	}{
		{"about", i18n.NewText("About", "О нас"), "#about"},
		{"platform", i18n.NewText("Platform", "Платформа"), "#platform"},
		{"projects", i18n.NewText("Projects", "Проекты"), "#projects"},
		{"roadmap", i18n.NewText("Roadmap", "Дорожная карта"), "#roadmap"},
		{"team", i18n.NewText("Team", "Команда"), "#team"},
		{"partners", i18n.NewText("Partners", "Партнёры"), "#partners"},
	}

	items := make([]*Item, len(entries))
	for i, entry := range entries {
		items[i] = &Item{
			ID:       uuid.New(),
			Key:      entry.key,
			Label:    entry.label,
			Href:     entry.href,
			IsActive: true,
			Position: i,
		}
	}
	return items
}
