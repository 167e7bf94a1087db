package hero

import "github.com/google/uuid"

// DefaultButtons returns the seed call-to-action pair used when the buttons
// table is empty.
func DefaultButtons() []*Button {
	return []*Button{
		{
			ID:       uuid.New(),
			Label:    "Explore Platform",
			URL:      "https://example.com/explore",
			Style:    StylePrimary,
			IsActive: true,
			Position: 0,
		},
		{
			ID:       uuid.New(),
			Label:    "Buy NFT",
			URL:      "https://example.com/nft",
			Style:    StyleSecondary,
			IsActive: true,
			Position: 1,
		},
	}
}
