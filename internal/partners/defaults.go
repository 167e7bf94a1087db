package partners

import (
	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/i18n"
)

// DefaultPartners returns the seed grid used when the partners table is
// empty. Positions are dense per category.
func DefaultPartners() []*Partner {
	entries := []struct {
		name        string
		description string
		link        string
		category    Category
	}{
		{
			name:        "CoinGecko",
			description: "Leading cryptocurrency data aggregator providing real-time prices, market cap rankings, and trading volumes for thousands of digital assets.",
			link:        "https://coingecko.com",
			category:    CategoryPartners,
		},
		{
			name:        "Binance",
			description: "World's largest cryptocurrency exchange by trading volume, offering a comprehensive trading platform for digital assets.",
			link:        "https://binance.com",
			category:    CategoryPartners,
		},
		{
			name:        "Chainlink",
			description: "Decentralized oracle network that enables smart contracts to securely connect with external data sources and APIs.",
			link:        "https://chain.link",
			category:    CategoryPartners,
		},
		{
			name:        "CoinTelegraph",
			description: "Leading independent digital media resource covering blockchain technology, crypto assets and emerging fintech trends.",
			link:        "https://cointelegraph.com",
			category:    CategoryMedia,
		},
		{
			name:        "The Block",
			description: "Research and news platform delivering institutional-grade analysis of digital asset markets and blockchain technology.",
			link:        "https://theblock.co",
			category:    CategoryMedia,
		},
		{
			name:        "DeFi Pulse",
			description: "Analytics platform tracking and measuring the growth of decentralized finance protocols across multiple blockchains.",
			link:        "https://defipulse.com",
			category:    CategoryPortfolio,
		},
		{
			name:        "Uniswap",
			description: "Leading decentralized exchange protocol enabling automated trading of DeFi tokens through liquidity pools.",
			link:        "https://uniswap.org",
			category:    CategoryPortfolio,
		},
	}

	positions := map[Category]int{}
	items := make([]*Partner, len(entries))
	for i, entry := range entries {
		items[i] = &Partner{
			ID:          uuid.New(),
			Name:        i18n.Mirror(i18n.Text{EN: entry.name}),
			Description: i18n.Mirror(i18n.Text{EN: entry.description}),
			Link:        entry.link,
			Category:    entry.category,
			Position:    positions[entry.category],
		}
		positions[entry.category]++
	}
	return items
}
