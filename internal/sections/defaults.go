package sections

import (
	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/i18n"
)

// DefaultHeroSettings returns the hero document served before any admin edit.
func DefaultHeroSettings() HeroSettings {
	return HeroSettings{
		Badge:      "Now in Beta v1.1",
		TitleLine1: "The Future of",
		TitleLine2: "Crypto Analytics",
		Subtitle:   "Discover a comprehensive platform combining social engagement, data analytics, and seamless access to crypto projects, NFTs, and more.",
		Stats: []HeroStat{
			{Value: "10K+", Label: i18n.NewText("Active Users", "Активных пользователей")},
			{Value: "$50M+", Label: i18n.NewText("Trading Volume", "Объём торгов")},
			{Value: "666", Label: i18n.NewText("NFT Collection", "NFT Коллекция")},
		},
		NFTSettings: NFTSettings{
			PricePerBox:       150,
			DiscountThreshold: 3,
			DiscountPercent:   10,
			TotalSupply:       666,
			MaxPerWallet:      100,
		},
	}
}

func DefaultAboutSettings() AboutSettings {
	return AboutSettings{
		Badge:            "About Us",
		Title:            "What is",
		TitleHighlight:   "FOMO",
		Subtitle:         "A cutting-edge platform reshaping how users interact with the crypto world",
		Description:      "FOMO is a cutting-edge platform built to reshape the way users interact with the cryptoworld. Our goal is to create a single, comprehensive ecosystem that combines",
		SocialEngagement: "social engagement",
		DataAnalytics:    "data analytics",
		SeamlessAccess:   "seamless access",
		DescriptionEnd:   "to crypto projects, NFTs, funds, and more.",
		Features: []AboutFeature{
			{Icon: "diamond", Title: "Community-Driven", Description: "Every user influences the project through voting and social engagement.", Color: "emerald"},
			{Icon: "clock", Title: "24/7 Support", Description: "Our support never stops. We are here offering guidance every step.", Color: "teal"},
			{Icon: "lightning", Title: "Fast & Efficient", Description: "Launch your project quickly with FOMO tools and support.", Color: "cyan"},
			{Icon: "shield", Title: "Secure & Reliable", Description: "All transactions via secure smart contracts for max protection.", Color: "violet"},
		},
		WhitepaperButtonText: "Whitepaper",
	}
}

func defaultTrend() []int {
	return []int{50, 55, 52, 60, 58, 65, 62, 70, 68, 75, 72, 80}
}

func DefaultPlatformSettings() PlatformSettings {
	return PlatformSettings{
		Community: PlatformStat{Value: "45,658", Label: i18n.NewText("Community Members", "Участников сообщества"), Change: "+12%", Trend: defaultTrend()},
		Visits:    PlatformStat{Value: "1.2M", Label: i18n.NewText("Monthly Visits", "Посещений в месяц"), Change: "+18%", Trend: defaultTrend()},
		Projects:  PlatformStat{Value: "16,670", Label: i18n.NewText("Tracked Projects", "Отслеживаемых проектов"), Change: "+8%", Trend: defaultTrend()},
		Alerts:    PlatformStat{Value: "892", Label: i18n.NewText("Red Flag Alerts", "Красных флагов"), Change: "-15%", Trend: defaultTrend()},
		ServiceModules: []ServiceModule{
			{Icon: "📊", Name: i18n.NewText("Dashboard", "Дашборд"), Count: "2,847", Label: i18n.NewText("active users", "активных пользователей"), Color: "emerald"},
			{Icon: "💱", Name: i18n.NewText("OTC Market", "OTC Маркет"), Count: "$50M+", Label: i18n.NewText("volume", "объём"), Color: "blue"},
			{Icon: "🔄", Name: i18n.NewText("P2P Exchange", "P2P Обмен"), Count: "1,245", Label: i18n.NewText("trades/day", "сделок/день"), Color: "purple"},
			{Icon: "🎯", Name: i18n.NewText("Predictions", "Прогнозы"), Count: "78%", Label: i18n.NewText("accuracy", "точность"), Color: "orange"},
			{Icon: "🔍", Name: i18n.NewText("Parsing", "Парсинг"), Count: "16K+", Label: i18n.NewText("tokens", "токенов"), Color: "pink"},
			{Icon: "📈", Name: i18n.NewText("Sentiment", "Сентимент"), Count: "24/7", Label: i18n.NewText("monitoring", "мониторинг"), Color: "cyan"},
			{Icon: "🚀", Name: i18n.NewText("EarlyLand", "EarlyLand"), Count: "340+", Label: i18n.NewText("projects", "проектов"), Color: "green"},
			{Icon: "🖼️", Name: i18n.NewText("NFT Strategy", "NFT Стратегия"), Count: "89", Label: i18n.NewText("collections", "коллекций"), Color: "violet"},
		},
		ServicesList: []ServiceItem{
			{
				Num:         "01",
				Title:       i18n.NewText("OTC & P2P MARKETS", "OTC & P2P РЫНКИ"),
				Description: i18n.NewText("Secure over-the-counter trading and peer-to-peer exchange for crypto assets with escrow protection and verified counterparties.", "Безопасная внебиржевая торговля и P2P-обмен криптоактивами с защитой эскроу и верифицированными контрагентами."),
			},
			{
				Num:         "02",
				Title:       i18n.NewText("EARLY LAND ACCESS", "РАННИЙ ДОСТУП"),
				Description: i18n.NewText("Get early access to promising projects, participate in airdrops, and maximize your earning potential before public launches.", "Получите ранний доступ к перспективным проектам, участвуйте в airdrop'ах и максимизируйте свой заработок до публичных запусков."),
			},
			{
				Num:         "03",
				Title:       i18n.NewText("ANALYTICS & SENTIMENT", "АНАЛИТИКА И СЕНТИМЕНТ"),
				Description: i18n.NewText("Advanced parsing, sentiment analysis, and red flag detection to identify scams and make informed investment decisions.", "Продвинутый парсинг, анализ настроений и обнаружение красных флагов для выявления скамов и принятия обоснованных инвестиционных решений."),
			},
		},
		BottomStats: []BottomStat{
			{Value: "70%", Label: i18n.NewText("ANALYSIS AUTOMATED", "АВТОМАТИЗАЦИЯ АНАЛИЗА"), Description: i18n.NewText("AI-powered insights in seconds", "AI-инсайты за секунды")},
			{Value: "24/7", Label: i18n.NewText("MARKET COVERAGE", "ОХВАТ РЫНКА"), Description: i18n.NewText("Real-time monitoring", "Мониторинг в реальном времени")},
			{Value: "$50M+", Label: i18n.NewText("TRADING VOLUME", "ОБЪЁМ ТОРГОВ"), Description: i18n.NewText("Across all markets", "На всех рынках")},
		},
		SectionBadge: i18n.NewText("INSIDE THE PLATFORM", "ВНУТРИ ПЛАТФОРМЫ"),
		SectionTitle: i18n.NewText("A command center for your crypto journey", "Командный центр для вашего крипто-путешествия"),
		SectionIntro: i18n.NewText("See every market move, track projects, manage your portfolio, and access exclusive opportunities in one place. FOMO connects all your crypto activities so you stay ahead of the curve.", "Следите за каждым движением рынка, отслеживайте проекты, управляйте портфелем и получайте доступ к эксклюзивным возможностям в одном месте."),
	}
}

func DefaultCommunitySettings() CommunitySettings {
	return CommunitySettings{
		Title:       i18n.NewText("Join the Community", "Присоединяйся к сообществу"),
		Description: i18n.NewText("Connect with web3 founders, developers, and crypto enthusiasts from around the world.", "Общайтесь с web3 основателями, разработчиками и крипто-энтузиастами со всего мира."),
		Socials: []CommunitySocial{
			{Platform: "twitter", URL: "https://twitter.com", Enabled: true},
			{Platform: "telegram", URL: "https://t.me", Enabled: true},
			{Platform: "discord", URL: "https://discord.com", Enabled: true},
		},
		SubscribeEnabled: true,
		SubscribeTitle:   i18n.NewText("Stay Updated", "Будь в курсе"),
	}
}

// DefaultFooterSettings mints fresh IDs for the nested sections and links so
// the admin can reorder them right after first read.
func DefaultFooterSettings() FooterSettings {
	return FooterSettings{
		CompanyName:        "FOMO",
		CompanyDescription: "Leading cryptocurrency analytics platform",
		CompanyAddress:     "4 World Trade Center\n150 Greenwich St Floor 45\nNew York, NY 10007",
		CompanyPhone:       "(646) 845-0036",
		CompanyEmail:       "info@fomo.io",
		SocialMedia: []SocialMediaLink{
			{Platform: "github", URL: "https://github.com"},
			{Platform: "linkedin", URL: "https://linkedin.com"},
			{Platform: "youtube", URL: "https://youtube.com"},
		},
		NavigationSections: []FooterSection{
			{
				ID:    uuid.New(),
				Title: "COMPANY",
				Links: []FooterLink{
					{ID: uuid.New(), Name: "About", URL: "#about", Order: 0},
					{ID: uuid.New(), Name: "Team", URL: "#team", Order: 1},
				},
				Order: 0,
			},
			{
				ID:    uuid.New(),
				Title: "PLATFORM",
				Links: []FooterLink{
					{ID: uuid.New(), Name: "Projects", URL: "#projects", Order: 0},
					{ID: uuid.New(), Name: "Roadmap", URL: "#roadmap", Order: 1},
					{ID: uuid.New(), Name: "Partners", URL: "#partners", Order: 2},
				},
				Order: 1,
			},
			{
				ID:    uuid.New(),
				Title: "OTHER",
				Links: []FooterLink{
					{ID: uuid.New(), Name: "Documentation", URL: "#", Order: 0},
					{ID: uuid.New(), Name: "Support", URL: "#", Order: 1},
				},
				Order: 2,
			},
		},
		CTAButtonText:            "Launch Platform →",
		CTAButtonURL:             "#",
		RegulatoryDisclosuresURL: "#",
		PrivacyNoticeURL:         "#",
		SecurityURL:              "#",
		CopyrightText:            "Copyright © 2025 FOMO. All rights reserved.",
		LegalDisclaimer:          "Products and services are offered by FOMO as a crypto analytics platform. All trading and investment decisions are the sole responsibility of the user.",
		MadeByText:               "Made by Emergent",
		MadeByURL:                "https://emergent.sh",
	}
}

func DefaultRoadmapSettings() RoadmapSettings {
	return RoadmapSettings{
		SectionBadge:    i18n.NewText("Our Progress", "Наш Прогресс"),
		SectionTitle:    i18n.NewText("Project Roadmap", "Дорожная карта проекта"),
		SectionSubtitle: i18n.NewText("Track our development progress in real-time", "Отслеживайте наш прогресс разработки в реальном времени"),
	}
}
