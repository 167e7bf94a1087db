package i18n

import "testing"

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		raw  string
		want Language
	}{
		{"en", LanguageEN},
		{"EN", LanguageEN},
		{"ru", LanguageRU},
		{" RU ", LanguageRU},
		{"", LanguageEN},
		{"de", LanguageEN},
	}
	for _, tc := range cases {
		if got := ParseLanguage(tc.raw); got != tc.want {
			t.Fatalf("ParseLanguage(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestTextResolve(t *testing.T) {
	cases := []struct {
		name string
		text Text
		lang Language
		want string
	}{
		{"requested variant wins", Text{EN: "Roadmap", RU: "Дорожная карта"}, LanguageRU, "Дорожная карта"},
		{"missing requested falls to other", Text{EN: "Roadmap"}, LanguageRU, "Roadmap"},
		{"missing both falls to legacy", Text{Legacy: "Roadmap"}, LanguageEN, "Roadmap"},
		{"fully empty resolves empty", Text{}, LanguageRU, ""},
		{"english request prefers english", Text{EN: "Team", RU: "Команда"}, LanguageEN, "Team"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.text.Resolve(tc.lang); got != tc.want {
				t.Fatalf("Resolve(%q) = %q, want %q", tc.lang, got, tc.want)
			}
		})
	}
}

func TestMirrorDuplicatesMissingVariant(t *testing.T) {
	got := Mirror(Text{EN: "Partners"})
	if got.RU != "Partners" {
		t.Fatalf("expected RU mirrored from EN, got %q", got.RU)
	}

	got = Mirror(Text{RU: "Партнёры"})
	if got.EN != "Партнёры" {
		t.Fatalf("expected EN mirrored from RU, got %q", got.EN)
	}

	got = Mirror(Text{Legacy: "FAQ"})
	if got.EN != "FAQ" || got.RU != "FAQ" {
		t.Fatalf("expected both variants lifted from legacy, got %+v", got)
	}

	got = Mirror(Text{EN: "Hero", RU: "Герой"})
	if got.EN != "Hero" || got.RU != "Герой" {
		t.Fatalf("expected populated variants untouched, got %+v", got)
	}
}
