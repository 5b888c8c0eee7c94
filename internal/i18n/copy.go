package i18n

// Copy is the locale-dependent display text the render layer needs. It is
// a static lookup keyed by locale, deliberately separate from the content
// repository: posts are authored in one language, chrome is translated.
type Copy struct {
	NavHome        string
	NavInsights    string
	NavGovernance  string
	NavCareers     string
	NavAdmin       string
	NavSignIn      string
	NavSignOut     string
	ToggleLanguage string
	ToggleTheme    string

	HeroTitle    string
	HeroSubtitle string

	InsightsTitle    string
	InsightsSubtitle string
	InsightsViewAll  string
	InsightsAllChip  string
	InsightsEmpty    string

	AdminPostsTitle string
	AdminNewPost    string
	AdminEditPost   string
	AdminSave       string
	AdminDelete     string

	LoginTitle  string
	LoginEmail  string
	LoginSubmit string
}

var copyByLocale = map[Locale]Copy{
	LocaleEN: {
		NavHome:        "Home",
		NavInsights:    "Insights",
		NavGovernance:  "Governance",
		NavCareers:     "Careers",
		NavAdmin:       "Admin",
		NavSignIn:      "Sign In",
		NavSignOut:     "Sign Out",
		ToggleLanguage: "Bahasa Indonesia",
		ToggleTheme:    "Switch theme",

		HeroTitle:    "Building Enduring Value Across Industries",
		HeroSubtitle: "Adibayu Group orchestrates manufacturing, distribution, and retail enterprises into one resilient ecosystem.",

		InsightsTitle:    "Insights & Perspectives",
		InsightsSubtitle: "Thinking from across the group on strategy, operations, markets, and sustainability.",
		InsightsViewAll:  "View all insights",
		InsightsAllChip:  "All",
		InsightsEmpty:    "No insights published yet.",

		AdminPostsTitle: "Manage Insights",
		AdminNewPost:    "New Insight",
		AdminEditPost:   "Edit Insight",
		AdminSave:       "Save",
		AdminDelete:     "Delete",

		LoginTitle:  "Editor Sign In",
		LoginEmail:  "Email",
		LoginSubmit: "Sign In",
	},
	LocaleID: {
		NavHome:        "Beranda",
		NavInsights:    "Wawasan",
		NavGovernance:  "Tata Kelola",
		NavCareers:     "Karier",
		NavAdmin:       "Admin",
		NavSignIn:      "Masuk",
		NavSignOut:     "Keluar",
		ToggleLanguage: "English",
		ToggleTheme:    "Ganti tema",

		HeroTitle:    "Membangun Nilai Berkelanjutan Lintas Industri",
		HeroSubtitle: "Adibayu Group mengorkestrasi manufaktur, distribusi, dan ritel menjadi satu ekosistem yang tangguh.",

		InsightsTitle:    "Wawasan & Perspektif",
		InsightsSubtitle: "Pemikiran dari seluruh grup tentang strategi, operasi, pasar, dan keberlanjutan.",
		InsightsViewAll:  "Lihat semua wawasan",
		InsightsAllChip:  "Semua",
		InsightsEmpty:    "Belum ada wawasan yang diterbitkan.",

		AdminPostsTitle: "Kelola Wawasan",
		AdminNewPost:    "Wawasan Baru",
		AdminEditPost:   "Ubah Wawasan",
		AdminSave:       "Simpan",
		AdminDelete:     "Hapus",

		LoginTitle:  "Masuk Editor",
		LoginEmail:  "Email",
		LoginSubmit: "Masuk",
	},
}

// CopyFor returns the display text for a locale.
func CopyFor(l Locale) Copy {
	if c, ok := copyByLocale[l]; ok {
		return c
	}
	return copyByLocale[DefaultLocale]
}
