package models

// SiteSettings is the singleton record behind the public pages: academy
// identity, contact channels, hero copy and the rotating "buildables"
// strings. It is only ever replaced wholesale, never patched.
type SiteSettings struct {
	AcademyName       string   `json:"academyName"`
	AcademyNameEn     string   `json:"academyNameEn"`
	ContactEmail      string   `json:"contactEmail"`
	WhatsappNumber    string   `json:"whatsappNumber"`
	HeroTitle         string   `json:"heroTitle"`
	HeroTitleEn       string   `json:"heroTitleEn"`
	HeroDescription   string   `json:"heroDescription"`
	HeroDescriptionEn string   `json:"heroDescriptionEn"`
	HeroImage         string   `json:"heroImage"`
	BusinessImage     string   `json:"businessImage"`
	Buildables        []string `json:"buildables"`
	BuildablesEn      []string `json:"buildablesEn"`
}

// Partner is a logo shown in the partners marquee.
type Partner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
	URL  string `json:"url,omitempty"`
}

// PortfolioProject is a client project shown in the portfolio section.
type PortfolioProject struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	TitleEn       string `json:"titleEn"`
	Client        string `json:"client"`
	ClientEn      string `json:"clientEn"`
	Category      string `json:"category"`
	CategoryEn    string `json:"categoryEn"`
	Image         string `json:"image"`
	Description   string `json:"description"`
	DescriptionEn string `json:"descriptionEn"`
}
