package model

// LocalizedText is a bilingual string pair stored as a JSON column.
type LocalizedText struct {
	EN string `json:"en"`
	ZH string `json:"zh"`
}

func (t LocalizedText) Get(lang string) string {
	if lang == "zh" {
		return t.ZH
	}
	return t.EN
}

// SiteConfig is the one-per-user site configuration document. It is created
// with defaults at signup and overwritten wholesale on save.
type SiteConfig struct {
	UserID               string        `gorm:"size:64;primaryKey" json:"-"`
	WebsiteTitle         string        `gorm:"size:200" json:"websiteTitle"`
	AvatarURL            string        `gorm:"type:text" json:"avatarUrl,omitempty"`
	ShowLanguageSwitcher bool          `json:"showLanguageSwitcher"`
	HeroTitle            LocalizedText `gorm:"serializer:json;type:jsonb" json:"heroTitle"`
	HeroSubtitle         LocalizedText `gorm:"serializer:json;type:jsonb" json:"heroSubtitle"`
	AboutText            LocalizedText `gorm:"serializer:json;type:jsonb" json:"aboutText"`
	Skills               []string      `gorm:"serializer:json;type:jsonb" json:"skills"`
	ResumeURL            string        `gorm:"type:text" json:"resumeUrl"`
	GithubURL            string        `gorm:"type:text" json:"githubUrl"`
	LinkedinURL          string        `gorm:"type:text" json:"linkedinUrl"`
	Email                string        `gorm:"size:200" json:"email"`
}

// DefaultSiteConfig returns the configuration used before a user has saved
// their own, and as the value every new account starts from.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		WebsiteTitle:         "DevPortfolio",
		AvatarURL:            "",
		ShowLanguageSwitcher: true,
		HeroTitle: LocalizedText{
			EN: "Hi, I'm a Developer.",
			ZH: "你好，我是開發者。",
		},
		HeroSubtitle: LocalizedText{
			EN: "I build modern web applications with a focus on user experience and performance.",
			ZH: "我專注於建構注重使用者體驗和效能的現代 Web 應用程式。",
		},
		AboutText: LocalizedText{
			EN: "I am a passionate frontend engineer with expertise in React, Next.js, and modern UI frameworks. I love creating beautiful and functional digital experiences.",
			ZH: "我是一名充滿熱情的前端工程師，擅長 React、Next.js 和現代 UI 框架。我熱愛創造美觀且實用的數位體驗。",
		},
		Skills:      []string{"React", "TypeScript", "Next.js", "Tailwind CSS", "Node.js", "Firebase"},
		ResumeURL:   "#",
		GithubURL:   "https://github.com",
		LinkedinURL: "https://linkedin.com",
		Email:       "contact@example.com",
	}
}
