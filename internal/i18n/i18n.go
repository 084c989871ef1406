// Package i18n carries the static UI string table (English / Traditional
// Chinese) and per-request language resolution.
package i18n

import "github.com/gin-gonic/gin"

type Lang string

const (
	LangEN Lang = "en"
	LangZH Lang = "zh"

	cookieName = "lang"
)

// FromRequest resolves the display language: explicit ?lang= query first
// (persisted to a cookie), then the cookie, then English.
func FromRequest(c *gin.Context) Lang {
	if q := c.Query("lang"); q != "" {
		lang := normalize(q)
		c.SetCookie(cookieName, string(lang), 365*24*60*60, "/", "", false, false)
		return lang
	}

	if v, err := c.Cookie(cookieName); err == nil {
		return normalize(v)
	}

	return LangEN
}

func normalize(v string) Lang {
	if v == "zh" {
		return LangZH
	}
	return LangEN
}

// T returns the UI string for key in the given language. Unknown keys return
// the key itself so missing entries are visible rather than blank.
func T(lang Lang, key string) string {
	entry, ok := uiText[key]
	if !ok {
		return key
	}
	if lang == LangZH {
		return entry.zh
	}
	return entry.en
}

type text struct {
	en string
	zh string
}

var uiText = map[string]text{
	"home":           {"Home", "首頁"},
	"projects":       {"Projects", "專案"},
	"admin":          {"Admin", "管理"},
	"contact":        {"Contact", "聯絡"},
	"featured":       {"Featured Projects", "精選專案"},
	"viewAll":        {"View All Projects", "查看所有專案"},
	"readMore":       {"Read More", "閱讀更多"},
	"backToProjects": {"Back to Projects", "返回專案列表"},
	"github":         {"View Code", "查看程式碼"},
	"demo":           {"Live Demo", "線上演示"},
	"adminTitle":     {"Dashboard", "後台管理"},
	"addNew":         {"Add New Project", "新增專案"},
	"edit":           {"Edit", "編輯"},
	"delete":         {"Delete", "刪除"},
	"save":           {"Save", "儲存"},
	"cancel":         {"Cancel", "取消"},
	"projectTitle":   {"Project Title", "專案標題"},
	"loading":        {"Loading...", "載入中..."},
	"noProjects":     {"No projects found.", "找不到專案。"},
	"about":          {"About Me", "關於我"},
	"contactText":    {"Feel free to reach out for collaborations or just a friendly chat.", "歡迎隨時聯絡我進行合作或交流。"},
	"downloadResume": {"Download Resume", "下載履歷"},
}
