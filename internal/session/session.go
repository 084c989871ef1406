// Package session implements the admin_session cookie: a base64-encoded JSON
// credential pair. The cookie is a password cache, not a signed token — the
// server re-verifies it against the store on every dashboard visit, and
// anyone who can forge the cookie can authenticate given a matching password.
// This mirrors the original application's behavior on purpose (DESIGN.md).
package session

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const (
	CookieName = "admin_session"
	// Cookies live for one day.
	maxAgeSeconds = 24 * 60 * 60
)

type Session struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func Encode(s Session) string {
	raw, _ := json.Marshal(s)
	return base64.StdEncoding.EncodeToString(raw)
}

func Decode(value string) (Session, error) {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return Session{}, err
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return Session{}, err
	}

	return s, nil
}

// Write sets the session cookie on the response. Not HttpOnly: the original
// dashboard reads it from client-side script.
func Write(c *gin.Context, s Session) {
	c.SetCookie(CookieName, Encode(s), maxAgeSeconds, "/", "", false, false)
}

func Clear(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, false)
}

// Read returns the decoded session from the request cookie, if present and
// well-formed.
func Read(c *gin.Context) (Session, bool) {
	value, err := c.Cookie(CookieName)
	if err != nil || value == "" {
		return Session{}, false
	}

	s, err := Decode(value)
	if err != nil || s.UserID == "" {
		return Session{}, false
	}

	return s, true
}
