package models

import "strings"

type Page string

const (
	PageHome         Page = "Home"
	PageDoctors      Page = "Doctors"
	PageAppointments Page = "Appointments"
	PageArticles     Page = "Articles"
	PageForum        Page = "Forum"
	PageAiAssistant  Page = "AI Assistant"
	PageLogin        Page = "Login"
	PageProfile      Page = "Profile"
)

var pages = []Page{
	PageHome, PageDoctors, PageAppointments, PageArticles,
	PageForum, PageAiAssistant, PageLogin, PageProfile,
}

// ParsePage accepts a page name in any case, with spaces or dashes
// ("AI Assistant", "ai-assistant"). Unknown names report false.
func ParsePage(s string) (Page, bool) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", " "))
	for _, p := range pages {
		if strings.ToLower(string(p)) == norm {
			return p, true
		}
	}
	return "", false
}

// AppState is the shell state returned to the client after navigation.
type AppState struct {
	CurrentPage Page      `json:"currentPage"`
	Identity    *Identity `json:"identity,omitempty"`
	ShowAiFab   bool      `json:"showAiFab"`
}
