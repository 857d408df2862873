package models

type Article struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Excerpt  string `json:"excerpt"`
	Image    string `json:"image"`
}

type ForumTopic struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Author       string `json:"author"`
	Time         string `json:"time"`
	Category     string `json:"category"`
	Replies      int    `json:"replies"`
	LastActivity string `json:"lastActivity"`
}

type Hospital struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Distance string `json:"distance"`
}
