package model

// Default view options for the board.
const (
	ViewAll      = "all"
	ViewActive   = "active"
	ViewArchived = "archived"
)

// Settings holds user preference flags. Each flag is persisted under its
// own store key.
type Settings struct {
	DarkMode      bool   `json:"darkMode"`
	Notifications bool   `json:"notifications"`
	DefaultView   string `json:"defaultView"`
	AutoArchive   bool   `json:"autoArchive"`
}
