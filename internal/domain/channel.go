package domain

// Channel is an external chat destination that reminders are posted to.
// Channels are owned by the chat service; this system only reads them to
// resolve a ChannelID to a display name.
type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
