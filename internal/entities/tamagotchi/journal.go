package tamagotchi

import "time"

// JournalKind classifies a journal entry
type JournalKind string

// JournalKind values
const (
	JournalKindBorn      JournalKind = "JOURNAL_KIND_BORN"
	JournalKindDaily     JournalKind = "JOURNAL_KIND_DAILY"
	JournalKindGrewUp    JournalKind = "JOURNAL_KIND_GREW_UP"
	JournalKindLifeEvent JournalKind = "JOURNAL_KIND_LIFE_EVENT"
	JournalKindFellSick  JournalKind = "JOURNAL_KIND_FELL_SICK"
	JournalKindDestiny   JournalKind = "JOURNAL_KIND_DESTINY"
)

// JournalLimit is the number of entries kept per creature
const JournalLimit = 50

// JournalEntry is one notable moment in a creature's life
type JournalEntry struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Kind      JournalKind `json:"kind"`
	Text      string      `json:"text"`
	CreatedAt time.Time   `json:"created_at"`
}
