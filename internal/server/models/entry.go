// Package models defines the data models persisted by the server.
package models

// Entry is a task record owned by exactly one caller. The (OwnerID, EntryID)
// pair is the storage key; OwnerID, EntryID and CreatedAt never change after
// creation.
type Entry struct {
	OwnerID       string `json:"ownerId"`
	EntryID       string `json:"entryId"`
	CreatedAt     string `json:"createdAt"`
	Text          string `json:"text"`
	Done          bool   `json:"done"`
	AttachmentURL string `json:"attachmentUrl"`
}
