package models

import (
	"errors"
	"fmt"
)

// TranscriptSource, bir transcript satırının kaynağı.
type TranscriptSource string

const (
	SourceAI   TranscriptSource = "ai"
	SourceUser TranscriptSource = "user"
)

// TranscriptEntry, konuşmadaki tek bir mesaj.
type TranscriptEntry struct {
	Source  TranscriptSource `json:"source"`
	Message string           `json:"message"`
}

// Validate, source'un ai/user olduğunu kontrol eder.
func (e TranscriptEntry) Validate() error {
	if e.Source != SourceAI && e.Source != SourceUser {
		return fmt.Errorf("invalid source %q", e.Source)
	}
	return nil
}

// Conversation, harici API'ye tek seferde gönderilen transcript.
// POST {API_URL}/api/conversations body'si.
type Conversation struct {
	MeetID           string            `json:"meet_id"`
	CandidateID      string            `json:"candidate_id"`
	ConversationData []TranscriptEntry `json:"conversation_data"`
}

// Validate, meet_id'nin varlığını ve her satırın geçerliliğini kontrol eder.
func (c *Conversation) Validate() error {
	if c.MeetID == "" {
		return errors.New("meet_id is required")
	}
	for i, e := range c.ConversationData {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("conversation_data[%d]: %w", i, err)
		}
	}
	return nil
}
