package models

import (
	"errors"
	"slices"
)

// MeetStatus, harici meet kaydının durumu.
type MeetStatus string

const (
	MeetStatusPending    MeetStatus = "pending"
	MeetStatusActive     MeetStatus = "active"
	MeetStatusCompleted  MeetStatus = "completed"
	MeetStatusScheduled  MeetStatus = "scheduled"
	MeetStatusInProgress MeetStatus = "in-progress"
	MeetStatusCancelled  MeetStatus = "cancelled"
)

// UpdatableMeetStatuses, PUT /api/meets/{id} ile set edilebilen değerler.
var UpdatableMeetStatuses = []MeetStatus{MeetStatusActive, MeetStatusCompleted}

// MeetType, mülakat türü.
type MeetType string

const (
	MeetTypeTechnical   MeetType = "technical"
	MeetTypeBehavioral  MeetType = "behavioral"
	MeetTypeCulturalFit MeetType = "cultural-fit"
	MeetTypeScreening   MeetType = "screening"
)

// Candidate, meet kaydına gömülü aday bilgisi.
type Candidate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Position string `json:"position"`
}

// Meet, harici API'deki mülakat kaydı. Bu servis tarafından cache'lenmez.
type Meet struct {
	ID             string     `json:"id"`
	Status         MeetStatus `json:"status"`
	Type           MeetType   `json:"type"`
	CandidateID    string     `json:"candidate_id"`
	JDInterviewsID string     `json:"jd_interviews_id,omitempty"`
	Link           string     `json:"link,omitempty"`
	Candidate      Candidate  `json:"candidate"`
	ScheduledTime  string     `json:"scheduledTime,omitempty"`
	Duration       int        `json:"duration,omitempty"` // dakika
	CreatedAt      string     `json:"created_at,omitempty"`
	UpdatedAt      string     `json:"updated_at,omitempty"`
}

// UpdateMeetStatusRequest, PUT /api/meets/{id} body'si.
type UpdateMeetStatusRequest struct {
	Status MeetStatus `json:"status"`
}

// Validate, status'ün boş olmadığını ve izin verilen değerlerden biri olduğunu kontrol eder.
func (r *UpdateMeetStatusRequest) Validate() error {
	if r.Status == "" {
		return errors.New("Status is required")
	}
	if !slices.Contains(UpdatableMeetStatuses, r.Status) {
		return errors.New("Status must be either 'active' or 'completed'")
	}
	return nil
}

// UpdateMeetStatusResponse, başarılı status güncellemesinin yanıtı.
type UpdateMeetStatusResponse struct {
	Success bool       `json:"success"`
	MeetID  string     `json:"meetId"`
	Status  MeetStatus `json:"status"`
	Message string     `json:"message"`
}

// EntryPolicy, /interview sayfasına girişe izin veren status kümesi.
type EntryPolicy struct {
	allowed []MeetStatus
}

// NewEntryPolicy, config'ten gelen string listesiyle policy oluşturur.
func NewEntryPolicy(statuses []string) EntryPolicy {
	p := EntryPolicy{}
	for _, s := range statuses {
		p.allowed = append(p.allowed, MeetStatus(s))
	}
	return p
}

// Allows, status'ün girişe izin verip vermediğini döner.
func (p EntryPolicy) Allows(status MeetStatus) bool {
	return status != "" && slices.Contains(p.allowed, status)
}
