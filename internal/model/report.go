package model

import "github.com/google/uuid"

// UpdaterCount is one row of the top-updaters leaderboard.
type UpdaterCount struct {
	UpdatedBy uuid.UUID `json:"updatedBy"`
	Name      string    `json:"name,omitempty"`
	Count     int       `json:"count"`
}

// BurnUnburnStats splits inquiries that have a current status into two buckets.
type BurnUnburnStats struct {
	Burned   int `json:"burned"`
	Unburned int `json:"unburned"`
}

// Total is the number of classified inquiries.
func (s BurnUnburnStats) Total() int {
	return s.Burned + s.Unburned
}

// InquiryButtonStats is the response of the inquiry-button-stats report.
type InquiryButtonStats struct {
	TotalUpdates       int             `json:"totalUpdates"`
	TopUpdaters        []UpdaterCount  `json:"topUpdaters"`
	StatusUpdateCounts map[string]int  `json:"statusUpdateCounts"`
	BurnUnburnStats    BurnUnburnStats `json:"burnUnburnStats"`
}

// WhatsAppSentCounts holds sent-message counts per category for both entity kinds.
type WhatsAppSentCounts struct {
	InquirySentCounts      map[string]int `json:"inquirySentCounts"`
	RegistrationSentCounts map[string]int `json:"registrationSentCounts"`
}
