package models

import "time"

type CrisisType string

const (
	CrisisUrge      CrisisType = "urge"
	CrisisStress    CrisisType = "stress"
	CrisisEmotional CrisisType = "emotional"
	CrisisSocial    CrisisType = "social"
	CrisisRelapse   CrisisType = "relapse"
	CrisisAnxiety   CrisisType = "anxiety"
)

type CrisisEvent struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	Timestamp          time.Time  `json:"timestamp"`
	CrisisType         CrisisType `json:"crisis_type"`
	TriggerDescription string     `json:"trigger_description"`
	CopingStrategyUsed string     `json:"coping_strategy_used"`
	Outcome            string     `json:"outcome"`
	SeverityLevel      int        `json:"severity_level"`
	Resolved           bool       `json:"resolved"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
