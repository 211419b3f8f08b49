package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// LeadStage represents the pipeline stage of a lead on the kanban board
type LeadStage int

const (
	LeadStageNew         LeadStage = 0
	LeadStageContacted   LeadStage = 1
	LeadStageQuoteSent   LeadStage = 2
	LeadStageNegotiation LeadStage = 3
	LeadStageWon         LeadStage = 4
	LeadStageLost        LeadStage = 5
)

func (s LeadStage) String() string {
	names := [...]string{"New", "Contacted", "QuoteSent", "Negotiation", "Won", "Lost"}
	if int(s) < 0 || int(s) >= len(names) {
		return "New"
	}
	return names[s]
}

// IsValid reports whether the value is one of the known pipeline stages
func (s LeadStage) IsValid() bool {
	return s >= LeadStageNew && s <= LeadStageLost
}

func (s LeadStage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *LeadStage) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = LeadStage(i)
		return nil
	}
	switch str {
	case "New":
		*s = LeadStageNew
	case "Contacted":
		*s = LeadStageContacted
	case "QuoteSent":
		*s = LeadStageQuoteSent
	case "Negotiation":
		*s = LeadStageNegotiation
	case "Won":
		*s = LeadStageWon
	case "Lost":
		*s = LeadStageLost
	}
	return nil
}

func (s LeadStage) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *LeadStage) Scan(value interface{}) error {
	if value == nil {
		*s = LeadStageNew
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = LeadStage(v)
	case int:
		*s = LeadStage(v)
	}
	return nil
}
