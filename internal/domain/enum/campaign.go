package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// CampaignChannel represents the delivery channel of a marketing campaign
type CampaignChannel int

const (
	CampaignChannelEmail    CampaignChannel = 0
	CampaignChannelWhatsApp CampaignChannel = 1
	CampaignChannelTelegram CampaignChannel = 2
)

func (c CampaignChannel) String() string {
	names := [...]string{"Email", "WhatsApp", "Telegram"}
	if int(c) < 0 || int(c) >= len(names) {
		return "Email"
	}
	return names[c]
}

func (c CampaignChannel) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *CampaignChannel) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = CampaignChannel(i)
		return nil
	}
	switch str {
	case "Email":
		*c = CampaignChannelEmail
	case "WhatsApp":
		*c = CampaignChannelWhatsApp
	case "Telegram":
		*c = CampaignChannelTelegram
	}
	return nil
}

func (c CampaignChannel) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *CampaignChannel) Scan(value interface{}) error {
	if value == nil {
		*c = CampaignChannelEmail
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = CampaignChannel(v)
	case int:
		*c = CampaignChannel(v)
	}
	return nil
}

// CampaignStatus represents the dispatch status of a marketing campaign
type CampaignStatus int

const (
	CampaignStatusDraft   CampaignStatus = 0
	CampaignStatusSending CampaignStatus = 1
	CampaignStatusSent    CampaignStatus = 2
	CampaignStatusFailed  CampaignStatus = 3
)

func (s CampaignStatus) String() string {
	names := [...]string{"Draft", "Sending", "Sent", "Failed"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Draft"
	}
	return names[s]
}

func (s CampaignStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *CampaignStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = CampaignStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = CampaignStatusDraft
	case "Sending":
		*s = CampaignStatusSending
	case "Sent":
		*s = CampaignStatusSent
	case "Failed":
		*s = CampaignStatusFailed
	}
	return nil
}

func (s CampaignStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *CampaignStatus) Scan(value interface{}) error {
	if value == nil {
		*s = CampaignStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = CampaignStatus(v)
	case int:
		*s = CampaignStatus(v)
	}
	return nil
}
