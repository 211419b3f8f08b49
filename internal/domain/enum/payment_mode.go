package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMode represents the billing cadence chosen for a quote
type PaymentMode int

const (
	PaymentModeAnnual  PaymentMode = 0
	PaymentModeMonthly PaymentMode = 1
)

func (m PaymentMode) String() string {
	names := [...]string{"Annual", "Monthly"}
	if int(m) < 0 || int(m) >= len(names) {
		return "Annual"
	}
	return names[m]
}

func (m PaymentMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMode(i)
		return nil
	}
	switch str {
	case "Annual":
		*m = PaymentModeAnnual
	case "Monthly":
		*m = PaymentModeMonthly
	}
	return nil
}

func (m PaymentMode) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMode) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentModeAnnual
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMode(v)
	case int:
		*m = PaymentMode(v)
	}
	return nil
}
