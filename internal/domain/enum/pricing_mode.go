package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PricingMode represents how a catalog line item is priced
type PricingMode int

const (
	PricingModeFixedRecurring PricingMode = 0
	PricingModeVolumeBased    PricingMode = 1
	PricingModeOneTime        PricingMode = 2
)

func (m PricingMode) String() string {
	names := [...]string{"FixedRecurring", "VolumeBased", "OneTime"}
	if int(m) < 0 || int(m) >= len(names) {
		return "FixedRecurring"
	}
	return names[m]
}

// IsValid reports whether the value is one of the known pricing modes
func (m PricingMode) IsValid() bool {
	return m >= PricingModeFixedRecurring && m <= PricingModeOneTime
}

func (m PricingMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PricingMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PricingMode(i)
		return nil
	}
	switch str {
	case "FixedRecurring":
		*m = PricingModeFixedRecurring
	case "VolumeBased":
		*m = PricingModeVolumeBased
	case "OneTime":
		*m = PricingModeOneTime
	}
	return nil
}

func (m PricingMode) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PricingMode) Scan(value interface{}) error {
	if value == nil {
		*m = PricingModeFixedRecurring
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PricingMode(v)
	case int:
		*m = PricingMode(v)
	}
	return nil
}
