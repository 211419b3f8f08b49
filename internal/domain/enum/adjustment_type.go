package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// AdjustmentType represents how a financing plan alters the recurring bucket
type AdjustmentType int

const (
	AdjustmentTypeNone      AdjustmentType = 0
	AdjustmentTypeDiscount  AdjustmentType = 1
	AdjustmentTypeSurcharge AdjustmentType = 2
)

func (t AdjustmentType) String() string {
	names := [...]string{"None", "Discount", "Surcharge"}
	if int(t) < 0 || int(t) >= len(names) {
		return "None"
	}
	return names[t]
}

// IsValid reports whether the value is one of the known adjustment types
func (t AdjustmentType) IsValid() bool {
	return t >= AdjustmentTypeNone && t <= AdjustmentTypeSurcharge
}

func (t AdjustmentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *AdjustmentType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = AdjustmentType(i)
		return nil
	}
	switch str {
	case "None":
		*t = AdjustmentTypeNone
	case "Discount":
		*t = AdjustmentTypeDiscount
	case "Surcharge":
		*t = AdjustmentTypeSurcharge
	}
	return nil
}

func (t AdjustmentType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *AdjustmentType) Scan(value interface{}) error {
	if value == nil {
		*t = AdjustmentTypeNone
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = AdjustmentType(v)
	case int:
		*t = AdjustmentType(v)
	}
	return nil
}
