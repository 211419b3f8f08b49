package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ItemCategory distinguishes selectable modules from professional services
type ItemCategory int

const (
	ItemCategoryModule  ItemCategory = 0
	ItemCategoryService ItemCategory = 1
)

func (c ItemCategory) String() string {
	names := [...]string{"Module", "Service"}
	if int(c) < 0 || int(c) >= len(names) {
		return "Module"
	}
	return names[c]
}

// IsValid reports whether the value is one of the known categories
func (c ItemCategory) IsValid() bool {
	return c == ItemCategoryModule || c == ItemCategoryService
}

func (c ItemCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ItemCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = ItemCategory(i)
		return nil
	}
	switch str {
	case "Module":
		*c = ItemCategoryModule
	case "Service":
		*c = ItemCategoryService
	}
	return nil
}

func (c ItemCategory) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *ItemCategory) Scan(value interface{}) error {
	if value == nil {
		*c = ItemCategoryModule
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = ItemCategory(v)
	case int:
		*c = ItemCategory(v)
	}
	return nil
}
