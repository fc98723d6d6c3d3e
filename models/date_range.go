package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateRange là một khoảng ngày áp dụng hoặc chặn của gói giá
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// DateRangeList lưu danh sách khoảng ngày dưới dạng jsonb
type DateRangeList []DateRange

func (l DateRangeList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *DateRangeList) Scan(value interface{}) error {
	if value == nil {
		*l = DateRangeList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("không thể scan kiểu %T vào DateRangeList", value)
}
