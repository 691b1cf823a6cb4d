package model

import "time"

// 存储层统一使用的日期/时间格式（ISO 8601 日期 + HH:MM）
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Weekday 从 event_date 推导星期索引（0=Sunday..6=Saturday）和英文名。
// 只做读取时计算，不落库。
func Weekday(date string) (int, string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, "", err
	}
	w := t.Weekday()
	return int(w), w.String(), nil
}
