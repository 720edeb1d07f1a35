package schedule

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	minHour = 0
	maxHour = 23
)

var (
	ErrNullSchedule   = errors.New("スケジュールが null です")
	ErrUnknownDay     = errors.New("不明な曜日キー")
	ErrUnknownField   = errors.New("不明なフィールド")
	ErrHourOutOfRange = errors.New("時刻は0から23の範囲で指定してください")
)

// ParseError はスケジュールタグの値を解析できなかったことを表す
type ParseError struct {
	InstanceID string
	Raw        string
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("スケジュールタグの値が不正です (インスタンスID: %s, 値: %q): %v", e.InstanceID, e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseSchedule はタグの値（JSON）をScheduleに変換する
// 例: {"Mon": {"s": 8, "e": 18}, "Fri": {"s": 8}}
func ParseSchedule(instanceID, raw string) (Schedule, error) {
	sched, err := decodeSchedule([]byte(raw))
	if err != nil {
		return nil, &ParseError{InstanceID: instanceID, Raw: raw, Err: err}
	}
	return sched, nil
}

func decodeSchedule(data []byte) (Schedule, error) {
	var days map[string]json.RawMessage
	if err := json.Unmarshal(data, &days); err != nil {
		return nil, err
	}
	if days == nil {
		return nil, ErrNullSchedule
	}

	sched := make(Schedule, len(days))
	for key, value := range days {
		day := Weekday(key)
		if !day.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDay, key)
		}
		window, err := decodeWindow(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		sched[day] = window
	}
	return sched, nil
}

func decodeWindow(data json.RawMessage) (Window, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Window{}, err
	}

	var w Window
	for key, value := range fields {
		hour, err := decodeHour(value)
		if err != nil {
			return Window{}, fmt.Errorf("%s: %w", key, err)
		}
		switch key {
		case "s":
			w.Start = hour
		case "e":
			w.End = hour
		default:
			return Window{}, fmt.Errorf("%w: %q", ErrUnknownField, key)
		}
	}
	return w, nil
}

// null は未指定として扱う
func decodeHour(data json.RawMessage) (*int, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, nil
	}
	var hour int
	if err := json.Unmarshal(data, &hour); err != nil {
		return nil, err
	}
	if hour < minHour || hour > maxHour {
		return nil, fmt.Errorf("%w: %d", ErrHourOutOfRange, hour)
	}
	return &hour, nil
}
