package directory

import (
	"math"
	"strconv"
	"strings"
)

const (
	minutesPerDay      = 24 * 60
	fixedBreakMinutes  = 60
	hoursRoundingScale = 100
)

// Hours は固定シフトから導出される時間項目です。
type Hours struct {
	Work  float64
	Break float64
	Total float64
}

// ComputeFixedHours は開始・終了時刻 (HH:MM) から勤務・休憩・合計時間を算出します。
// 終了が開始より前なら日付をまたぐものとして扱い、休憩は 60 分固定です。
func ComputeFixedHours(from, to string) (Hours, error) {
	start, err := parseClock(from)
	if err != nil {
		return Hours{}, err
	}
	end, err := parseClock(to)
	if err != nil {
		return Hours{}, err
	}
	if end < start {
		end += minutesPerDay
	}

	total := end - start
	work := total - fixedBreakMinutes

	return Hours{
		Work:  roundHours(work),
		Break: roundHours(fixedBreakMinutes),
		Total: roundHours(total),
	}, nil
}

func roundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*hoursRoundingScale) / hoursRoundingScale
}

// parseClock は HH:MM を深夜 0 時からの分に変換します。
func parseClock(raw string) (int, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, ErrInvalidClock
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, ErrInvalidClock
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, ErrInvalidClock
	}
	return h*60 + m, nil
}

func normalizeClock(raw string) (string, error) {
	if _, err := parseClock(raw); err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

// normalizeDays は曜日を検証し、重複を除いて月曜始まりの順に並べます。
func normalizeDays(days []Weekday) ([]Weekday, error) {
	seen := make(map[Weekday]bool, len(days))
	for _, d := range days {
		valid := false
		for _, w := range weekOrder {
			if strings.EqualFold(string(d), string(w)) {
				seen[w] = true
				valid = true
				break
			}
		}
		if !valid {
			return nil, ErrInvalidWeekday
		}
	}

	out := make([]Weekday, 0, len(seen))
	for _, w := range weekOrder {
		if seen[w] {
			out = append(out, w)
		}
	}
	return out, nil
}
