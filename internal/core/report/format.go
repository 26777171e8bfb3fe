package report

import "fmt"

// FormatClock は秒数を HH:MM:SS 形式に変換します。負の値は 0 として扱います。
func FormatClock(seconds int64) string {
	h, m, s := split(seconds)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatVerbose は秒数を "1h 2m 3s" 形式に変換します。
func FormatVerbose(seconds int64) string {
	h, m, s := split(seconds)
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}

func split(seconds int64) (int64, int64, int64) {
	if seconds < 0 {
		seconds = 0
	}
	return seconds / 3600, seconds % 3600 / 60, seconds % 60
}
