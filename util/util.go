package util

import (
	"strconv"
)

// StringToInt64 converts string to int64
func StringToInt64(str string) (int64, error) {
	i64, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return 0, err
	}
	return i64, nil
}

// Int64ToString coverts int64 to string
func Int64ToString(u int64) string {
	return strconv.FormatInt(u, 10)
}

// TruncateHash shortens a hash or address for table display, keeping n
// characters from each end.
func TruncateHash(s string, n int) string {
	if len(s) <= n*2+3 {
		return s
	}
	return s[:n] + "..." + s[len(s)-n:]
}
