package xslog

import (
	"log/slog"

	"github.com/garrettladley/habitreset/internal/version"
)

func Error(err error) slog.Attr {
	const errorKey = "error"
	return slog.String(errorKey, err.Error())
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func SessionID(id string) slog.Attr {
	const sessionIDKey = "session_id"
	return slog.String(sessionIDKey, id)
}

func HabitID(id string) slog.Attr {
	const habitIDKey = "habit_id"
	return slog.String(habitIDKey, id)
}

func Enabled(enabled bool) slog.Attr {
	const enabledKey = "enabled"
	return slog.Bool(enabledKey, enabled)
}

func Date(label string) slog.Attr {
	const dateKey = "date"
	return slog.String(dateKey, label)
}

func StoredDate(label string) slog.Attr {
	const storedDateKey = "stored_date"
	return slog.String(storedDateKey, label)
}

func Key(key string) slog.Attr {
	const keyKey = "key"
	return slog.String(keyKey, key)
}

func Backend(kind string) slog.Attr {
	const backendKey = "backend"
	return slog.String(backendKey, kind)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Percent(percent int) slog.Attr {
	const percentKey = "percent"
	return slog.Int(percentKey, percent)
}
