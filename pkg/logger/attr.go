package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// AccountID records the account identifier under the key "account_id".
// If id is nil, it returns an empty Attr.
func AccountID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("account_id", id)
}

// Email records an email address under the key "email".
func Email(email string) slog.Attr {
	return slog.String("email", email)
}

// Role records a role name under the key "role".
// If role is nil, it returns an empty Attr.
func Role(role any) slog.Attr {
	if role == nil {
		return slog.Attr{}
	}
	return slog.Any("role", role)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
