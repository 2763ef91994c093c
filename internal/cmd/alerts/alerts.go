// Package alerts prints status notices next to command output, such as
// the warning shown when there is nothing to merge or when tables were
// skipped for lack of a header.
package alerts

import "fmt"

// Alert is a single notice.
type Alert struct {
	Level   Level
	Message string
	Details []string
	Err     error
}

// New creates an alert.
func New(level Level, message string) *Alert {
	return &Alert{Level: level, Message: message}
}

func NewError(message string) *Alert   { return New(LevelError, message) }
func NewWarning(message string) *Alert { return New(LevelWarning, message) }
func NewInfo(message string) *Alert    { return New(LevelInfo, message) }
func NewSuccess(message string) *Alert { return New(LevelSuccess, message) }

// WithError attaches the cause printed after the message.
func (a *Alert) WithError(err error) *Alert {
	a.Err = err
	return a
}

// WithDetails appends indented lines shown under the message.
func (a *Alert) WithDetails(details ...string) *Alert {
	a.Details = append(a.Details, details...)
	return a
}

func (a *Alert) String() string {
	if a.Err != nil {
		return fmt.Sprintf("%s %s: %v", a.Level.Icon(), a.Message, a.Err)
	}
	return a.Level.Icon() + " " + a.Message
}
