package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/gtfsmerge"
)

// Mock implements Application with overridable function fields. A nil
// field falls back to a working default: a real merger, table output and
// a no-op logger.
type Mock struct {
	MergerFunc        func(opts ...gtfsmerge.Option) (gtfsmerge.Merger, error)
	MergeDefaultsFunc func() MergeDefaults
	LoggerFunc        func() *zerolog.Logger
	OutputFormatFunc  func() string
	BuildFunc         func() BuildInfo
}

// Merger returns a merger using the mock function or a default merger.
func (m *Mock) Merger(opts ...gtfsmerge.Option) (gtfsmerge.Merger, error) {
	if m.MergerFunc != nil {
		return m.MergerFunc(opts...)
	}
	return gtfsmerge.New(opts...)
}

// MergeDefaults returns defaults using the mock function or zero values.
func (m *Mock) MergeDefaults() MergeDefaults {
	if m.MergeDefaultsFunc != nil {
		return m.MergeDefaultsFunc()
	}
	return MergeDefaults{}
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Build returns build info using the mock function or development values.
func (m *Mock) Build() BuildInfo {
	if m.BuildFunc != nil {
		return m.BuildFunc()
	}
	return BuildInfo{Version: "dev", Commit: "unknown", Date: "unknown", BuiltBy: "test"}
}

var _ Application = (*Mock)(nil)
