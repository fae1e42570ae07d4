// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const (
	debugMsg = "debugMsg"
	infoMsg  = "infoMsg"
	errorMsg = "errorMsg"
)

// Do not run in parallel. It overrides currentLevel.
func TestSetLogLevel(t *testing.T) {
	oldLevel := getLevel()
	defer func() { currentLevel = oldLevel }()

	tests := []struct {
		name      string
		newLevel  string
		wantLevel Severity
	}{
		{name: "default level", newLevel: "", wantLevel: SeverityDefault},
		{name: "invalid level", newLevel: "xyz", wantLevel: SeverityDefault},
		{name: "debug level", newLevel: "debug", wantLevel: SeverityDebug},
		{name: "info level", newLevel: "info", wantLevel: SeverityInfo},
		{name: "mixed case", newLevel: "Warning", wantLevel: SeverityWarning},
		{name: "error level", newLevel: "error", wantLevel: SeverityError},
		{name: "fatal level", newLevel: "fatal", wantLevel: SeverityCritical},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			SetLevel(test.newLevel)
			gotLevel := getLevel()
			if test.wantLevel != gotLevel {
				t.Errorf("Error: want=%s, got=%s", test.wantLevel, gotLevel)
			}
		})
	}
}

// Do not run in parallel. It overrides logger with mockLogger.
func TestLogLevel(t *testing.T) {
	oldLogger := logger
	oldLevel := getLevel()
	defer func() {
		logger = oldLogger
		currentLevel = oldLevel
	}()
	Use(&mockLogger{})

	// logs below info(like debug) won't print
	SetLevel("info")

	tests := []struct {
		name     string
		logFunc  func(context.Context, any)
		logMsg   string
		expected bool
	}{
		{name: "debug", logFunc: Debug, logMsg: debugMsg, expected: false},
		{name: "info", logFunc: Info, logMsg: infoMsg, expected: true},
		{name: "warning", logFunc: Warning, logMsg: infoMsg, expected: true},
		{name: "error", logFunc: Error, logMsg: errorMsg, expected: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			logger.(*mockLogger).logs = ""
			test.logFunc(context.Background(), test.logMsg)
			logs := logger.(*mockLogger).logs
			got := strings.Contains(logs, test.logMsg)

			if got != test.expected {
				t.Errorf("expected : %v, got %v", test.expected, got)
			}
		})
	}
}

// Do not run in parallel. It overrides logger with mockLogger.
func TestDefaultLogLevel(t *testing.T) {
	oldLogger := logger
	oldLevel := getLevel()
	defer func() {
		logger = oldLogger
		currentLevel = oldLevel
	}()
	Use(&mockLogger{})

	SetLevel("") // default behaviour; print everything

	tests := []struct {
		name    string
		logFunc func(context.Context, string, ...any)
		logMsg  string
	}{
		{name: "debug", logFunc: Debugf, logMsg: debugMsg},
		{name: "info", logFunc: Infof, logMsg: infoMsg},
		{name: "error", logFunc: Errorf, logMsg: errorMsg},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.logFunc(context.Background(), "%s!", test.logMsg)
			logs := logger.(*mockLogger).logs

			if !strings.Contains(logs, test.logMsg+"!") {
				t.Errorf("%v not logged.", test.logMsg)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	for s, want := range map[Severity]string{
		SeverityDefault:  "Default",
		SeverityDebug:    "Debug",
		SeverityWarning:  "Warning",
		SeverityCritical: "Critical",
		Severity(9):      "Severity(9)",
		Severity(-1):     "Severity(-1)",
	} {
		if got := s.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}

type ctxKey struct{}

// Do not run in parallel. It overrides logger with mockLogger.
func TestUse(t *testing.T) {
	oldLogger := logger
	defer func() { logger = oldLogger }()

	m := &mockLogger{}
	Use(m)
	ctx := context.WithValue(context.Background(), ctxKey{}, "a.txt")
	Warning(ctx, struct{ File string }{"a.txt"})

	want := []entry{{SeverityWarning, "{File:a.txt}"}}
	if diff := cmp.Diff(want, m.entries, cmp.AllowUnexported(entry{})); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	if got := m.lastCtx.Value(ctxKey{}); got != "a.txt" {
		t.Errorf("logger got context value %v, want a.txt", got)
	}
}

// Do not run in parallel. It overrides logger and exit.
func TestFatal(t *testing.T) {
	oldLogger := logger
	oldExit := exit
	oldLevel := getLevel()
	defer func() {
		logger = oldLogger
		exit = oldExit
		currentLevel = oldLevel
	}()
	SetLevel("")

	for _, test := range []struct {
		name    string
		logFunc func(context.Context)
		want    string
	}{
		{"Fatal", func(ctx context.Context) { Fatal(ctx, "bad header") }, "bad header"},
		{"Fatalf", func(ctx context.Context) { Fatalf(ctx, "bad header in %s", "x.huf") }, "bad header in x.huf"},
	} {
		t.Run(test.name, func(t *testing.T) {
			m := &mockLogger{}
			Use(m)
			code := -1
			exit = func(c int) { code = c }

			test.logFunc(context.Background())
			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if m.flushes != 1 {
				t.Errorf("Flush called %d times, want 1", m.flushes)
			}
			want := []entry{{SeverityError, test.want}}
			if diff := cmp.Diff(want, m.entries, cmp.AllowUnexported(entry{})); diff != "" {
				t.Errorf("entries mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Do not run in parallel. It redirects the standard logger.
func TestStdlibLogger(t *testing.T) {
	var buf bytes.Buffer
	out, flags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	defer func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	}()

	stdlibLogger{}.Log(context.Background(), SeverityInfo, "compressed a.txt")
	if got, want := buf.String(), "Info: compressed a.txt\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

type entry struct {
	severity Severity
	payload  string
}

type mockLogger struct {
	logs    string
	entries []entry
	lastCtx context.Context
	flushes int
}

func (l *mockLogger) Log(ctx context.Context, s Severity, payload any) {
	l.logs += fmt.Sprintf("%s: %+v", s, payload)
	l.entries = append(l.entries, entry{s, fmt.Sprintf("%+v", payload)})
	l.lastCtx = ctx
}

func (l *mockLogger) Flush() { l.flushes++ }
