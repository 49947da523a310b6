// Copyright 2019, BeamIO, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Severity is a log severity level, patterned after RFC 5424
type Severity int

// Log severity levels, most to least verbose
const (
	DEBUG Severity = iota
	INFO
	WARNING
	ERROR
	ALERT
)

func (s Severity) String() string {
	switch s {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	case ALERT:
		return "ALERT"
	}
	return "UNKNOWN"
}

// LogContext provides the identity fields attached to every log message
type LogContext interface {
	AppName() string
}

// BasicLogContext is the default LogContext for this process
type BasicLogContext struct{}

// AppName implements the LogContext interface
func (c *BasicLogContext) AppName() string {
	return "espa-product-formatter"
}

var (
	logMutex  sync.Mutex
	logOutput io.Writer = os.Stderr
)

// SetLogOutput redirects log messages to the given writer; defaults to
// os.Stderr. Useful for testing.
func SetLogOutput(w io.Writer) {
	logMutex.Lock()
	defer logMutex.Unlock()
	logOutput = w
}

func logMessage(ctx LogContext, severity Severity, message string) {
	logMutex.Lock()
	defer logMutex.Unlock()
	fmt.Fprintf(logOutput, "%s %s [%s] %s\n",
		time.Now().UTC().Format(time.RFC3339), severity, ctx.AppName(), message)
}

// LogDebug logs a debugging message
func LogDebug(ctx LogContext, message string) {
	logMessage(ctx, DEBUG, message)
}

// LogInfo logs an informational message
func LogInfo(ctx LogContext, message string) {
	logMessage(ctx, INFO, message)
}

// LogAlert logs a message that requires operator attention
func LogAlert(ctx LogContext, message string) {
	logMessage(ctx, ALERT, message)
}

// LogAuditInput is the set of fields recorded for an auditable action
type LogAuditInput struct {
	Actor    string
	Action   string
	Actee    string
	Message  string
	Severity Severity
}

// LogAudit records an auditable action. Audit messages are suppressed unless
// the AUDIT environment variable is set to a true value.
func LogAudit(ctx LogContext, input LogAuditInput) {
	if enabled, _ := IsAuditEnabled(); !enabled {
		return
	}
	logMessage(ctx, input.Severity, fmt.Sprintf("AUDIT actor=%s action=%s actee=%s: %s",
		input.Actor, input.Action, input.Actee, input.Message))
}
