/*
 * Copyright 2025 SREDiag Authors
 * Copyright 2023 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package canvas

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"time"
)

type logger struct {
	mu        sync.Mutex
	name      string
	out       io.Writer
	callDepth int
}

var (
	internalLogger = &logger{name: "", out: os.Stderr, callDepth: 4}
	level          int

	// dumps every filled mask to stderr
	debugMode = os.Getenv("WOB_DEBUG_MODE") != ""

	magenta = string([]byte{27, 91, 57, 53, 109}) // Trace
	green   = string([]byte{27, 91, 57, 50, 109}) // Debug
	blue    = string([]byte{27, 91, 57, 52, 109}) // Info
	yellow  = string([]byte{27, 91, 57, 51, 109}) // Warn
	red     = string([]byte{27, 91, 57, 49, 109}) // Error
	reset   = string([]byte{27, 91, 48, 109})

	levelColors = []string{
		magenta,
		green,
		blue,
		yellow,
		red,
	}

	levelName = []string{
		"Trace",
		"Debug",
		"Info",
		"Warn",
		"Error",
	}
)

const (
	LevelTrace = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelNoPrint
)

func init() {
	level = LevelWarn
	if os.Getenv("WOB_LOG_LEVEL") != "" {
		if n, err := strconv.Atoi(os.Getenv("WOB_LOG_LEVEL")); err == nil {
			if n <= LevelNoPrint {
				level = n
			}
		}
	}
}

// SetLogLevel changes the internal logger's level; the default is Warn.
// The process env `WOB_LOG_LEVEL` also sets it.
func SetLogLevel(l int) {
	if l <= LevelNoPrint {
		level = l
	}
}

// SetLogOutput redirects the internal logger, os.Stderr when out is nil.
func SetLogOutput(out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	internalLogger.mu.Lock()
	internalLogger.out = out
	internalLogger.mu.Unlock()
}

func (l *logger) write(lvl int, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := io.WriteString(l.out, l.prefix(lvl)+msg+reset+"\n"); err != nil {
		fmt.Fprintf(os.Stderr, "logger write failed: %v\n", err)
	}
}

func (l *logger) errorf(format string, a ...interface{}) {
	if level > LevelError {
		return
	}
	l.write(LevelError, fmt.Sprintf(format, a...))
}

func (l *logger) warnf(format string, a ...interface{}) {
	if level > LevelWarn {
		return
	}
	l.write(LevelWarn, fmt.Sprintf(format, a...))
}

func (l *logger) infof(format string, a ...interface{}) {
	if level > LevelInfo {
		return
	}
	l.write(LevelInfo, fmt.Sprintf(format, a...))
}

func (l *logger) debugf(format string, a ...interface{}) {
	if level > LevelDebug {
		return
	}
	l.write(LevelDebug, fmt.Sprintf(format, a...))
}

func (l *logger) tracef(format string, a ...interface{}) {
	if level > LevelTrace {
		return
	}
	l.write(LevelTrace, fmt.Sprintf(format, a...))
}

func (l *logger) prefix(level int) string {
	var buffer [64]byte
	buf := bytes.NewBuffer(buffer[:0])
	_, _ = buf.WriteString(levelColors[level])
	_, _ = buf.WriteString(levelName[level])
	_ = buf.WriteByte(' ')
	_, _ = buf.WriteString(time.Now().Format("2006-01-02 15:04:05.999999"))
	_ = buf.WriteByte(' ')
	_, _ = buf.WriteString(l.location())
	_ = buf.WriteByte(' ')
	if l.name != "" {
		_, _ = buf.WriteString(l.name)
		_ = buf.WriteByte(' ')
	}
	return buf.String()
}

func (l *logger) location() string {
	_, file, line, ok := runtime.Caller(l.callDepth)
	if !ok {
		file = "???"
		line = 0
	}
	file = filepath.Base(file)
	return file + ":" + strconv.Itoa(line)
}
