package logging

import (
	"fmt"
	"log"
	"maps"
	"os"
	"sort"
	"strings"
	"sync/atomic"
)

// DefaultLogger writes leveled lines through the standard log package:
// debug and info to stdout, warnings and errors to stderr.
type DefaultLogger struct {
	out    *log.Logger
	errOut *log.Logger
	level  atomic.Int32
	fields Fields
}

// NewDefaultLogger creates a logger at InfoLevel.
func NewDefaultLogger() *DefaultLogger {
	d := &DefaultLogger{
		out:    log.New(os.Stdout, "", log.LstdFlags),
		errOut: log.New(os.Stderr, "", log.LstdFlags),
		fields: make(Fields),
	}
	d.level.Store(int32(InfoLevel))
	return d
}

func (d *DefaultLogger) format(level Level, err error, msg string, fields []Fields) string {
	all := make(Fields)
	maps.Copy(all, d.fields)
	for _, f := range fields {
		maps.Copy(all, f)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", level, msg)
	if err != nil {
		fmt.Fprintf(&b, ": %v", err)
	}
	if len(all) > 0 {
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, all[k])
		}
	}
	return b.String()
}

func (d *DefaultLogger) log(level Level, err error, msg string, fields []Fields) {
	if level < Level(d.level.Load()) {
		return
	}
	line := d.format(level, err, msg, fields)
	if level >= WarnLevel {
		d.errOut.Println(line)
	} else {
		d.out.Println(line)
	}
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) { d.log(DebugLevel, nil, msg, fields) }
func (d *DefaultLogger) Info(msg string, fields ...Fields)  { d.log(InfoLevel, nil, msg, fields) }
func (d *DefaultLogger) Warn(msg string, fields ...Fields)  { d.log(WarnLevel, nil, msg, fields) }
func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	d.log(ErrorLevel, err, msg, fields)
}

// WithFields returns a logger that attaches the given fields to every line.
func (d *DefaultLogger) WithFields(fields Fields) Logger {
	merged := make(Fields, len(d.fields)+len(fields))
	maps.Copy(merged, d.fields)
	maps.Copy(merged, fields)
	next := &DefaultLogger{
		out:    d.out,
		errOut: d.errOut,
		fields: merged,
	}
	next.level.Store(d.level.Load())
	return next
}

func (d *DefaultLogger) SetLevel(level Level) {
	d.level.Store(int32(level))
}
