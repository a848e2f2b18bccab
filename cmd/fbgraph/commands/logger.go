package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// cliLogger writes log lines to stderr. Debug lines are emitted only when
// --verbose is set.
type cliLogger struct {
	mutex sync.Mutex
	out   io.Writer
}

func newCLILogger(out io.Writer) *cliLogger {
	return &cliLogger{out: out}
}

func (l *cliLogger) Debug(msg string, fields map[string]interface{}) {
	if viper.GetBool("verbose") {
		l.write("DEBUG", msg, fields)
	}
}

func (l *cliLogger) Info(msg string, fields map[string]interface{}) {
	if viper.GetBool("verbose") {
		l.write("INFO", msg, fields)
	}
}

func (l *cliLogger) Warn(msg string, fields map[string]interface{}) {
	l.write("WARN", msg, fields)
}

func (l *cliLogger) Error(msg string, fields map[string]interface{}) {
	l.write("ERROR", msg, fields)
}

func (l *cliLogger) write(level, msg string, fields map[string]interface{}) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var line strings.Builder

	line.WriteString("[" + level + "] " + msg)

	for _, key := range keys {
		fmt.Fprintf(&line, " %s=%v", key, fields[key])
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	_, _ = fmt.Fprintln(l.out, line.String())
}
