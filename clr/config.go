package clr

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// GeneratorConfig governs ambient, non-functional behavior of table
// construction and diagnostic rendering. It has no effect on the grammar,
// FIRST sets, canonical collection, or table contents themselves — only on
// how conflicts and dumps are surfaced.
//
// The zero value is a usable default: conflicts are silently resolved and
// dumps render without color, matching a library caller that hasn't opted
// into diagnostics.
type GeneratorConfig struct {
	// ReportConflicts, if true, causes GrammarConflict diagnostics to be
	// written to ConflictSink as they are resolved during table
	// construction. The original implementation always printed these to
	// stdout; here that's an explicit, injectable sink instead.
	ReportConflicts bool `toml:"report_conflicts"`

	// ConflictSink receives one line per resolved conflict when
	// ReportConflicts is true. Defaults to os.Stderr if nil.
	ConflictSink io.Writer `toml:"-"`

	// Colorize controls whether DumpStates/DumpTable apply pterm styling.
	// Disable for piping dump output to a file or a non-terminal consumer.
	Colorize bool `toml:"colorize"`
}

func (c GeneratorConfig) sink() io.Writer {
	if c.ConflictSink != nil {
		return c.ConflictSink
	}
	return os.Stderr
}

// LoadGeneratorConfig reads a GeneratorConfig from a TOML file, the same
// format tunaq itself uses for engine configuration. ConflictSink is never
// set by this loader (io.Writer has no TOML representation); callers that
// want a non-default sink must set it on the returned value themselves.
func LoadGeneratorConfig(path string) (GeneratorConfig, error) {
	var cfg GeneratorConfig
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}
