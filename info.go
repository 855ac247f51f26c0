package main

import (
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hhhapz/coursedoc/syllabus"
	"github.com/k0kubun/pp"
	"github.com/rs/zerolog"
)

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

func dumpTokens(w io.Writer, tokens []syllabus.Token) {
	pp.Fprintln(w, tokens)
}

func summary(log zerolog.Logger, courses []syllabus.Course, tokens int, size int64, started time.Time) {
	var missing int
	for _, c := range courses {
		for _, f := range syllabus.InfoFields() {
			if _, ok := c[f]; !ok {
				missing++
			}
		}
	}

	log.Info().
		Str("courses", humanize.Comma(int64(len(courses)))).
		Str("tokens", humanize.Comma(int64(tokens))).
		Str("missing_fields", humanize.Comma(int64(missing))).
		Str("input", humanize.Bytes(uint64(size))).
		Dur("took", time.Since(started)).
		Msg("extracted courses")
}
