package main

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/hhhapz/coursedoc/syllabus"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"
)

// section bodies break lines with a single "\n"
var markdown = goldmark.New(
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

func writeCourses(w io.Writer, courses []syllabus.Course, cfg configuration) error {
	out := make([]syllabus.Course, 0, len(courses))
	for _, c := range courses {
		if cfg.HTML {
			var err error
			if c, err = c.RenderHTML(markdown); err != nil {
				return err
			}
		}
		out = append(out, c)
	}

	switch cfg.Format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		indent := cfg.Indent
		if indent < 2 {
			indent = 2
		}
		enc.SetIndent(indent)
		if err := enc.Encode(out); err != nil {
			return errors.Wrap(err, "could not encode yaml")
		}
		return errors.Wrap(enc.Close(), "could not encode yaml")

	default:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", strings.Repeat(" ", cfg.Indent))
		return errors.Wrap(enc.Encode(out), "could not encode json")
	}
}
