package main

import (
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hhhapz/coursedoc/syllabus"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

type configuration struct {
	Variant string `yaml:"variant"`
	Branch  string `yaml:"branch"`
	Format  string `yaml:"format"`
	HTML    bool   `yaml:"html"`
	Indent  int    `yaml:"indent"`
}

func defaultConfig() configuration {
	return configuration{
		Variant: string(syllabus.VariantGeneric),
		Format:  formatJSON,
		Indent:  2,
	}
}

// config loads path (optional unless required), then .env and the
// COURSEDOC_* environment on top of it.
func config(path string, required bool) (configuration, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()
	fileBytes, err := os.ReadFile(path)
	switch {
	case err == nil:
		cfg, err = configFromBytes(fileBytes)
		if err != nil {
			return configuration{}, err
		}
	case required || !errors.Is(err, os.ErrNotExist):
		return configuration{}, errors.Wrap(err, "could not open config")
	}

	cfg.fromEnv(os.Getenv)
	return cfg, nil
}

func configFromBytes(b []byte) (configuration, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return configuration{}, errors.Wrap(err, "could not parse config")
	}
	return cfg, nil
}

func (c *configuration) fromEnv(getenv func(string) string) {
	if v := getenv("COURSEDOC_VARIANT"); v != "" {
		c.Variant = v
	}
	if v := getenv("COURSEDOC_BRANCH"); v != "" {
		c.Branch = v
	}
	if v := getenv("COURSEDOC_FORMAT"); v != "" {
		c.Format = v
	}
}

func (c configuration) variant() syllabus.Variant {
	v, _ := syllabus.ParseVariant(c.Variant)
	return v
}

func (c configuration) Validate() error {
	c.Variant = strings.ToLower(strings.TrimSpace(c.Variant))
	return validation.ValidateStruct(&c,
		validation.Field(&c.Variant, validation.In(string(syllabus.VariantGeneric), string(syllabus.VariantExtended))),
		validation.Field(&c.Format, validation.Required, validation.In(formatJSON, formatYAML)),
		validation.Field(&c.Indent, validation.Min(0), validation.Max(8)),
	)
}
