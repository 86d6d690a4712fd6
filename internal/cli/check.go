// Package cli implements the stdschema command line operations.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	stdschema "github.com/reoring/stdschema"
	"github.com/reoring/stdschema/schemafile"
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned for an unsupported --format or --input-format.
var ErrUnknownFormat = errors.New("unknown format")

// CheckOptions configures Check.
type CheckOptions struct {
	SchemaPath string
	// InputFormat forces json or yaml; empty picks by file extension.
	InputFormat string
	MaxBytes    int64
	Files       []string
	// Stdin is read for the file name "-".
	Stdin io.Reader
}

// FileReport is the outcome for one input document.
type FileReport struct {
	File   string           `json:"file"`
	OK     bool             `json:"ok"`
	Issues stdschema.Issues `json:"issues,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// Check validates every file against the schema file. The returned error is
// reserved for setup problems; per-file failures land in the reports.
func Check(opts CheckOptions, logger zerolog.Logger) ([]FileReport, error) {
	if opts.InputFormat != "" && opts.InputFormat != FormatJSON && opts.InputFormat != "yaml" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.InputFormat)
	}
	schema, err := schemafile.LoadFile(opts.SchemaPath, schemafile.Options{})
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("schema", opts.SchemaPath).Int("files", len(opts.Files)).Msg("schema loaded")

	reports := make([]FileReport, 0, len(opts.Files))
	for _, name := range opts.Files {
		rep := checkFile(schema, name, opts)
		if rep.OK {
			logger.Debug().Str("file", name).Msg("valid")
		} else {
			logger.Info().Str("file", name).Int("issues", len(rep.Issues)).Str("error", rep.Error).Msg("invalid")
		}
		reports = append(reports, rep)
	}
	return reports, nil
}

func checkFile(schema stdschema.Schema[any], name string, opts CheckOptions) FileReport {
	rep := FileReport{File: name}
	var r io.Reader
	if name == "-" {
		if opts.Stdin == nil {
			rep.Error = "no stdin available"
			return rep
		}
		r = opts.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			rep.Error = err.Error()
			return rep
		}
		defer f.Close()
		r = f
	}

	_, err := stdschema.ParseFrom(schema, sourceFor(name, opts.InputFormat, r), stdschema.ParseOpt{MaxBytes: opts.MaxBytes})
	if err == nil {
		rep.OK = true
		return rep
	}
	if iss, ok := stdschema.AsIssues(err); ok {
		rep.Issues = iss
		return rep
	}
	rep.Error = err.Error()
	return rep
}

func sourceFor(name, format string, r io.Reader) stdschema.Source {
	if format == "" {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = FormatJSON
		}
	}
	if format == "yaml" {
		return stdschema.YAMLReader(r)
	}
	return stdschema.JSONReader(r)
}

// Failed reports whether any document did not validate.
func Failed(reports []FileReport) bool {
	for _, r := range reports {
		if !r.OK {
			return true
		}
	}
	return false
}

// WriteReports renders reports as text or JSON.
func WriteReports(w io.Writer, format string, reports []FileReport) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case FormatText, "":
		for _, r := range reports {
			switch {
			case r.OK:
				fmt.Fprintf(w, "%s: ok\n", r.File)
			case r.Error != "":
				fmt.Fprintf(w, "%s: error: %s\n", r.File, r.Error)
			default:
				fmt.Fprintf(w, "%s: %d issue(s)\n", r.File, len(r.Issues))
				for _, it := range r.Issues {
					fmt.Fprintf(w, "  %s: %s (%s)\n", it.Path.Pointer(), it.Message, it.Code)
				}
			}
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
