// Command json-schema-generate produces a deduplicated sample of JSON
// instances exercising every keyword of a draft-04 schema document.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kjs-tools/draftfuzz/jsonval"
	"github.com/kjs-tools/draftfuzz/schema"
	"github.com/spf13/cobra"
)

// Exit codes, per spec.md §6.
const (
	exitOK = iota
	exitInvalidOption
	exitMalformedJSON
)

type options struct {
	quiet              bool
	validOnly          bool
	invalidOnly        bool
	suppressMalformed  bool
	format             string
	cVariableName      string
	showTimings        bool
}

func main() {
	opts := &options{format: "plain", cVariableName: "instances"}

	cmd := &cobra.Command{
		Use:           "json-schema-generate [flags] <schema-file>",
		Short:         "Generate representative JSON instances for a draft-04 schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress the printed error message; rely on the exit code only")
	cmd.Flags().BoolVarP(&opts.validOnly, "valid-only", "v", false, "emit only instances the schema accepts")
	cmd.Flags().BoolVarP(&opts.invalidOnly, "invalid-only", "n", false, "emit only instances the schema rejects")
	cmd.Flags().BoolVarP(&opts.suppressMalformed, "no-malformed-json", "j", false, "suppress the trailing non-well-formed-JSON vector")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, `output format: "plain" or "c"`)
	cmd.Flags().StringVar(&opts.cVariableName, "c-variable-name", opts.cVariableName, `array name to use with --format c`)
	cmd.Flags().BoolVar(&opts.showTimings, "show-timings", false, "print elapsed generation time to stderr")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if ee, ok := err.(*exitErr); ok {
			if !opts.quiet {
				fmt.Fprintln(os.Stderr, ee.err)
			}
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitInvalidOption)
	}
}

type exitErr struct {
	code int
	err  error
}

func (e *exitErr) Error() string { return e.err.Error() }

func run(ctx context.Context, opts *options, schemaPath string) error {
	if opts.format != "plain" && opts.format != "c" {
		return &exitErr{exitInvalidOption, fmt.Errorf("unknown format %q, want plain or c", opts.format)}
	}
	if opts.validOnly && opts.invalidOnly {
		return &exitErr{exitInvalidOption, fmt.Errorf("-v and -n are mutually exclusive")}
	}

	data, err := os.ReadFile(schemaPath)
	if err != nil {
		return &exitErr{exitMalformedJSON, fmt.Errorf("reading schema: %w", err)}
	}

	s, err := schema.LoadContext(ctx, data)
	if err != nil {
		return &exitErr{exitMalformedJSON, fmt.Errorf("loading schema: %w", err)}
	}

	filter := schema.DefaultGenerateFilter()
	if opts.validOnly {
		filter.IncludeInvalid = false
	}
	if opts.invalidOnly {
		filter.IncludeValid = false
	}
	filter.IncludeMalformed = !opts.suppressMalformed && !opts.validOnly

	start := time.Now()
	instances := s.GenerateLabeled(filter)
	elapsed := time.Since(start)

	if opts.showTimings {
		fmt.Fprintf(os.Stderr, "generation took %s\n", elapsed)
	}

	switch opts.format {
	case "c":
		writeCArray(os.Stdout, opts.cVariableName, instances)
	default:
		writePlain(os.Stdout, instances)
	}
	return nil
}

func writePlain(w *os.File, instances []schema.GeneratedInstance) {
	for _, gi := range instances {
		if gi.Malformed {
			fmt.Fprintln(w, string(schema.MalformedJSONSample()))
			continue
		}
		fmt.Fprintln(w, jsonval.EncodeString(gi.Value))
	}
}

// writeCArray renders instances in the textual layout spec.md §6 calls
// a compatibility contract: a `static const struct { const char *json;
// size_t size; unsigned int is_valid; }` array literal, one element per
// line, each with a trailing sequential index comment.
func writeCArray(w *os.File, varName string, instances []schema.GeneratedInstance) {
	fmt.Fprintf(w, "static const struct {\n\tconst char *json;\n\tsize_t size;\n\tunsigned int is_valid;\n} %s[] = {\n", varName)
	for i, gi := range instances {
		var text string
		if gi.Malformed {
			text = string(schema.MalformedJSONSample())
		} else {
			text = jsonval.EncodeString(gi.Value)
		}
		validBit := 0
		if gi.Valid {
			validBit = 1
		}
		fmt.Fprintf(w, "\t{ %s, %d, %d }, /* %d */\n", cStringLiteral(text), len(text), validBit, i)
	}
	fmt.Fprintf(w, "};\n")
}

// cStringLiteral escapes s for use inside a C string literal.
func cStringLiteral(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			out = append(out, '\\', '"')
		case '\\':
			out = append(out, '\\', '\\')
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\t':
			out = append(out, '\\', 't')
		default:
			out = append(out, c)
		}
	}
	out = append(out, '"')
	return string(out)
}
