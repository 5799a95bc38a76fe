// Command json-schema-validate checks that one or more JSON Schema
// draft-04 documents are themselves well-formed: valid JSON, an object
// at the root, and free of any keyword that violates its own
// validation contract (spec.md §6).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kjs-tools/draftfuzz/internal/metaschema"
	"github.com/kjs-tools/draftfuzz/jsonval"
	"github.com/kjs-tools/draftfuzz/schema"
	"github.com/spf13/cobra"
)

// Exit codes, per spec.md §6.
const (
	exitSuccess = iota
	exitInvalidOption
	exitMalformedJSON
	exitFailedMetaSchema
)

type options struct {
	quiet          bool
	continueOnFail bool
	noHyper        bool
}

func main() {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "json-schema-validate [flags] <schema-file>...",
		Short:         "Check draft-04 JSON Schema documents with the engine's own keyword checks (not the bundled meta-schema)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress per-file error messages; rely on the exit code only")
	cmd.Flags().BoolVarP(&opts.continueOnFail, "continue", "i", false, "keep checking remaining files after one fails")
	cmd.Flags().BoolVar(&opts.noHyper, "no-hyper", false, "select the core meta-schema instead of the hyper-schema meta-schema; the selection does not change which checks run")

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

func run(ctx context.Context, opts *options, paths []string) error {
	kind := metaschema.Hyper
	if opts.noHyper {
		kind = metaschema.Core
	}

	var worst *exitErr
	for _, path := range paths {
		if err := checkFile(ctx, path, kind); err != nil {
			ee := err.(*exitErr)
			if !opts.quiet {
				fmt.Fprintf(os.Stderr, "%s: %s\n", path, ee.err)
			}
			if worst == nil || ee.code > worst.code {
				worst = ee
			}
			if !opts.continueOnFail {
				return worst
			}
		}
	}
	if worst != nil {
		return worst
	}
	return nil
}

// checkFile runs the two checks spec.md §6 describes for one schema
// document: it must be well-formed JSON with an object root
// (exitMalformedJSON otherwise), and it must pass this engine's own
// validate_schema pass, the closest available stand-in for "validates
// against the draft-04 meta-schema" now that $ref resolution (needed to
// run the bundled meta-schema document itself) is out of scope.
func checkFile(ctx context.Context, path string, kind metaschema.Kind) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &exitErr{exitMalformedJSON, fmt.Errorf("reading file: %w", err)}
	}
	if _, err := jsonval.Parse(data); err != nil {
		return &exitErr{exitMalformedJSON, fmt.Errorf("not valid JSON: %w", err)}
	}
	_ = metaschema.Bytes(kind) // bundled document is reference text only; see package doc.
	if _, err := schema.LoadContext(ctx, data); err != nil {
		if err == schema.ErrRootNotObject {
			return &exitErr{exitMalformedJSON, err}
		}
		return &exitErr{exitFailedMetaSchema, err}
	}
	return nil
}
