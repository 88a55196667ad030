package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/morse/codec"
	"github.com/npillmayer/morse/symtab"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var (
	tableFile string
	reportAll bool
	envLocale bool
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "morse",
	Short: "Translate text to and from International Morse Code",
	Long: `morse translates plaintext to International Morse Code and back.

Morse code is written with '.' and '-', codes are separated by spaces
and words by " / ".

Examples:
  morse encode "test some words"
  morse decode "... --- ..."
  echo "sos" | morse encode
  morse --table german.toml encode "straße"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupTracing()
	},
}

// Execute runs the command line interface.
func Execute() error {
	err := rootCmd.Execute()
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintf(os.Stderr, "morse: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tableFile, "table", "", "symbol table file (.toml, .yaml); default: ISO table")
	rootCmd.PersistentFlags().BoolVar(&reportAll, "all", false, "translate as much as possible and report every error")
	rootCmd.PersistentFlags().BoolVar(&envLocale, "env-locale", false, "lowercase plaintext following the user's locale")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose tracing output")
}

func setupTracing() {
	gtrace.CoreTracer = gologadapter.New()
	if verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
}

// reportedError is an error which has already been printed to the user.
type reportedError struct {
	error
}

func (e *reportedError) Unwrap() error { return e.error }

func translator() (*codec.Translator, error) {
	table := symtab.Default()
	if tableFile != "" {
		t, err := symtab.Load(tableFile)
		if err != nil {
			return nil, err
		}
		table = t
	}
	var opts []codec.Option
	if envLocale {
		opts = append(opts, codec.WithCasing(codec.CasingFromEnvironment()))
	}
	return codec.New(table, opts...), nil
}

// inputText joins the arguments, or reads standard input if there are none.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

// translate runs one of the codec operations and prints the result, or the
// error, to standard output.
func translate(cmd *cobra.Command, args []string,
	strict func(*codec.Translator, string) (string, error),
	lenient func(*codec.Translator, string) (string, []error)) error {
	//
	tr, err := translator()
	if err != nil {
		return err
	}
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if reportAll {
		result, errs := lenient(tr, text)
		fmt.Fprintln(out, result)
		for _, e := range errs {
			fmt.Fprintln(out, e.Error())
		}
		if len(errs) > 0 {
			return &reportedError{errs[0]}
		}
		return nil
	}
	result, err := strict(tr, text)
	if err != nil {
		fmt.Fprintln(out, err.Error())
		return &reportedError{err}
	}
	fmt.Fprintln(out, result)
	return nil
}
