// Command nomen names molecules from SMILES input.
//
// Usage:
//
//	nomen name CCO
//	nomen name --json --trace "CC(=O)CCO"
//	echo "c1ccccc1" | nomen name
//
// Configuration flows flags > NOMEN_* environment variables > defaults.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/molgraph/nomen/naming"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the resolved flag/environment settings for one run.
type options struct {
	JSON          bool
	Trace         bool
	Verbose       bool
	MinConfidence float64
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "nomen",
		Short:         "nomen derives systematic IUPAC names from molecular graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.Bool("json", false, "emit one JSON object per input line")
	pf.Bool("trace", false, "include the applied rule trace in the output")
	pf.BoolP("verbose", "v", false, "log rule decisions to stderr")
	pf.Float64("min-confidence", 0, "fail inputs named below this confidence (0..1)")

	v.SetEnvPrefix("NOMEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(pf); err != nil {
		panic(err)
	}

	root.AddCommand(newNameCmd(v))
	return root
}

func newNameCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "name [SMILES...]",
		Short: "Name one or more SMILES inputs (arguments, or stdin when none)",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options{
				JSON:          v.GetBool("json"),
				Trace:         v.GetBool("trace"),
				Verbose:       v.GetBool("verbose"),
				MinConfidence: v.GetFloat64("min-confidence"),
			}
			log, err := newLogger(opts.Verbose)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck // stderr sync failure is uninteresting

			inputs, err := collectInputs(cmd, args)
			if err != nil {
				return err
			}
			if len(inputs) == 0 {
				return errors.New("no input: pass SMILES arguments or pipe lines on stdin")
			}

			failed := 0
			for _, smi := range inputs {
				if err := nameOne(cmd, log, opts, smi); err != nil {
					failed++
					log.Error("naming failed", zap.String("smiles", smi), zap.Error(err))
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", smi, err)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d input(s) failed", failed, len(inputs))
			}
			return nil
		},
	}
}

// lineResult is the JSON shape emitted per input under --json.
type lineResult struct {
	SMILES     string   `json:"smiles"`
	Name       string   `json:"name"`
	Confidence float64  `json:"confidence"`
	Warnings   []string `json:"warnings,omitempty"`
	Trace      []string `json:"trace,omitempty"`
}

func nameOne(cmd *cobra.Command, log *zap.Logger, opts options, smi string) error {
	res, err := naming.GenerateNameFromSMILES(smi)
	if err != nil {
		return err
	}

	log.Debug("named input",
		zap.String("smiles", smi),
		zap.String("name", res.Name),
		zap.Float64("confidence", res.Confidence),
		zap.Int("warnings", len(res.Warnings)))
	for _, w := range res.Warnings {
		log.Warn(w, zap.String("smiles", smi))
	}

	if res.Confidence < opts.MinConfidence {
		return fmt.Errorf("confidence %.2f below threshold %.2f (name was %q)",
			res.Confidence, opts.MinConfidence, res.Name)
	}

	out := cmd.OutOrStdout()
	if opts.JSON {
		lr := lineResult{
			SMILES:     smi,
			Name:       res.Name,
			Confidence: res.Confidence,
			Warnings:   res.Warnings,
		}
		if opts.Trace {
			for _, e := range res.Trace {
				lr.Trace = append(lr.Trace, fmt.Sprintf("%s %s: %s", e.Phase, e.RuleID, e.Note))
			}
		}
		enc := json.NewEncoder(out)
		return enc.Encode(lr)
	}

	fmt.Fprintln(out, res.Name)
	if opts.Trace {
		for _, e := range res.Trace {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s %s: %s\n", e.Phase, e.RuleID, e.Note)
		}
	}
	return nil
}

// collectInputs returns the positional arguments, or non-empty stdin lines
// when no arguments were given.
func collectInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var inputs []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return inputs, nil
}

// newLogger builds a stderr logger: console output, debug level under
// --verbose, warnings and up otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}
