package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mgomes/zenscript/zen"
)

// checkCmd parses each given script and reports diagnostics; it exits
// non-zero when any script fails.
var checkCmd = &cobra.Command{
	Use:   "check [flags] script_file...",
	Short: "Parse ZenScript files and report syntax errors.",
	Long: `Parse ZenScript files and report syntax errors.
	Each file is lexed and parsed independently; diagnostics carry
	line/column positions and a frame of the offending source line.`,
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		tokensOnly := getFlag(cmd, "tokens")
		failed := 0
		for _, path := range args {
			if err := checkFile(path, tokensOnly); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				failed++
			}
		}
		if failed > 0 {
			log.Debugf("%d of %d files failed", failed, len(args))
			os.Exit(1)
		}
	},
}

func checkFile(path string, tokensOnly bool) error {
	input, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	source := string(input)

	if tokensOnly {
		tokens, err := zen.Tokenize(source)
		if err != nil {
			return err
		}
		log.Debugf("%s: %d tokens", path, len(tokens))
		for _, tok := range tokens {
			fmt.Printf("%6d  %-14s %s\n", tok.Offset, tok.Kind, tok.Text)
		}
		return nil
	}

	unit, err := zen.ParseSource(source)
	if err != nil {
		return err
	}
	log.Debugf("%s: %d imports, %d functions, %d classes, %d statements",
		path, len(unit.Imports), len(unit.Functions), len(unit.Classes), len(unit.Statements))
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("tokens", false, "dump the token stream instead of parsing")
}
