// Package cli provides the caesar command line.
package cli

import (
	"io"
	"os"
	"strings"

	"caesar_cipher/internal/utils/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// NewRootCmd builds a fresh command tree, so tests can run it repeatedly.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "caesar",
		Short: "Caesar shift cipher with brute-force key recovery",
		Long: `Encrypt and decrypt text with a Caesar shift over the alphabet
  ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz1234567890 !?.
and recover an unknown key by trying every shift.

  caesar encrypt --key 5 --text "Hello World"
  caesar decrypt --key 5 --text "MjqqtBbtwqi"
  caesar crack --text "o3zR v..D0?yRA0R8FR8v47w0ER4.R1WdC!sLF5D" --output result.txt`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupVerbose(cmd)
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	root.AddCommand(newShiftCmd(false), newShiftCmd(true), newCrackCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

func setupVerbose(cmd *cobra.Command) {
	level := zapcore.WarnLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return
	}
	log.SetLogger(l)
}

// readInput returns --text, then the joined arguments, then piped stdin.
// An explicit empty --text or empty piped stdin is an empty message; only an
// interactive stdin with nothing else given counts as missing input.
func readInput(cmd *cobra.Command, args []string) (string, bool, error) {
	if cmd.Flags().Changed("text") {
		text, _ := cmd.Flags().GetString("text")
		return text, true, nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), true, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", false, nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", false, err
	}
	return strings.TrimRight(string(data), "\r\n"), true, nil
}
