package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"caesar_cipher/internal/protocol/bruteforce"
	"caesar_cipher/internal/repository/report"
	"caesar_cipher/internal/service/recovery"

	"github.com/spf13/cobra"
)

// SampleCiphertext is cracked when no input is given.
const SampleCiphertext = "o3zR v..D0?yRA0R8FR8v47w0ER4.R1WdC!sLF5D"

func newCrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crack [ciphertext]",
		Short: "Try every key and save the decryption containing the marker",
		Long: `Decrypt the ciphertext with every key in ascending order and print
each candidate as "<key>: <text>". The first candidate containing the marker
(case-insensitive) is reported and written to the output file.

If --output is not given the path is read from standard input.`,
		RunE: runCrack,
	}

	cmd.Flags().StringP("text", "t", "", "Ciphertext (default: built-in sample)")
	cmd.Flags().StringP("marker", "m", bruteforce.DefaultMarker, "Substring that identifies the plaintext")
	cmd.Flags().StringP("output", "o", "", "Output file (prompted when empty)")
	return cmd
}

func runCrack(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	ciphertext, _ := cmd.Flags().GetString("text")
	if ciphertext == "" && len(args) > 0 {
		ciphertext = strings.Join(args, " ")
	}
	if ciphertext == "" {
		ciphertext = SampleCiphertext
	}

	marker, _ := cmd.Flags().GetString("marker")
	if marker == "" {
		return bruteforce.ErrEmptyMarker
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		var err error
		output, err = promptPath(cmd)
		if err != nil {
			return err
		}
	}
	if err := report.CheckTarget(output); err != nil {
		return err
	}

	r := recovery.NewRecoverer(nil)
	listing := bruteforce.Listing(out)
	for _, cand := range bruteforce.Candidates(r.Cipher(), ciphertext) {
		if err := listing(cand); err != nil {
			return err
		}
	}

	found, err := r.Recover(recovery.Request{
		Ciphertext: ciphertext,
		Marker:     marker,
		Output:     output,
	})
	if errors.Is(err, bruteforce.ErrKeyNotFound) {
		fmt.Fprintf(out, "\nKey not found: no candidate contains %q\n", marker)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nRecovered key: %d\nDecrypted message: %s\nSaved to %s\n", found.Key, found.Text, output)
	return nil
}

func promptPath(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), "Enter output file path: ")

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" && err != nil {
		return "", fmt.Errorf("read output path: %w", err)
	}
	return line, nil
}
