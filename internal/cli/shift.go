package cli

import (
	"errors"
	"fmt"

	"caesar_cipher/internal/cryptographic/caesar"
	"caesar_cipher/internal/utils/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newShiftCmd(decrypt bool) *cobra.Command {
	use, short := "encrypt", "Encrypt text with a shift key"
	if decrypt {
		use, short = "decrypt", "Decrypt text with a shift key"
	}

	cmd := &cobra.Command{
		Use:   use + " [text]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, ok, err := readInput(cmd, args)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			if !ok {
				return errors.New("no input: use --text, an argument or stdin")
			}

			key, _ := cmd.Flags().GetInt("key")
			c := caesar.New(nil)
			log.Debug(use, zap.Int("key", key), zap.Int("normalized", c.Normalize(key)))

			var out string
			if decrypt {
				out = c.Decrypt(text, key)
			} else {
				out = c.Encrypt(text, key)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringP("text", "t", "", "Text to transform")
	cmd.Flags().IntP("key", "k", 0, "Shift key (any integer)")
	cmd.MarkFlagRequired("key")
	return cmd
}
