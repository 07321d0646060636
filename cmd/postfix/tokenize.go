package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/postfix"
	"github.com/zephyrtronium/postfix/internal/tokenfmt"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] expr",
	Short: "Print the tokens of an expression",
	Long:  `Tokenize prints the postfix tokens of an expression, or its infix tokens with --infix.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().Bool("infix", false, "print tokens in source order without reordering")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	infix, _ := cmd.Flags().GetBool("infix")

	var seq postfix.Sequence
	if infix {
		seq = postfix.Tokenize(args[0])
	} else {
		seq = postfix.Transform(args[0])
	}
	return tokenfmt.Write(cmd.OutOrStdout(), format, seq)
}
