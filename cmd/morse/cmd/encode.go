package cmd

import (
	"github.com/npillmayer/morse/codec"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode plaintext to Morse code",
	Long: `Encodes plaintext to Morse code. Without arguments, plaintext is
read from standard input.

Examples:
  morse encode "sos"                # => ... --- ...
  morse encode --all "s^s"          # => ... ... plus an error report`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return translate(cmd, args, (*codec.Translator).Encode, (*codec.Translator).EncodeAll)
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [morse]",
	Short: "Decode Morse code to plaintext",
	Long: `Decodes Morse code to plaintext. Codes are separated by whitespace,
words by '/'. Without arguments, Morse code is read from standard input.

Examples:
  morse decode "... --- ..."        # => sos
  morse decode --all "... ....... ..."   # => s#s plus an error report`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return translate(cmd, args, (*codec.Translator).Decode, (*codec.Translator).DecodeAll)
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}
