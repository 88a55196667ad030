/*
Package codec translates plaintext to Morse code and back.

Typical Usage

Clients either use the package level functions, which operate on the
default ISO symbol table, or create a Translator for a table of their own.

  ciphertext, err := codec.Encode("SOS")   // => "... --- ..."

  table, err := symtab.Load("german.toml")
  tr := codec.New(table)
  plaintext, err := tr.Decode("... --- ...")

Encoding

Plaintext is lowercased (the default symbol table contains lowercase
letters only) and split into words at runs of whitespace. Every character of every word is then looked up
in the symbol table. Encoding fails at the first character without a Morse
code, reporting the word and character position:

  invalid character '^' at position (word 2, char 2)

Decomposed characters, e.g. 'e' followed by a combining accent, are
rejected at the combining mark unless the Translator is created with
WithNormalization.

Lowercasing is Unicode-aware. By default it is language-neutral; clients
may choose locale-specific rules with a Casing, e.g. derived from the user
environment.

Decoding

Morse text is parsed by package parser, then every code is looked up in the
symbol table. Decoding fails at the first code not in the table:

  invalid morse sequence [..........] at position (word 1, char 1)

Reporting All Errors

Encode and Decode stop at the first error. EncodeAll and DecodeAll translate
as much as possible and return every error found. Unknown codes decode to
'#', unknown plaintext characters are skipped.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

*/
package codec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'morse.codec'.
func tracer() tracing.Trace {
	return tracing.Select("morse.codec")
}
