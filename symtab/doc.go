/*
Package symtab implements symbol tables for Morse code.

A symbol table is a bidirectional dictionary between plaintext characters
and Morse codes (CodedChars). Symbol tables are built once, either from a
list of pairs or by a Builder, and are immutable thereafter. They may be
shared between goroutines without synchronization.

Uniqueness

Building a table will fail if a plaintext character is listed more than
once, or if a CodedChar is listed more than once. The only exception are
aliases: an alias is a plaintext character which encodes to the code of
another (canonical) entry, but is never the result of decoding.
The default ISO table uses this for the parentheses, where both '(' and
')' are sent as -.--.- and decoding yields '('.

  table, err := symtab.NewBuilder().
      Add('a', morse.MustCodedChar(".-")).
      Add('(', morse.MustCodedChar("-.--.-")).
      Alias(')', morse.MustCodedChar("-.--.-")).
      Build()

Loading Tables

Tables may be loaded from TOML or YAML files. A file lists entries,
optionally on top of the default table:

  base = "default"

  [[entry]]
  plain = "ß"
  code  = "...--.."

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

*/
package symtab

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'morse.symtab'.
func tracer() tracing.Trace {
	return tracing.Select("morse.symtab")
}
