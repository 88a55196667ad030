/*
Package morse is about translating text to and from International Morse Code.

Description

From ITU-R M.1677-1:

The International Morse code is composed of dots and dashes. A dash is equal
to three dots. The space between the signals forming the same letter is
equal to one dot. The space between two letters is equal to three dots.
The space between two words is equal to seven dots.

[…]

This module does not deal with timing. Morse code is represented as text,
using '.' for a dot and '-' for a dash. Letters are separated by whitespace,
and words by a slash surrounded by single spaces:

   - . ... - / ... --- -- . / .-- --- .-. -.. ...

Contents

Base package morse provides the data model shared by the sub-packages:
Symbols, CodedChars (the code of a single plaintext character), Words and
Sentences. Each of them knows how to render itself to canonical Morse text.
Base package morse furthermore defines the located error types which all
sub-packages return. Errors carry a Position, i.e. the word and character
index at which translation failed.

The symbol table, i.e. the dictionary between plaintext characters and
CodedChars, lives in sub-package symtab. Sub-package parser reads Morse text
into a Sentence. Sub-package codec puts everything together and offers
encoding of plaintext and decoding of Morse text.

Typical Usage

  ciphertext, err := codec.Encode("sos")       // => "... --- ..."
  plaintext, err := codec.Decode("... --- ...") // => "sos"

Errors

Translation stops at the first error encountered, scanning words from left
to right and characters within words from left to right. Positions are
0-based internally, but are reported 1-based in error messages:

  invalid character '^' at position (word 2, char 2)

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

*/
package morse

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Separators used when rendering Morse text.
const (
	CharSeparator = " "
	WordSeparator = " / "
)
