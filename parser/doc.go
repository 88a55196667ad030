/*
Package parser reads Morse text into a morse.Sentence.

Morse text consists of the symbols '.' and '-', grouped into codes by
whitespace and into words by '/':

  ... --- ... / ... --- ...

Runs of whitespace count as a single separator, and whitespace around the
text is ignored. A slash always starts a new word, even if there is no
code before or after it; " / " thus yields two empty words. Any other
character is an error, reported at the word and code it occurs in.

The parser does not check codes against a symbol table, i.e. "........"
parses fine. Deciding if a code is known is up to the decoder.

Package parser provides a Scanner, which is compatible with the gorgo
tokenizer interface (github.com/npillmayer/gorgo/lr/scanner), and
function Parse, which uses it to create Sentences.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'morse.parser'.
func tracer() tracing.Trace {
	return tracing.Select("morse.parser")
}
