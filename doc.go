/*
Package lotsawa is a general context-free recognizer toolbox.

Lotsawa implements the Earley recognition algorithm, extended with
Joop Leo's right-recursion optimization and with Aycock/Horspool-style
precomputation of prediction closures over bit matrices. Package
structure is as follows:

■ grammar: Package grammar turns a symbolic rule list into an interned,
numbered grammar and precomputes the closure matrices driving the
recognizer's hot path.

■ earley: Package earley implements the chart recognizer on top of a
precomputed grammar, including the Leo items for right-recursive rules.

■ bitvec: Package bitvec provides the fixed-width bit vectors and bit
matrices (with Warshall transitive closure) used by grammar analysis.

■ scanner: Package scanner feeds input tokens to the recognizer; it
includes rune and word tokenizers and a lexmachine-based class lexer.

The base package defines the recognizer's token model: tokens are matched
against grammar terminals by their lexeme; spans record where a token
came from and are not read by the recognizer.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package lotsawa
