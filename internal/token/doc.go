// Package token defines the lexical side channel that accompanies a parsed tree.
// Invariants:
//   - Trivia carries only a kind and a Location; its text is always recovered by
//     slicing the original buffer, never rebuilt from the kind.
//   - Runs of ' '/'\t' form one TriviaWhiteSpace, each line terminator is a
//     TriviaNewline, a comment runs from '#' up to (not including) the terminator.
//   - Token and trivia locations of one Stream are disjoint and together cover
//     the whole buffer; Stream.Check verifies this.
package token
