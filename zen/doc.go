// Package zen implements a lexer and recursive-descent parser for the
// ZenScript language. A compilation unit is parsed into four ordered
// lists (imports, top-level functions, zenClass declarations, and
// loose statements) built from typed expression, statement, and type
// nodes:
//   - Literals for ints (decimal and 0x hex, with 32/64-bit width
//     detection), floats (with f/d suffixes), strings (single- or
//     double-quoted with an extended escape set), bools, null, lists,
//     and maps.
//   - A full operator-precedence expression grammar: assignment and
//     nine compound-assignment forms, ternary, logical, bitwise,
//     non-chaining comparison, in/has containment, string concatenation
//     via `~`, ranges via `..` or `to`, and postfix
//     member/index/call/cast/instanceof chains.
//   - `< ... >` bracket expressions captured as raw token runs for
//     exterior layers to interpret.
//   - Statements: blocks, var/val, if/else, for/in, while,
//     break/continue, return, and expression statements.
//   - Declarations: imports with aliases, functions, global/static
//     bindings, and zenClass bodies with fields, constructors, and
//     methods.
//
// Line comments `//` and block comments `/* */` are ignored. Parsing is
// pure and synchronous: no I/O, no shared state, safe for concurrent
// use on independent inputs. Errors are fail-fast; there is no
// statement-level recovery. Tokenize supports ranged and tolerant
// lexing for editor-style partial re-lexing of edited buffers.
package zen
