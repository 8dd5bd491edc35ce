// Package glob implements the path-pattern dialect used by configuration
// fragments.
//
// Patterns are matched against forward-slash paths relative to a configured
// root, regardless of the host separator:
//
//	**        any number of path segments, including zero
//	*         any run of characters within one segment (leading dots included)
//	{a,b}     alternation
//	[abc]     character class
//	!pattern  negation (ignore lists only)
//
// Backslashes are not part of the dialect; a pattern containing one is
// rejected rather than guessed at.
//
// Ignore lists follow conventional ignore-file semantics: patterns are
// evaluated in declaration order, the last matching pattern wins, and a
// negated pattern re-includes what an earlier pattern excluded. Decisions are
// hierarchical: the verdict for a directory is inherited by everything below
// it unless a deeper pattern matches explicitly.
package glob
