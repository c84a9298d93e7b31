// Package tokens inserts a theme's design tokens into a project's stylesheet
// (Tailwind v4 @theme block) or Tailwind v3 configuration file.
//
// Neither file is parsed. The stylesheet merge looks for the leading block of
// @import lines; the configuration merge tracks extend and colors blocks by
// indentation and brace lines. Both merges detect an earlier insertion and
// return the input unchanged, so running them twice is safe.
package tokens
