// Package scaffold creates new skill units from an embedded template. It
// powers the "skillhub create" command: a unit directory holding a SKILL.md
// whose frontmatter the indexer can read back.
package scaffold
