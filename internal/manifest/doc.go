// Package manifest reads the files a skill unit describes itself with: the
// frontmatter header of SKILL.md and the optional sibling package.json that
// overrides the unit's version.
package manifest
