// Package registry builds the skill hub catalog. It scans a directory of skill
// units, turns each unit's frontmatter into a normalized Record (display
// name, truncated description, category, tags), assembles the sorted
// Registry snapshot, diffs snapshots, and persists them as index.json.
package registry
