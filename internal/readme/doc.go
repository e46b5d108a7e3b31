// Package readme renders the catalog README from a registry snapshot. The
// document is produced from an embedded template: an overview, a summary
// table, per-category details and the contributing guide.
package readme
