// Package drive wraps the Google Drive API for label-centric file access.
//
// It provides label-scoped file search with full pagination and shared-drive
// awareness, a recursive folder walk, and label value modification
// (apply/unset/remove) through the files.modifyLabels endpoint. Search
// results carry the raw label field values, decoded into the shapes the
// labelfield package understands.
package drive
