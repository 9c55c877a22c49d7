// Package bulk applies label field values to many files from a CSV batch.
//
// The CSV format is fileId,labelId,fieldId,value with a mandatory header
// row. Rows are isolated from each other: a failing row is recorded in the
// summary and the batch keeps going.
package bulk
