// Package sheets wraps the Google Sheets API for the expiration report.
//
// The report lives on a named sheet inside an existing spreadsheet and is
// fully replaced on every write, so repeated runs converge on the same
// content. The Processed column sits next to the report columns but is only
// ever touched through MarkProcessed, never by a report write.
package sheets
