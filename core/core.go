// Package core implements the file-age evaluation pipeline: pattern
// resolution, the existence/permission gate, age sampling, threshold
// normalization, severity evaluation and aggregation into a single
// plugin result.
package core

// CheckName is the token prefixing every file-age output line.
const CheckName = "FILE_AGE"
