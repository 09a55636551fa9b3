// Package publish copies a built gallery to a publish target, either a
// local directory or an S3 bucket.
package publish
