// Package model defines the record type shared by the pipeline stages.
package model
