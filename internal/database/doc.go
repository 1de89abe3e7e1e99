// Package database provides the connection pool for the destination
// PostgreSQL database.
package database
