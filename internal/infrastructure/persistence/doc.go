// Package persistence provides the GORM-backed key-pair repository and the
// database connection helpers for SQLite and PostgreSQL.
package persistence
