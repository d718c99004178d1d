package repository

import _ "embed"

// Schema DDL applied by safe-migrate and by the service when DB_MIGRATE=true
//
//go:embed schema.sql
var Schema string
