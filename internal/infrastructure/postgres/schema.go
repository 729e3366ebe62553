package postgres

import (
	"context"
	"fmt"
)

// DDL idempotente: se ejecuta en cada arranque antes de aceptar tráfico.
// Sentencias separadas porque el protocolo extendido de pgx no acepta
// varias en un mismo Exec.
// company guarda '' cuando no se informa, así los filtros LIKE no descartan filas por NULL.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user'
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		phone TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		user_id BIGINT NOT NULL REFERENCES users (id)
	)`,
}

// EnsureSchema crea las tablas si no existen. Un fallo aquí debe abortar el proceso.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}
