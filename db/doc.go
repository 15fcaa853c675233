// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the backing database and creates its schema.

# Connecting

Open selects the driver from the database type and pings the server:

	conn, err := db.Open(db.TypeSQLite, "file:pollbot.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite connections get WAL mode and a busy timeout unless the URL already
carries query parameters, and the pool is capped at one connection.

# Schema Creation

CreateSchema initializes the single key-value table:

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - kv_store: key (primary key), value (text), updated_at

Poll records and the poll id counter both live in kv_store; see package
store for the key layout.
*/
package db
