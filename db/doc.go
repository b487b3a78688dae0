// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db holds the optional submission journal.

The sheet stays the source of truth. The journal is an append-only audit log
written after every successful submit, so whoever runs the sign-up can see who changed what
and when even after a row has been overwritten.

# Connecting

Open picks the driver from the configured type:

	conn, err := db.Open("sqlite", "file:journal.db")   // modernc.org/sqlite
	conn, err := db.Open("postgres", "postgres://...")  // github.com/lib/pq

SQLite connections are limited to one open connection.

# Schema Creation

CreateSchema initializes the submission table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and indexes.

# Journal

	journal := db.NewJournal(conn)
	sub, err := journal.Record(entry)
	recent, err := journal.Recent(50)

Recent returns newest first with a humanized submitted_ago field.
*/
package db
