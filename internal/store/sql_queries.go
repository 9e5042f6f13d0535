// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const secretsTable = "secrets"

// SQLite uses "?" placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetSecretQuery(key string) (string, []any, error) {
	return sqlite.
		Select("value").
		From(secretsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildSetSecretQuery(key, value string) (string, []any, error) {
	return sqlite.
		Insert(secretsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

func buildRemoveSecretQuery(key string) (string, []any, error) {
	return sqlite.
		Delete(secretsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
