// Copyright (c) 2026 Kiji. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Architecture
//
// Every repository funnels its pgx errors through [Wrap]. The SQLSTATE
// inspection happens here and nowhere else, so handlers and services never
// see driver-specific error values.
package dberr

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/kiji/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// # Classification
//
//   - pgx.ErrNoRows                    -> 404 Not Found
//   - 22P02 invalid_text_representation -> 400 Bad Request (malformed identifier)
//   - 23502 not_null_violation          -> 400 Bad Request (missing required field)
//   - 23503 foreign_key_violation       -> 404, constraint-aware: a violated
//     author reference maps to the distinct "Username Does Not Exist" error
//   - anything else                     -> 500 Internal
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// Errors already classified upstream pass through untouched.
	if apperr.IsAppError(err) {
		return err
	}

	// 1. Empty result set mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(action)
	}

	// 2. SQLSTATE mapping
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case pgerrcode.InvalidTextRepresentation:
			return apperr.BadRequest()
		case pgerrcode.NotNullViolation:
			return apperr.BadRequest()
		case pgerrcode.ForeignKeyViolation:
			return wrapForeignKey(pgError, action)
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}

// wrapForeignKey distinguishes which reference was violated.
//
// A comment naming an unknown author is a different client mistake than a
// comment targeting a missing article, and the API contract reports them
// with different messages.
func wrapForeignKey(pgError *pgconn.PgError, action string) error {
	if strings.Contains(pgError.ConstraintName, "author") {
		return apperr.UsernameNotFound()
	}
	return apperr.NotFound(action)
}
