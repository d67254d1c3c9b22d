// Copyright (c) 2026 Kiji. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kiji/internal/platform/apperr"
	"github.com/taibuivan/kiji/internal/platform/dberr"
)

/*
TestWrap_Classification verifies the SQLSTATE to AppError mapping table.
*/
func TestWrap_Classification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			"no_rows_is_not_found",
			pgx.ErrNoRows,
			http.StatusNotFound,
			"Not Found",
		},
		{
			"invalid_text_representation_is_bad_request",
			&pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation},
			http.StatusBadRequest,
			"Bad Request",
		},
		{
			"not_null_violation_is_bad_request",
			&pgconn.PgError{Code: pgerrcode.NotNullViolation},
			http.StatusBadRequest,
			"Bad Request",
		},
		{
			"author_fk_violation_is_username_not_found",
			&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "comments_author_fkey"},
			http.StatusNotFound,
			"Username Does Not Exist",
		},
		{
			"article_fk_violation_is_not_found",
			&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "comments_article_id_fkey"},
			http.StatusNotFound,
			"Not Found",
		},
		{
			"unknown_error_is_internal",
			errors.New("connection reset"),
			http.StatusInternalServerError,
			"Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "Article")

			ae := apperr.As(wrapped)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantStatus, ae.HTTPStatus)
			assert.Equal(t, tt.wantMsg, ae.Message)
		})
	}
}

/*
TestWrap_PassThrough ensures nil and pre-classified errors are untouched.
*/
func TestWrap_PassThrough(t *testing.T) {
	assert.Nil(t, dberr.Wrap(nil, "Article"))

	already := apperr.UsernameNotFound()
	assert.Same(t, already, dberr.Wrap(already, "Comment").(*apperr.AppError))
}
