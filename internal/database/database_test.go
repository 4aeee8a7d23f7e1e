package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) (*Session, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing()

	session, err := Open(context.Background(), db, "localhost")
	require.NoError(t, err)
	return session, mock
}

func TestSessionBootstrap(t *testing.T) {
	session, mock := newSession(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("CREATE DATABASE IF NOT EXISTS `shop`")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("USE `shop`")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE t (id INT);\nINSERT INTO t VALUES (1);")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectClose()

	require.NoError(t, session.Bootstrap(ctx, "shop"))
	require.NoError(t, session.ImportSchema(ctx, "CREATE TABLE t (id INT);\nINSERT INTO t VALUES (1);"))
	require.NoError(t, session.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBootstrapStopsWhenCreateFails(t *testing.T) {
	session, mock := newSession(t)

	mock.ExpectExec("CREATE DATABASE").WillReturnError(errors.New("access denied"))

	require.Error(t, session.Bootstrap(context.Background(), "shop"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureDatabaseQuotesName(t *testing.T) {
	session, mock := newSession(t)

	mock.ExpectExec(regexp.QuoteMeta("CREATE DATABASE IF NOT EXISTS `a``b; DROP`")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, session.EnsureDatabase(context.Background(), "a`b; DROP"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureDatabaseFailure(t *testing.T) {
	session, mock := newSession(t)

	mock.ExpectExec("CREATE DATABASE").WillReturnError(errors.New("access denied"))

	err := session.EnsureDatabase(context.Background(), "shop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create database shop")
	assert.Contains(t, err.Error(), "access denied")
}

func TestUseDatabaseFailure(t *testing.T) {
	session, mock := newSession(t)

	mock.ExpectExec("USE").WillReturnError(errors.New("unknown database"))

	err := session.UseDatabase(context.Background(), "shop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown database")
}

func TestImportSchemaFailure(t *testing.T) {
	session, mock := newSession(t)

	mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("syntax error"))

	err := session.ImportSchema(context.Background(), "CREATE TABLE broken (")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to import schema")
}

func TestImportSchemaEmptyIsNoop(t *testing.T) {
	session, mock := newSession(t)

	require.NoError(t, session.ImportSchema(context.Background(), " \n\t"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNameRequired(t *testing.T) {
	session, _ := newSession(t)

	assert.Error(t, session.EnsureDatabase(context.Background(), ""))
	assert.Error(t, session.UseDatabase(context.Background(), ""))
}

func TestOpenPingFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	_, err = Open(context.Background(), db, "db1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to db1")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNilSession(t *testing.T) {
	var session *Session
	assert.Error(t, session.EnsureDatabase(context.Background(), "shop"))
	assert.NoError(t, session.Close())
}

func TestDSN(t *testing.T) {
	dsn := DSN(Params{Host: "db1", User: "svc", Password: "p@ss:word", Timeout: 10 * time.Second})

	cfg, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "svc", cfg.User)
	assert.Equal(t, "p@ss:word", cfg.Passwd)
	assert.Equal(t, "tcp", cfg.Net)
	assert.Equal(t, "db1:3306", cfg.Addr)
	assert.Equal(t, "", cfg.DBName)
	assert.True(t, cfg.MultiStatements)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestDSNUnixSocket(t *testing.T) {
	cfg, err := mysql.ParseDSN(DSN(Params{Host: "/var/run/mysqld/mysqld.sock", User: "root"}))
	require.NoError(t, err)
	assert.Equal(t, "unix", cfg.Net)
	assert.Equal(t, "/var/run/mysqld/mysqld.sock", cfg.Addr)
	assert.Equal(t, "root", cfg.User)
	assert.Empty(t, cfg.Passwd)
}

func TestAddress(t *testing.T) {
	tests := []struct {
		host    string
		network string
		addr    string
	}{
		{"", "tcp", "localhost:3306"},
		{"127.0.0.1", "tcp", "127.0.0.1:3306"},
		{"db.internal:3310", "tcp", "db.internal:3310"},
		{"::1", "tcp", "[::1]:3306"},
		{"[::1]:3307", "tcp", "[::1]:3307"},
		{"/tmp/mysql.sock", "unix", "/tmp/mysql.sock"},
	}
	for _, tt := range tests {
		network, addr := address(tt.host)
		assert.Equal(t, tt.network, network, tt.host)
		assert.Equal(t, tt.addr, addr, tt.host)
	}
}

func TestQuoteIdentifier(t *testing.T) {
	assert.Equal(t, "`property_app`", QuoteIdentifier("property_app"))
	assert.Equal(t, "`we``ird`", QuoteIdentifier("we`ird"))
}
