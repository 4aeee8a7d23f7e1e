// Package database bootstraps the application database over the MySQL protocol.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/conn-castle/propapp-install/internal/messages"
)

const defaultPort = "3306"

// Params identifies the server and account to connect with. No database is selected
// at connect time because it may not exist yet.
type Params struct {
	Host     string
	User     string
	Password string
	Timeout  time.Duration
}

// Connector opens sessions against a database server.
type Connector interface {
	Connect(ctx context.Context, p Params) (*Session, error)
}

// MySQLConnector connects with go-sql-driver/mysql.
type MySQLConnector struct{}

// Connect opens a pool for p and pins a single connection from it.
func (MySQLConnector) Connect(ctx context.Context, p Params) (*Session, error) {
	db, err := sql.Open("mysql", DSN(p))
	if err != nil {
		return nil, fmt.Errorf(messages.DatabaseOpenFailedFmt, p.Host, err)
	}
	session, err := Open(ctx, db, p.Host)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return session, nil
}

// Session is one server connection. Statements run on a single pinned connection
// because USE only affects the connection it runs on.
type Session struct {
	db   *sql.DB
	conn *sql.Conn
}

// Open pins a connection from db and verifies it with a ping. host is used in errors.
func Open(ctx context.Context, db *sql.DB, host string) (*Session, error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf(messages.DatabaseConnectFailedFmt, host, err)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf(messages.DatabaseConnectFailedFmt, host, err)
	}
	return &Session{db: db, conn: conn}, nil
}

// Bootstrap creates name when missing and selects it.
func (s *Session) Bootstrap(ctx context.Context, name string) error {
	if err := s.EnsureDatabase(ctx, name); err != nil {
		return err
	}
	return s.UseDatabase(ctx, name)
}

// EnsureDatabase creates name unless it already exists.
func (s *Session) EnsureDatabase(ctx context.Context, name string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if name == "" {
		return errors.New(messages.DatabaseNameRequired)
	}
	if _, err := s.conn.ExecContext(ctx, "CREATE DATABASE IF NOT EXISTS "+QuoteIdentifier(name)); err != nil {
		return fmt.Errorf(messages.DatabaseCreateFailedFmt, name, err)
	}
	return nil
}

// UseDatabase makes name the default database for later statements.
func (s *Session) UseDatabase(ctx context.Context, name string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if name == "" {
		return errors.New(messages.DatabaseNameRequired)
	}
	if _, err := s.conn.ExecContext(ctx, "USE "+QuoteIdentifier(name)); err != nil {
		return fmt.Errorf(messages.DatabaseUseFailedFmt, name, err)
	}
	return nil
}

// ImportSchema executes the schema as a single multi-statement batch.
// A schema with only whitespace is a no-op.
func (s *Session) ImportSchema(ctx context.Context, schema string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if strings.TrimSpace(schema) == "" {
		return nil
	}
	if _, err := s.conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf(messages.DatabaseImportFailedFmt, err)
	}
	return nil
}

// Close releases the pinned connection and the pool.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	var connErr error
	if s.conn != nil {
		connErr = s.conn.Close()
	}
	var dbErr error
	if s.db != nil {
		dbErr = s.db.Close()
	}
	return errors.Join(connErr, dbErr)
}

func (s *Session) ready() error {
	if s == nil || s.conn == nil {
		return errors.New(messages.DatabaseNotConnected)
	}
	return nil
}

// DSN builds a driver data source name for p. Multi-statement batches are enabled
// so schema files run unchanged.
func DSN(p Params) string {
	cfg := mysql.NewConfig()
	cfg.User = p.User
	cfg.Passwd = p.Password
	cfg.Net, cfg.Addr = address(p.Host)
	cfg.MultiStatements = true
	cfg.Timeout = p.Timeout
	return cfg.FormatDSN()
}

// address maps a host to a network and address. A path selects a unix socket;
// a host without a port gets the MySQL default port.
func address(host string) (string, string) {
	host = strings.TrimSpace(host)
	if strings.HasPrefix(host, "/") {
		return "unix", host
	}
	if host == "" {
		host = "localhost"
	}
	if _, _, err := net.SplitHostPort(host); err == nil {
		return "tcp", host
	}
	return "tcp", net.JoinHostPort(strings.Trim(host, "[]"), defaultPort)
}

// QuoteIdentifier wraps name in backticks, doubling any embedded backticks.
func QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
