package keyv

import (
	"context"
	"database/sql"
	"errors"

	"bsprice-client/lib/keyv/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("lib/keyv")

type SqliteStore struct {
	db  *sql.DB
	qry *db.Queries
}

// Open opens (creating if needed) a durable store at the given path.
// ":memory:" works the way it does for sqlite. A libsql:// URL is
// accepted too, for keeping client state on a remote replica.
func Open(path string) (*SqliteStore, error) {
	driver := "sqlite"
	if len(path) > 9 && path[:9] == "libsql://" {
		driver = "libsql"
	}
	database, err := sql.Open(driver, path)
	if err != nil {
		return nil, err
	}
	_, err = database.Exec(db.Schema)
	if err != nil {
		database.Close()
		return nil, err
	}
	return &SqliteStore{
		db:  database,
		qry: db.New(database),
	}, nil
}

func (s *SqliteStore) Close() error {
	return s.db.Close()
}

func (s *SqliteStore) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()

	value, err := s.qry.GetValue(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read key")
		return "", false, err
	}
	return value, true, nil
}

func (s *SqliteStore) Set(ctx context.Context, key, value string) error {
	ctx, span := tracer.Start(ctx, "Set")
	defer span.End()

	err := s.qry.SetValue(ctx, db.SetValueParams{
		Key:   key,
		Value: value,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to write key")
		return err
	}
	return nil
}

func (s *SqliteStore) Delete(ctx context.Context, key string) error {
	ctx, span := tracer.Start(ctx, "Delete")
	defer span.End()

	err := s.qry.DeleteValue(ctx, key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to delete key")
		return err
	}
	return nil
}
