package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func buildDSNFromEnv() (string, error) {
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	user := os.Getenv("POSTGRES_USER")
	pass := os.Getenv("POSTGRES_PASSWORD")
	dbname := os.Getenv("POSTGRES_DB")
	if dbname == "" {
		if url := os.Getenv("DATABASE_URL"); url != "" {
			return url, nil
		}
		return "", errors.Wrap(ErrConfig, "POSTGRES_DB not set; set env vars or DATABASE_URL")
	}
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "5432"
	}
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, pass, dbname)
	return dsn, nil
}

// fetchPopulation reads the population from the configured samples table.
func fetchPopulation(ctx context.Context, cfg Config) ([]int, error) {
	dsn, err := buildDSNFromEnv()
	if err != nil {
		return nil, err
	}
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "connect to postgres failed")
	}
	defer db.Close()

	values, err := fetchSamples(ctx, db, cfg.Table, cfg.Page, cfg.PerPage)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch samples from %s failed", cfg.Table)
	}
	log.WithFields(log.Fields{"source": sourcePostgres, "table": cfg.Table, "n": len(values)}).Debug("read postgres population")
	return values, nil
}

// samplesQuery builds the select for table; perPage 0 reads the whole table.
func samplesQuery(table string, perPage int) string {
	q := "SELECT value FROM " + pq.QuoteIdentifier(table) + " ORDER BY id ASC"
	if perPage > 0 {
		q += " LIMIT $1 OFFSET $2"
	}
	return q
}

func fetchSamples(ctx context.Context, db *sqlx.DB, table string, page, perPage int) ([]int, error) {
	var rows []sql.NullInt64
	q := samplesQuery(table, perPage)
	var err error
	if perPage > 0 {
		limit, offset := windowLimitOffset(page, perPage)
		err = db.SelectContext(ctx, &rows, q, limit, offset)
	} else {
		err = db.SelectContext(ctx, &rows, q)
	}
	if err != nil {
		return nil, err
	}

	values := make([]int, 0, len(rows))
	for _, v := range rows {
		if v.Valid {
			values = append(values, int(v.Int64))
		}
	}
	return values, nil
}

func windowLimitOffset(page, perPage int) (limit, offset int) {
	pp := normalizePositiveInt(int64(perPage), 1)
	pg := normalizePositiveInt(int64(page), 1)
	return pp, (pg - 1) * pp
}

func normalizePositiveInt(value int64, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return int(value)
}
