package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"trivia-app/internal/config"
	"trivia-app/internal/models"
	"trivia-app/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var columns = []string{"question", "answer", "category", "difficulty"}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}

	log.Info().Str("file", *file).Msg("starting import")

	records, err := parseCSV(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse CSV")
	}

	log.Info().Int("records", len(records)).Msg("parsed records")

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Ensure tables exist
	if err := repository.Migrate(cfg.DBSource); err != nil {
		log.Fatal().Err(err).Msg("cannot migrate db")
	}

	ctx := context.Background()

	// Connect to DB
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close(ctx)

	before, err := countQuestions(ctx, conn)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot count questions")
	}

	// Insert records
	if err := insertRecords(ctx, conn, records); err != nil {
		log.Fatal().Err(err).Msg("cannot insert records")
	}

	// Verify data
	if err := verifyImport(ctx, conn, before, len(records)); err != nil {
		log.Fatal().Err(err).Msg("cannot verify import")
	}

	log.Info().Int("records", len(records)).Msg("import finished")
}

func parseCSV(filePath string) ([]models.NewQuestion, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return parseQuestions(file)
}

// parseQuestions reads a CSV of question,answer,category,difficulty rows after
// a header line. Every row must pass the same validation as the add form.
func parseQuestions(r io.Reader) ([]models.NewQuestion, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(columns)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i, name := range columns {
		if !strings.EqualFold(strings.TrimSpace(header[i]), name) {
			return nil, fmt.Errorf("unexpected header %q, want %s", strings.Join(header, ","), strings.Join(columns, ","))
		}
	}

	var records []models.NewQuestion
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		category, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid category: %s", line, record[2])
		}
		difficulty, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid difficulty: %s", line, record[3])
		}

		q := models.NewQuestion{
			Question:   record[0],
			Answer:     record[1],
			Category:   category,
			Difficulty: difficulty,
		}
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		records = append(records, q)
	}

	return records, nil
}

func insertRecords(ctx context.Context, conn *pgx.Conn, records []models.NewQuestion) error {
	// Use CopyFrom for bulk insert
	_, err := conn.CopyFrom(
		ctx,
		pgx.Identifier{"questions"},
		columns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			r := records[i]
			return []any{r.Question, r.Answer, r.Category, r.Difficulty}, nil
		}),
	)
	return err
}

func countQuestions(ctx context.Context, conn *pgx.Conn) (int, error) {
	var count int
	if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM questions").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

func verifyImport(ctx context.Context, conn *pgx.Conn, before, expected int) error {
	after, err := countQuestions(ctx, conn)
	if err != nil {
		return err
	}

	if after-before != expected {
		return fmt.Errorf("record count mismatch: expected %d new, got %d", expected, after-before)
	}
	return nil
}
