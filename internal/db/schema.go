package db

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// WriteUpSQL writes the Up section of every migration, in order, so the
// schema can be applied by hand (e.g. in the Supabase SQL editor) where
// goose cannot connect.
func WriteUpSQL(w io.Writer) error {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}

	for _, name := range names {
		f, err := migrationsFS.Open(name)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", name, err)
		}

		_, err = fmt.Fprintf(w, "-- %s\n", strings.TrimPrefix(name, "migrations/"))
		if err == nil {
			err = copyUp(w, f)
		}
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}

func copyUp(w io.Writer, r io.Reader) error {
	up := false
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		switch {
		case strings.HasPrefix(line, "-- +goose Up"):
			up = true
			continue
		case strings.HasPrefix(line, "-- +goose Down"):
			up = false
			continue
		case strings.HasPrefix(line, "-- +goose"):
			continue
		}
		if up {
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return err
			}
		}
	}
	return s.Err()
}
