package framestore

import (
	"bytes"
	"compress/gzip"
	"database/sql"
	"fmt"
	"io"

	_ "modernc.org/sqlite" // SQLite driver
)

// Reader reads frames from a .boil archive.
type Reader struct {
	db   *sql.DB
	path string
}

// OpenReader opens an archive for reading.
func OpenReader(path string) (*Reader, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='frames'").Scan(&count)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to verify schema: %w", err)
	}
	if count == 0 {
		db.Close()
		return nil, fmt.Errorf("database does not contain a frames table")
	}

	return &Reader{
		db:   db,
		path: path,
	}, nil
}

// ReadFrame returns the decompressed PNG data for one frame.
func (r *Reader) ReadFrame(index int) ([]byte, error) {
	var compressed []byte
	err := r.db.QueryRow(
		"SELECT frame_data FROM frames WHERE frame_index=?",
		index,
	).Scan(&compressed)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("frame not found: %d", index)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query frame: %w", err)
	}

	data, err := gzipDecompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress frame %d: %w", index, err)
	}

	return data, nil
}

// FrameCount returns the number of frames actually stored.
func (r *Reader) FrameCount() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM frames").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count frames: %w", err)
	}
	return count, nil
}

// Metadata reads the archive metadata.
func (r *Reader) Metadata() (Metadata, error) {
	rows, err := r.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to query metadata: %w", err)
	}
	defer rows.Close()

	kv := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return Metadata{}, fmt.Errorf("failed to scan metadata row: %w", err)
		}
		kv[name] = value
	}
	if err := rows.Err(); err != nil {
		return Metadata{}, fmt.Errorf("failed to read metadata: %w", err)
	}

	return FromMap(kv)
}

// Close closes the database.
func (r *Reader) Close() error {
	return r.db.Close()
}

func gzipDecompress(data []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gr.Close()

	return io.ReadAll(gr)
}
