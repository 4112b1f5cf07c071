package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/ucd"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Compile-time interface verification.
var _ ucd.IndexService = (*IndexService)(nil)

// IndexService implements ucd.IndexService using SQLite.
type IndexService struct {
	db *DB
}

// NewIndexService creates a new IndexService.
func NewIndexService(db *DB) *IndexService {
	return &IndexService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content []byte) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64(content))
	return hex.EncodeToString(b)
}

// parsed holds the output of the concurrent parse phase.
type parsed struct {
	points []ucd.CodePoint
	blocks []ucd.Block
}

// Load parses the given files and replaces the index contents with the
// result in a single transaction.
func (s *IndexService) Load(ctx context.Context, files []*ucd.File) (*ucd.IndexStats, error) {
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if seen[f.Name] {
			return nil, ucd.Errorf(ucd.EINVALID, "duplicate data file %q", f.Name)
		}
		seen[f.Name] = true
	}

	// Parse files concurrently; each file writes its own result slot.
	var p parsed
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, f := range files {
		g.Go(func() error {
			switch f.Name {
			case ucd.UnicodeDataFile:
				points, err := ucd.ParseUnicodeData(f)
				if err != nil {
					return err
				}
				p.points = points
				return nil
			case ucd.BlocksFile:
				blocks, err := ucd.ParseBlocks(f)
				if err != nil {
					return err
				}
				p.blocks = blocks
				return nil
			default:
				return ucd.Errorf(ucd.EINVALID, "unsupported data file %q", f.Name)
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// A load replaces everything; codepoints and blocks cascade off files.
	if _, err := tx.ExecContext(ctx, `DELETE FROM files`); err != nil {
		return nil, err
	}

	stats := &ucd.IndexStats{
		CodePoints: len(p.points),
		Blocks:     len(p.blocks),
	}

	fileIDs := make(map[string]string, len(files))
	for _, f := range files {
		load := ucd.FileLoad{
			ID:          uuid.New().String(),
			Name:        f.Name,
			ContentHash: hashContent(f.Data),
			LoadedAt:    time.Now().UTC(),
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO files (id, name, content_hash, loaded_at)
			VALUES (?, ?, ?, ?)
		`, load.ID, load.Name, load.ContentHash, load.LoadedAt.Format(time.RFC3339)); err != nil {
			return nil, err
		}
		fileIDs[f.Name] = load.ID
		stats.Files = append(stats.Files, load)
	}

	if len(p.points) > 0 {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO codepoints (code, name, category, combining, bidi,
				decomposition, decimal_value, digit_value, numeric_value,
				mirrored, old_name, iso_comment, upper_code, lower_code,
				title_code, file_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return nil, err
		}
		defer stmt.Close()

		fileID := fileIDs[ucd.UnicodeDataFile]
		for _, cp := range p.points {
			decomposition := ""
			if cp.Decomposition != nil {
				decomposition = cp.Decomposition.String()
			}
			if _, err := stmt.ExecContext(ctx,
				int64(cp.Code), cp.Name, string(cp.Category), int64(cp.Combining),
				string(cp.Bidi), decomposition, cp.Decimal, cp.Digit,
				cp.Numeric.String(), cp.Mirrored, cp.OldName, cp.Comment,
				int64(cp.Upper), int64(cp.Lower), int64(cp.Title), fileID,
			); err != nil {
				return nil, err
			}
		}
	}

	if len(p.blocks) > 0 {
		fileID := fileIDs[ucd.BlocksFile]
		for _, b := range p.blocks {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO blocks (lo, hi, name, file_id)
				VALUES (?, ?, ?, ?)
			`, int64(b.Lo), int64(b.Hi), b.Name, fileID); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return stats, nil
}

const codePointColumns = `code, name, category, combining, bidi,
	decomposition, decimal_value, digit_value, numeric_value, mirrored,
	old_name, iso_comment, upper_code, lower_code, title_code`

// FindCodePointByCode retrieves a single codepoint record.
func (s *IndexService) FindCodePointByCode(ctx context.Context, code rune) (*ucd.CodePoint, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+codePointColumns+`
		FROM codepoints
		WHERE code = ?
	`, int64(code))

	cp, err := scanCodePoint(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ucd.Errorf(ucd.ENOTFOUND, "codepoint U+%04X not found in index", code)
	}
	if err != nil {
		return nil, err
	}
	return cp, nil
}

// FindCodePoints retrieves codepoint records matching the filter.
func (s *IndexService) FindCodePoints(ctx context.Context, filter ucd.CodePointFilter) ([]*ucd.CodePoint, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + codePointColumns + " FROM codepoints WHERE 1=1")

	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, string(*filter.Category))
	}
	if filter.Name != nil {
		query.WriteString(" AND name LIKE ?")
		args = append(args, "%"+*filter.Name+"%")
	}

	query.WriteString(" ORDER BY code ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []*ucd.CodePoint
	for rows.Next() {
		cp, err := scanCodePoint(rows.Scan)
		if err != nil {
			return nil, err
		}
		points = append(points, cp)
	}
	return points, rows.Err()
}

// FindBlocks retrieves all block records in ascending order.
func (s *IndexService) FindBlocks(ctx context.Context) ([]*ucd.Block, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT lo, hi, name
		FROM blocks
		ORDER BY lo ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocks []*ucd.Block
	for rows.Next() {
		var b ucd.Block
		var lo, hi int64
		if err := rows.Scan(&lo, &hi, &b.Name); err != nil {
			return nil, err
		}
		b.Lo, b.Hi = rune(lo), rune(hi)
		blocks = append(blocks, &b)
	}
	return blocks, rows.Err()
}

// Stats reports what is currently loaded.
func (s *IndexService) Stats(ctx context.Context) (*ucd.IndexStats, error) {
	stats := &ucd.IndexStats{}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM codepoints`).Scan(&stats.CodePoints); err != nil {
		return nil, err
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blocks`).Scan(&stats.Blocks); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, content_hash, loaded_at
		FROM files
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var load ucd.FileLoad
		var loadedAt string
		if err := rows.Scan(&load.ID, &load.Name, &load.ContentHash, &loadedAt); err != nil {
			return nil, err
		}
		load.LoadedAt, err = time.Parse(time.RFC3339, loadedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse loaded_at: %w", err)
		}
		stats.Files = append(stats.Files, load)
	}
	return stats, rows.Err()
}

// scanCodePoint reconstructs a CodePoint from a row using the shared
// column order. Decomposition and numeric values round-trip through their
// textual field forms.
func scanCodePoint(scan func(dest ...any) error) (*ucd.CodePoint, error) {
	var cp ucd.CodePoint
	var code, combining, upper, lower, title int64
	var category, bidi, decomposition, numeric string

	if err := scan(&code, &cp.Name, &category, &combining, &bidi,
		&decomposition, &cp.Decimal, &cp.Digit, &numeric, &cp.Mirrored,
		&cp.OldName, &cp.Comment, &upper, &lower, &title); err != nil {
		return nil, err
	}

	cp.Code = rune(code)
	cp.Category = ucd.Category(category)
	cp.Combining = uint8(combining)
	cp.Bidi = ucd.Bidi(bidi)
	cp.Upper, cp.Lower, cp.Title = rune(upper), rune(lower), rune(title)

	var err error
	if cp.Decomposition, err = ucd.ParseDecomposition(decomposition); err != nil {
		return nil, fmt.Errorf("failed to parse stored decomposition: %w", err)
	}
	if cp.Numeric, err = ucd.ParseNumeric(numeric); err != nil {
		return nil, fmt.Errorf("failed to parse stored numeric value: %w", err)
	}
	return &cp, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if
// values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
