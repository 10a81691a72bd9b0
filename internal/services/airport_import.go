package services

import (
	"context"
	"errors"
	"flight-analytics-service/internal/datfile"
	"flight-analytics-service/internal/domain"
	"flight-analytics-service/internal/platform/obs"
	"flight-analytics-service/internal/ports"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// DefaultImportBatchSize is the number of lines committed per transaction.
const DefaultImportBatchSize = 50

// AirportImporter loads the legacy airports file into the airport store.
// One importer may serve many runs, but runs must not overlap: duplicate
// tracking assumes a single writer.
type AirportImporter struct {
	Repo      ports.AirportRepository
	BatchSize int
}

func NewAirportImporter(repo ports.AirportRepository, batchSize int) *AirportImporter {
	if batchSize < 1 {
		batchSize = DefaultImportBatchSize
	}
	return &AirportImporter{Repo: repo, BatchSize: batchSize}
}

type codeSets struct {
	ids  map[int]struct{}
	icao map[string]struct{}
	iata map[string]struct{}
}

func newCodeSets() codeSets {
	return codeSets{
		ids:  map[int]struct{}{},
		icao: map[string]struct{}{},
		iata: map[string]struct{}{},
	}
}

func (s codeSets) add(a domain.Airport) {
	s.ids[a.ID] = struct{}{}
	if a.HasICAO() {
		s.icao[*a.ICAOCode] = struct{}{}
	}
	if a.HasIATA() {
		s.iata[*a.IATACode] = struct{}{}
	}
}

func (s codeSets) merge(o codeSets) {
	for id := range o.ids {
		s.ids[id] = struct{}{}
	}
	for c := range o.icao {
		s.icao[c] = struct{}{}
	}
	for c := range o.iata {
		s.iata[c] = struct{}{}
	}
}

// importRun holds duplicate-tracking state for exactly one Import call.
type importRun struct {
	persisted ports.CodeSet
	accepted  codeSets
}

// duplicateReason returns why a must be skipped, or "" when it is new.
// The id is checked first; ICAO takes precedence over IATA.
func (run *importRun) duplicateReason(a domain.Airport, pending codeSets) string {
	if inAny(a.ID, run.accepted.ids, pending.ids) {
		return fmt.Sprintf("Duplicate airport ID %d", a.ID)
	}

	switch {
	case a.HasICAO():
		code := *a.ICAOCode
		if inAny(code, run.persisted.ICAO, run.accepted.icao, pending.icao) {
			return fmt.Sprintf("Duplicate ICAO code '%s' for airport %d", code, a.ID)
		}
	case a.HasIATA():
		code := *a.IATACode
		if inAny(code, run.persisted.IATA, run.accepted.iata, pending.iata) {
			return fmt.Sprintf("Duplicate IATA code '%s' for airport %d", code, a.ID)
		}
	}
	return ""
}

func inAny[K comparable](k K, sets ...map[K]struct{}) bool {
	for _, s := range sets {
		if _, ok := s[k]; ok {
			return true
		}
	}
	return false
}

// Import parses content, validates and deduplicates every row and commits
// accepted airports in chunks of BatchSize lines. Bad rows and failed chunks
// are reported, never fatal; an error is returned only when content cannot be
// read, the persisted codes cannot be loaded or ctx is cancelled.
func (im *AirportImporter) Import(ctx context.Context, content io.Reader, filename string) (report domain.ImportReport, err error) {
	defer obs.Time(ctx, "import_airports")(&err)

	report = domain.ImportReport{
		RunID:    uuid.NewString(),
		Filename: filename,
		Errors:   []string{},
	}

	raw, err := io.ReadAll(content)
	if err != nil {
		return report, fmt.Errorf("import airports: read content: %w", err)
	}
	if !utf8.Valid(raw) {
		return report, fmt.Errorf("import airports: %w", ErrInvalidEncoding)
	}

	lines := datfile.SplitLines(string(raw))
	first := 0
	if len(lines) > 0 && datfile.IsHeader(lines[0]) {
		first = 1
	}
	report.TotalRecords = len(lines) - first
	if report.TotalRecords == 0 {
		return report, nil
	}

	persisted, err := im.Repo.ExistingCodes(ctx)
	if err != nil {
		return report, unavailable("import airports", "load existing codes", err)
	}
	run := &importRun{persisted: persisted, accepted: newCodeSets()}

	size := im.BatchSize
	if size < 1 {
		size = DefaultImportBatchSize
	}

	for lo := first; lo < len(lines); lo += size {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("import airports: chunk at line %d: %w", lo+1, err)
		}
		hi := min(lo+size, len(lines))
		im.importChunk(ctx, run, lines[lo:hi], lo, &report)
	}

	log.Printf(
		"run_id=%s file=%q total=%d inserted=%d duplicate=%d error=%d",
		report.RunID, filename, report.TotalRecords, report.RecordsInserted,
		report.SkippedDuplicate, report.SkippedError,
	)
	return report, nil
}

// importChunk handles lines[offset:offset+len(chunk)] and commits the accepted
// rows atomically. Dedup state only reaches run once the commit succeeds.
func (im *AirportImporter) importChunk(
	ctx context.Context,
	run *importRun,
	chunk []string,
	offset int,
	report *domain.ImportReport,
) {
	pending := newCodeSets()
	accepted := make([]domain.Airport, 0, len(chunk))

	for i, line := range chunk {
		lineNo := offset + i + 1

		a, err := datfile.ParseAirportLine(line)
		if err != nil {
			report.SkippedError++
			report.Errors = append(report.Errors, fmt.Sprintf("Line %d: %v", lineNo, err))
			obs.ImportRecords.WithLabelValues("error").Inc()
			continue
		}

		if problems := a.Validate(); len(problems) > 0 {
			report.SkippedError++
			for _, p := range problems {
				report.Errors = append(report.Errors, fmt.Sprintf("Line %d: airport %d: %s", lineNo, a.ID, p))
			}
			obs.ImportRecords.WithLabelValues("error").Inc()
			continue
		}

		if reason := run.duplicateReason(a, pending); reason != "" {
			report.SkippedDuplicate++
			report.Errors = append(report.Errors, fmt.Sprintf("Line %d: %s", lineNo, reason))
			obs.ImportRecords.WithLabelValues("duplicate").Inc()
			continue
		}

		pending.add(a)
		accepted = append(accepted, a)
	}

	if len(accepted) == 0 {
		return
	}

	if err := im.Repo.InsertBatch(ctx, accepted); err != nil {
		kind := "Database error"
		if errors.Is(err, ports.ErrConstraintViolation) {
			kind = "Database constraint violation"
		}
		report.SkippedError += len(accepted)
		report.Errors = append(report.Errors, fmt.Sprintf("%s for airports: %s", kind, formatIDs(accepted)))
		obs.ImportRecords.WithLabelValues("error").Add(float64(len(accepted)))
		obs.ImportChunks.WithLabelValues("rolled_back").Inc()
		log.Printf("run_id=%s chunk_start_line=%d rows=%d err=%v", report.RunID, offset+1, len(accepted), err)
		return
	}

	run.accepted.merge(pending)
	report.RecordsInserted += len(accepted)
	obs.ImportRecords.WithLabelValues("inserted").Add(float64(len(accepted)))
	obs.ImportChunks.WithLabelValues("committed").Inc()
}

func formatIDs(airports []domain.Airport) string {
	ids := make([]string, 0, len(airports))
	for _, a := range airports {
		ids = append(ids, strconv.Itoa(a.ID))
	}
	return "[" + strings.Join(ids, ", ") + "]"
}
