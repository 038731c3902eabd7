package results

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id       TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	dataset      TEXT NOT NULL,
	setting      TEXT NOT NULL,
	method       TEXT NOT NULL,
	preset       TEXT,
	started_at   TEXT NOT NULL,
	finished_at  TEXT,
	mean_err     REAL,
	mean_err_5   REAL,
	config_json  TEXT
);

CREATE TABLE IF NOT EXISTS measurements (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id       TEXT NOT NULL,
	subgroup     INTEGER NOT NULL,
	cycle        INTEGER NOT NULL,
	domain       TEXT NOT NULL,
	severity     INTEGER NOT NULL,
	num_samples  INTEGER NOT NULL,
	err          REAL NOT NULL,
	created_at   TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE TABLE IF NOT EXISTS prototype_snapshots (
	version_id   TEXT PRIMARY KEY,
	parent_id    TEXT,
	run_id       TEXT NOT NULL,
	num_classes  INTEGER NOT NULL,
	protos       BLOB NOT NULL,
	created_at   TEXT NOT NULL,
	metrics_json TEXT,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE TABLE IF NOT EXISTS run_log (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id       TEXT NOT NULL,
	domain       TEXT NOT NULL,
	severity     INTEGER NOT NULL,
	decision     TEXT NOT NULL,
	reason       TEXT,
	signals_json TEXT,
	created_at   TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE TABLE IF NOT EXISTS policy_outcomes (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        TEXT NOT NULL,
	preset        TEXT NOT NULL,
	domain_family TEXT NOT NULL,
	err           REAL NOT NULL,
	samples       INTEGER NOT NULL,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// #endregion schema

// #region store-struct
// Store persists runs, per-stream measurements, prototype snapshots, step
// decisions, and policy outcomes in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion close

// #region runs
// CreateRun inserts a new run row.
func (s *Store) CreateRun(rec RunRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, name, dataset, setting, method, preset, started_at, config_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Name, rec.Dataset, rec.Setting, rec.Method, rec.Preset,
		rec.StartedAt.Format(time.RFC3339Nano), nullable(rec.ConfigJSON),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// FinishRun records the final aggregates of a completed run.
func (s *Store) FinishRun(runID string, meanErr float64, meanErr5 float64, hasErr5 bool) error {
	var err5Ptr interface{}
	if hasErr5 {
		err5Ptr = meanErr5
	}
	res, err := s.db.Exec(
		`UPDATE runs SET finished_at = ?, mean_err = ?, mean_err_5 = ? WHERE run_id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), meanErr, err5Ptr, runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("finish run: run %s not found", runID)
	}
	return nil
}

// GetRun retrieves a run by ID.
func (s *Store) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord
	var preset, finished, configJSON sql.NullString
	var started string
	var meanErr, meanErr5 sql.NullFloat64

	err := s.db.QueryRow(
		`SELECT run_id, name, dataset, setting, method, preset, started_at, finished_at,
		        mean_err, mean_err_5, config_json
		 FROM runs WHERE run_id = ?`, runID,
	).Scan(&rec.RunID, &rec.Name, &rec.Dataset, &rec.Setting, &rec.Method, &preset,
		&started, &finished, &meanErr, &meanErr5, &configJSON)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: %w", runID, err)
	}

	rec.Preset = preset.String
	rec.ConfigJSON = configJSON.String
	rec.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
	if finished.Valid {
		rec.FinishedAt, _ = time.Parse(time.RFC3339Nano, finished.String)
	}
	rec.MeanErr = meanErr.Float64
	if meanErr5.Valid {
		rec.MeanErr5 = meanErr5.Float64
		rec.HasErr5 = true
	}
	return rec, nil
}

// ListRuns returns the most recent runs.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id FROM runs ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan run id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	records := make([]RunRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := s.GetRun(id)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// #endregion runs

// #region measurements
// InsertMeasurement persists the final error of one stream.
func (s *Store) InsertMeasurement(m Measurement) error {
	_, err := s.db.Exec(
		`INSERT INTO measurements (run_id, subgroup, cycle, domain, severity, num_samples, err, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.RunID, m.Subgroup, m.Cycle, m.Domain, m.Severity, m.NumSamples, m.Err,
		m.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert measurement: %w", err)
	}
	return nil
}

// ListMeasurements returns a run's measurements in insertion order.
func (s *Store) ListMeasurements(runID string) ([]Measurement, error) {
	rows, err := s.db.Query(
		`SELECT run_id, subgroup, cycle, domain, severity, num_samples, err, created_at
		 FROM measurements WHERE run_id = ? ORDER BY id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	defer rows.Close()

	var out []Measurement
	for rows.Next() {
		var m Measurement
		var created string
		if err := rows.Scan(&m.RunID, &m.Subgroup, &m.Cycle, &m.Domain, &m.Severity,
			&m.NumSamples, &m.Err, &created); err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}
		m.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, m)
	}
	return out, rows.Err()
}

// #endregion measurements

// #region snapshots
// SaveSnapshot persists a prototype bank version.
func (s *Store) SaveSnapshot(snap ProtoSnapshot) error {
	if len(snap.Protos) == 0 {
		return fmt.Errorf("save snapshot: empty prototype matrix")
	}
	_, err := s.db.Exec(
		`INSERT INTO prototype_snapshots (version_id, parent_id, run_id, num_classes, protos, created_at, metrics_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		snap.VersionID, nullable(snap.ParentID), snap.RunID, len(snap.Protos[0]),
		encodeMatrix(snap.Protos), snap.CreatedAt.Format(time.RFC3339Nano),
		nullable(snap.MetricsJSON),
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// GetSnapshot retrieves a prototype snapshot by version ID.
func (s *Store) GetSnapshot(versionID string) (ProtoSnapshot, error) {
	var snap ProtoSnapshot
	var parentID, metricsJSON sql.NullString
	var blob []byte
	var numClasses int
	var created string

	err := s.db.QueryRow(
		`SELECT version_id, parent_id, run_id, num_classes, protos, created_at, metrics_json
		 FROM prototype_snapshots WHERE version_id = ?`, versionID,
	).Scan(&snap.VersionID, &parentID, &snap.RunID, &numClasses, &blob, &created, &metricsJSON)
	if err != nil {
		return ProtoSnapshot{}, fmt.Errorf("get snapshot %s: %w", versionID, err)
	}

	snap.ParentID = parentID.String
	snap.MetricsJSON = metricsJSON.String
	snap.Protos = decodeMatrix(blob, numClasses)
	snap.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	return snap, nil
}

// #endregion snapshots

// #region run-log
// LogStep appends one guarded adaptation decision to the run log.
func (s *Store) LogStep(l StepLog) error {
	_, err := s.db.Exec(
		`INSERT INTO run_log (run_id, domain, severity, decision, reason, signals_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		l.RunID, l.Domain, l.Severity, l.Decision, nullable(l.Reason),
		nullable(l.SignalsJSON), l.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log step: %w", err)
	}
	return nil
}

// CountDecisions tallies run-log decisions for a run, keyed by decision.
func (s *Store) CountDecisions(runID string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT decision, COUNT(*) FROM run_log WHERE run_id = ? GROUP BY decision`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("count decisions: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var decision string
		var n int
		if err := rows.Scan(&decision, &n); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		out[decision] = n
	}
	return out, rows.Err()
}

// #endregion run-log

// #region policy-outcomes
// RecordPolicyOutcome stores how a preset performed on a domain family.
func (s *Store) RecordPolicyOutcome(o PolicyOutcome) error {
	_, err := s.db.Exec(
		`INSERT INTO policy_outcomes (run_id, preset, domain_family, err, samples, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		o.RunID, o.Preset, o.DomainFamily, o.Err, o.Samples,
		o.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record policy outcome: %w", err)
	}
	return nil
}

// ListPolicyOutcomes returns all recorded outcomes for a domain family.
func (s *Store) ListPolicyOutcomes(domainFamily string) ([]PolicyOutcome, error) {
	rows, err := s.db.Query(
		`SELECT run_id, preset, domain_family, err, samples, created_at
		 FROM policy_outcomes WHERE domain_family = ? ORDER BY id`, domainFamily,
	)
	if err != nil {
		return nil, fmt.Errorf("list policy outcomes: %w", err)
	}
	defer rows.Close()

	var out []PolicyOutcome
	for rows.Next() {
		var o PolicyOutcome
		var created string
		if err := rows.Scan(&o.RunID, &o.Preset, &o.DomainFamily, &o.Err, &o.Samples, &created); err != nil {
			return nil, fmt.Errorf("scan policy outcome: %w", err)
		}
		o.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, o)
	}
	return out, rows.Err()
}

// #endregion policy-outcomes

// #region matrix-encoding
func encodeMatrix(m [][]float64) []byte {
	cols := len(m[0])
	buf := make([]byte, len(m)*cols*4)
	for i, row := range m {
		for j, f := range row {
			binary.LittleEndian.PutUint32(buf[(i*cols+j)*4:], math.Float32bits(float32(f)))
		}
	}
	return buf
}

func decodeMatrix(b []byte, cols int) [][]float64 {
	if cols <= 0 {
		return nil
	}
	rows := len(b) / (cols * 4)
	m := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		for j := 0; j < cols; j++ {
			row[j] = float64(math.Float32frombits(binary.LittleEndian.Uint32(b[(i*cols+j)*4:])))
		}
		m[i] = row
	}
	return m
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion matrix-encoding
