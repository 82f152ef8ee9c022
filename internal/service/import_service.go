package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"crane-recon/internal/domain"
	"crane-recon/internal/parser"
	"crane-recon/internal/repository"
	"crane-recon/pkg/logger"
)

// ImportStage is the step an import session has reached
type ImportStage string

const (
	StageMapping ImportStage = "mapping"
	StagePreview ImportStage = "preview"
	// StageCommitting marks a session whose batch is being persisted
	StageCommitting ImportStage = "committing"
)

const sampleSize = 5

// ImportSession is an uploaded statement awaiting mapping, preview and commit.
// Sessions live in memory only and expire after the configured TTL.
type ImportSession struct {
	ID        string               `json:"id"`
	FileName  string               `json:"file_name"`
	Headers   []string             `json:"headers"`
	Sample    [][]string           `json:"sample"`
	TotalRows int                  `json:"total_rows"`
	Mapping   domain.ColumnMapping `json:"mapping"`
	Preview   *parser.Preview      `json:"preview,omitempty"`
	Stage     ImportStage          `json:"stage"`
	CreatedAt time.Time            `json:"created_at"`

	rows    []parser.Row
	columns int
}

type ImportService interface {
	Upload(fileName string, r io.Reader) (*ImportSession, error)
	Get(id string) (*ImportSession, error)
	UpdateMapping(id string, mapping domain.ColumnMapping) (*ImportSession, error)
	Preview(id string) (*ImportSession, error)
	Commit(ctx context.Context, id, bankName string) (*domain.ImportBatch, error)
	Discard(id string) error
	ListBatches(ctx context.Context, limit int) ([]domain.ImportBatch, error)
	GetBatch(ctx context.Context, id string) (*domain.ImportBatch, error)
}

type importService struct {
	repo     repository.ImportRepository
	sessions *cache.Cache
	now      func() time.Time

	// mu serializes session read-modify-write so a commit claim is exclusive
	mu sync.Mutex
}

func NewImportService(repo repository.ImportRepository, sessionTTL time.Duration) ImportService {
	return &importService{
		repo:     repo,
		sessions: cache.New(sessionTTL, sessionTTL*2),
		now:      time.Now,
	}
}

// Upload reads the statement and opens a session with the detected mapping
func (s *importService) Upload(fileName string, r io.Reader) (*ImportSession, error) {
	sheet, err := parser.ReadWorkbook(fileName, r)
	if err != nil {
		return nil, err
	}

	session := ImportSession{
		ID:        uuid.New().String(),
		FileName:  fileName,
		Headers:   sheet.Headers,
		Sample:    sample(sheet.Rows),
		TotalRows: len(sheet.Rows),
		Mapping:   parser.DetectMapping(sheet.Headers),
		Stage:     StageMapping,
		CreatedAt: s.now(),
		rows:      sheet.Rows,
		columns:   sheet.ColumnCount(),
	}
	s.save(session)

	logger.GetLogger().WithFields(logrus.Fields{
		"import_id": session.ID,
		"file":      fileName,
		"rows":      session.TotalRows,
	}).Info("Statement uploaded")

	return session.copy(), nil
}

func (s *importService) Get(id string) (*ImportSession, error) {
	session, err := s.load(id)
	if err != nil {
		return nil, err
	}
	return session.copy(), nil
}

// UpdateMapping replaces the mapping and drops any preview built on the old one
func (s *importService) UpdateMapping(id string, mapping domain.ColumnMapping) (*ImportSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.loadEditable(id)
	if err != nil {
		return nil, err
	}
	if err := parser.ValidateMapping(mapping, session.columns); err != nil {
		return nil, err
	}

	session.Mapping = mapping.Clone()
	session.Preview = nil
	session.Stage = StageMapping
	s.save(session)

	return session.copy(), nil
}

// Preview parses every row with the current mapping
func (s *importService) Preview(id string) (*ImportSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.loadEditable(id)
	if err != nil {
		return nil, err
	}
	if !session.Mapping.Complete() {
		return nil, domain.ErrMappingIncomplete
	}

	preview := parser.NewPreview(parser.ParseRows(session.rows, session.Mapping))
	session.Preview = &preview
	session.Stage = StagePreview
	s.save(session)

	logger.GetLogger().WithFields(logrus.Fields{
		"import_id": id,
		"valid":     preview.ValidCount,
		"invalid":   preview.InvalidCount,
	}).Info("Import preview built")

	return session.copy(), nil
}

// Commit persists the valid rows of the preview as one batch. The session
// is claimed first, so a concurrent second commit gets ErrConflict. The claim
// is released when persistence fails so the commit can be retried.
func (s *importService) Commit(ctx context.Context, id, bankName string) (*domain.ImportBatch, error) {
	session, err := s.claim(id)
	if err != nil {
		return nil, err
	}

	payloads := parser.BuildPayloads(session.Preview.Rows, bankName)
	batch := &domain.ImportBatch{
		FileName:    session.FileName,
		TotalRows:   len(session.Preview.Rows),
		ValidRows:   session.Preview.ValidCount,
		InvalidRows: session.Preview.InvalidCount,
	}
	if len(payloads) > 0 {
		batch.BankName = payloads[0].BankName
	}

	if err := s.repo.CreateBatch(ctx, batch, payloads); err != nil {
		s.release(session)
		logger.GetLogger().WithError(err).WithField("import_id", id).Warn("Import commit failed, session kept")
		return nil, domain.Persistence("create import batch", err)
	}

	s.mu.Lock()
	s.sessions.Delete(id)
	s.mu.Unlock()

	logger.GetLogger().WithFields(logrus.Fields{
		"import_id": id,
		"batch_id":  batch.ID,
		"imported":  len(payloads),
	}).Info("Statement imported")

	return batch, nil
}

func (s *importService) Discard(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.loadEditable(id); err != nil {
		return err
	}
	s.sessions.Delete(id)
	return nil
}

func (s *importService) ListBatches(ctx context.Context, limit int) ([]domain.ImportBatch, error) {
	if limit <= 0 {
		limit = 50
	}
	batches, err := s.repo.ListBatches(ctx, limit)
	if err != nil {
		return nil, domain.Persistence("list import batches", err)
	}
	return batches, nil
}

func (s *importService) GetBatch(ctx context.Context, id string) (*domain.ImportBatch, error) {
	batch, err := s.repo.GetBatch(ctx, id)
	if err != nil {
		return nil, domain.Persistence("get import batch", err)
	}
	return batch, nil
}

func (s *importService) load(id string) (ImportSession, error) {
	v, ok := s.sessions.Get(id)
	if !ok {
		return ImportSession{}, fmt.Errorf("import %s: %w", id, domain.ErrNotFound)
	}
	return v.(ImportSession), nil
}

// loadEditable loads a session that no commit currently holds. Callers hold mu.
func (s *importService) loadEditable(id string) (ImportSession, error) {
	session, err := s.load(id)
	if err != nil {
		return ImportSession{}, err
	}
	if session.Stage == StageCommitting {
		return ImportSession{}, fmt.Errorf("import %s is being committed: %w", id, domain.ErrConflict)
	}
	return session, nil
}

// claim moves a previewed session to StageCommitting
func (s *importService) claim(id string) (ImportSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.loadEditable(id)
	if err != nil {
		return ImportSession{}, err
	}
	if session.Preview == nil {
		return ImportSession{}, fmt.Errorf("import %s has no preview: %w", id, domain.ErrConflict)
	}
	if session.Preview.ValidCount == 0 {
		return ImportSession{}, domain.ErrNothingToImport
	}

	session.Stage = StageCommitting
	s.save(session)
	return session, nil
}

// release returns a claimed session to StagePreview after a failed commit
func (s *importService) release(session ImportSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.Stage = StagePreview
	s.save(session)
}

// save stores the session by value; callers never share a stored session
func (s *importService) save(session ImportSession) {
	s.sessions.Set(session.ID, session, cache.DefaultExpiration)
}

func (s ImportSession) copy() *ImportSession {
	s.Mapping = s.Mapping.Clone()
	return &s
}

func sample(rows []parser.Row) [][]string {
	n := len(rows)
	if n > sampleSize {
		n = sampleSize
	}
	out := make([][]string, n)
	for i := 0; i < n; i++ {
		out[i] = rows[i].Cells
	}
	return out
}
