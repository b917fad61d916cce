package app

import (
	"context"
	"fmt"

	"github.com/example/asreorder/internal/models"
	"github.com/example/asreorder/internal/ports/secondary"
)

// Ensure mockRecordClient implements the interface
var _ secondary.RecordClient = (*mockRecordClient)(nil)

// mockRecordClient implements secondary.RecordClient for testing.
type mockRecordClient struct {
	records map[string]*models.Record // key: "type/id"
	errs    map[string]error          // key: "type/id"

	setPositionCalls []positionCall
	setPositionErrs  map[int]error // by child id

	bulkCalls []bulkCall
	bulkErr   error
}

type positionCall struct {
	parentType string
	parentID   int
	childID    int
	position   int
}

type bulkCall struct {
	parentType string
	parentID   int
	childIDs   []int
	position   int
}

func newMockRecordClient() *mockRecordClient {
	return &mockRecordClient{
		records:         make(map[string]*models.Record),
		errs:            make(map[string]error),
		setPositionErrs: make(map[int]error),
	}
}

func recordKey(recordType string, id int) string {
	return fmt.Sprintf("%s/%d", recordType, id)
}

func (m *mockRecordClient) addRecord(recordType string, rec *models.Record) {
	m.records[recordKey(recordType, rec.ID)] = rec
}

func (m *mockRecordClient) failLookup(recordType string, id int, kind secondary.LookupErrorKind) {
	m.errs[recordKey(recordType, id)] = &secondary.LookupError{
		Kind:       kind,
		RecordType: recordType,
		ID:         id,
		Reason:     string(kind),
	}
}

func (m *mockRecordClient) Lookup(ctx context.Context, recordType string, id int) (*models.Record, error) {
	k := recordKey(recordType, id)
	if err, ok := m.errs[k]; ok {
		return nil, err
	}
	if rec, ok := m.records[k]; ok {
		return rec, nil
	}
	return nil, &secondary.LookupError{
		Kind:       secondary.KindNotFound,
		RecordType: recordType,
		ID:         id,
		Reason:     "not found",
	}
}

func (m *mockRecordClient) SetPosition(ctx context.Context, parentType string, parentID, childID, position int) error {
	m.setPositionCalls = append(m.setPositionCalls, positionCall{parentType, parentID, childID, position})
	return m.setPositionErrs[childID]
}

func (m *mockRecordClient) BulkInsert(ctx context.Context, parentType string, parentID int, childIDs []int, position int) error {
	ids := append([]int(nil), childIDs...)
	m.bulkCalls = append(m.bulkCalls, bulkCall{parentType, parentID, ids, position})
	return m.bulkErr
}

// Ensure mockRunRepository implements the interface
var _ secondary.RunRepository = (*mockRunRepository)(nil)

// mockRunRepository implements secondary.RunRepository for testing.
type mockRunRepository struct {
	runs      []*models.Run
	recordErr error
}

func (m *mockRunRepository) Record(ctx context.Context, run *models.Run) (int64, error) {
	if m.recordErr != nil {
		return 0, m.recordErr
	}
	m.runs = append(m.runs, run)
	return int64(len(m.runs)), nil
}

func (m *mockRunRepository) List(ctx context.Context, limit int) ([]*models.Run, error) {
	out := make([]*models.Run, 0, limit)
	for i := len(m.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.runs[i])
	}
	return out, nil
}

// Ensure mockSpreadsheetReader implements the interface
var _ secondary.SpreadsheetReader = (*mockSpreadsheetReader)(nil)

// mockSpreadsheetReader implements secondary.SpreadsheetReader for testing.
type mockSpreadsheetReader struct {
	table [][]string
	err   error
}

func (m *mockSpreadsheetReader) Read(path string) ([][]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.table, nil
}

func manifestOf(ids ...int) *models.OrderedManifest {
	m := &models.OrderedManifest{}
	for _, id := range ids {
		m.Records = append(m.Records, models.ChildRecord{ID: id, Status: models.ChildUnchecked})
	}
	return m
}
