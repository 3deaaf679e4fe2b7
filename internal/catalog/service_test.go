package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utmbiblio/library-service/internal/model"
	"github.com/utmbiblio/library-service/internal/seed"
)

// fakeSource records delete calls and can be made to fail or return
// canned rows.
type fakeSource struct {
	theses    []model.Thesis
	listErr   error
	deleteErr error
	deleted   []string
}

func (f *fakeSource) ListBooks(ctx context.Context, filter string) ([]model.Book, error) {
	return nil, f.listErr
}
func (f *fakeSource) ListCategories(ctx context.Context) ([]model.Category, error) {
	return nil, f.listErr
}
func (f *fakeSource) ListTheses(ctx context.Context) ([]model.Thesis, error) {
	return f.theses, f.listErr
}
func (f *fakeSource) ListLoans(ctx context.Context) ([]model.Loan, error) {
	return nil, f.listErr
}
func (f *fakeSource) DeleteThesis(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

// fakeSessions returns a fixed session state or error.
type fakeSessions struct {
	active bool
	err    error
	calls  int
}

func (f *fakeSessions) HasActiveSession(ctx context.Context, u *model.User) (bool, error) {
	f.calls++
	return f.active, f.err
}

const validUUID = "3f2c9b1e-8a4d-4c6f-9e2a-71b0c5d84f13"

var staffUser = &model.User{ID: 7, Email: "staff@utm.mx", Role: model.RoleLibrarian}

func TestIsBackendID(t *testing.T) {
	assert.True(t, IsBackendID(validUUID))
	assert.True(t, IsBackendID("00000000-0000-0000-0000-000000000000"))
	assert.False(t, IsBackendID("demo-tesis-1"))
	assert.False(t, IsBackendID(""))
	assert.False(t, IsBackendID("3f2c9b1e8a4d4c6f9e2a71b0c5d84f13"), "missing hyphens")
	assert.False(t, IsBackendID("urn:uuid:"+validUUID))
}

func TestFetchThesesFallsBackOnError(t *testing.T) {
	src := &fakeSource{listErr: errors.New("connection refused")}
	svc := NewService(src, &fakeSessions{}, nil, false)

	got := svc.FetchTheses(context.Background())
	require.Equal(t, seed.Theses(), got, "error recovers into the full seed sequence")
}

func TestFetchThesesFallsBackOnEmptyResult(t *testing.T) {
	src := &fakeSource{theses: []model.Thesis{}}
	svc := NewService(src, &fakeSessions{}, nil, false)

	got := svc.FetchTheses(context.Background())
	require.Equal(t, seed.Theses(), got, "zero rows is the bootstrap case")
}

func TestFetchThesesPassesThroughLiveRows(t *testing.T) {
	live := []model.Thesis{{ID: validUUID, Title: "Tesis real", Available: true}}
	svc := NewService(&fakeSource{theses: live}, &fakeSessions{}, nil, false)

	got := svc.FetchTheses(context.Background())
	require.Equal(t, live, got)
}

func TestDeleteThesisDemoIdentifierIsNoOp(t *testing.T) {
	src := &fakeSource{}
	svc := NewService(src, &fakeSessions{active: true}, nil, false)

	err := svc.DeleteThesis(context.Background(), "demo-tesis-1", staffUser)
	require.NoError(t, err)
	assert.Empty(t, src.deleted, "no backend delete for a demo identifier")
}

func TestDeleteThesisBackendDeleteExactlyOnce(t *testing.T) {
	src := &fakeSource{}
	svc := NewService(src, &fakeSessions{active: true}, nil, false)

	err := svc.DeleteThesis(context.Background(), validUUID, staffUser)
	require.NoError(t, err)
	require.Equal(t, []string{validUUID}, src.deleted)
}

func TestDeleteThesisSessionCheckPrecedesClassification(t *testing.T) {
	// No session and no bypass: even a demo identifier must hit the
	// sign-in gate, because the session check runs first.
	src := &fakeSource{}
	sessions := &fakeSessions{active: false}
	svc := NewService(src, sessions, nil, false)

	err := svc.DeleteThesis(context.Background(), "demo-tesis-1", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSignInRequired)
	assert.Contains(t, err.Error(), "failed to delete thesis")
	assert.Equal(t, 1, sessions.calls)
	assert.Empty(t, src.deleted)
}

func TestDeleteThesisDemoModeBypassesSignIn(t *testing.T) {
	src := &fakeSource{}
	svc := NewService(src, &fakeSessions{active: false}, nil, true)

	err := svc.DeleteThesis(context.Background(), "demo-tesis-1", nil)
	require.NoError(t, err, "demo mode grants the bypass to anonymous callers")
}

func TestDeleteThesisStaffBypassWithoutSession(t *testing.T) {
	src := &fakeSource{}
	svc := NewService(src, &fakeSessions{active: false}, nil, false)

	err := svc.DeleteThesis(context.Background(), validUUID, staffUser)
	require.NoError(t, err)
	require.Equal(t, []string{validUUID}, src.deleted)
}

func TestDeleteThesisSessionLookupErrorAborts(t *testing.T) {
	src := &fakeSource{}
	svc := NewService(src, &fakeSessions{err: errors.New("token table unreachable")}, nil, true)

	err := svc.DeleteThesis(context.Background(), validUUID, staffUser)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete thesis")
	assert.Contains(t, err.Error(), "authentication error")
	assert.Contains(t, err.Error(), "token table unreachable")
	assert.Empty(t, src.deleted)
}

func TestDeleteThesisWrapsBackendError(t *testing.T) {
	src := &fakeSource{deleteErr: errors.New("lock wait timeout")}
	svc := NewService(src, &fakeSessions{active: true}, nil, false)

	err := svc.DeleteThesis(context.Background(), validUUID, staffUser)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete thesis")
	assert.Contains(t, err.Error(), "lock wait timeout")
}
