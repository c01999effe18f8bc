package search

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/charlenopires/dartls-mcp/internal/results"
	"github.com/charlenopires/dartls-mcp/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDocument maps any offset to a fixed range
type fakeDocument struct {
	path string
}

func (d *fakeDocument) Path() string {
	return d.path
}

func (d *fakeDocument) Range(offset, length int) types.Range {
	return types.Range{
		Start: types.Position{Line: offset, Character: 0},
		End:   types.Position{Line: offset, Character: length},
	}
}

// fakeOpener counts opens and can be told to fail
type fakeOpener struct {
	err       error
	callCount int
}

func (f *fakeOpener) Open(ctx context.Context, path string) (Document, error) {
	f.callCount++
	if f.err != nil {
		return nil, f.err
	}
	return &fakeDocument{path: path}, nil
}

func deferredEntry() *SymbolEntry {
	return &SymbolEntry{
		Name:      "MyClass.doThing(int x)",
		Container: "lib/my_class.dart",
		Kind:      results.SymbolKindMethod,
		deferred:  &DeferredLocation{File: "/ws/lib/my_class.dart", Offset: 5, Length: 7},
	}
}

func TestResolver_Resolve(t *testing.T) {
	opener := &fakeOpener{}
	resolver := NewResolver(opener)
	entry := deferredEntry()

	location, err := resolver.Resolve(context.Background(), entry)

	require.NoError(t, err)
	require.NotNil(t, location)
	assert.Equal(t, "/ws/lib/my_class.dart", location.Document.Path())
	assert.Equal(t, types.Position{Line: 5, Character: 0}, location.Range.Start)
	assert.Equal(t, types.Position{Line: 5, Character: 7}, location.Range.End)

	// The entry transitioned to the resolved state
	_, stillDeferred := entry.Deferred()
	assert.False(t, stillDeferred)
	resolved, ok := entry.Resolved()
	require.True(t, ok)
	assert.Same(t, location, resolved)
}

func TestResolver_Resolve_IsIdempotent(t *testing.T) {
	opener := &fakeOpener{}
	resolver := NewResolver(opener)
	entry := deferredEntry()

	first, err := resolver.Resolve(context.Background(), entry)
	require.NoError(t, err)

	second, err := resolver.Resolve(context.Background(), entry)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, opener.callCount, "repeat resolution must not reopen the document")
}

func TestResolver_Resolve_OpenFailure(t *testing.T) {
	opener := &fakeOpener{err: fs.ErrNotExist}
	resolver := NewResolver(opener)
	entry := deferredEntry()

	location, err := resolver.Resolve(context.Background(), entry)

	require.Error(t, err)
	assert.Nil(t, location)

	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "/ws/lib/my_class.dart", resErr.File)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	// The entry stays presentable and still deferred
	assert.Equal(t, "MyClass.doThing(int x)", entry.Name)
	assert.Equal(t, "lib/my_class.dart", entry.Container)
	_, stillDeferred := entry.Deferred()
	assert.True(t, stillDeferred)
}

func TestResolver_Resolve_ForeignEntryIsNoOp(t *testing.T) {
	opener := &fakeOpener{}
	resolver := NewResolver(opener)
	entry := &SymbolEntry{Name: "NotOurs"}

	location, err := resolver.Resolve(context.Background(), entry)

	assert.NoError(t, err)
	assert.Nil(t, location)
	assert.Equal(t, 0, opener.callCount)
}

func TestResolver_Resolve_CancelledBeforeAttach(t *testing.T) {
	opener := &fakeOpener{}
	resolver := NewResolver(opener)
	entry := deferredEntry()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	location, err := resolver.Resolve(ctx, entry)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, location)

	_, stillDeferred := entry.Deferred()
	assert.True(t, stillDeferred, "no partial location may be attached after cancellation")
}

func TestResolver_Resolve_IndependentEntries(t *testing.T) {
	opener := &fakeOpener{}
	resolver := NewResolver(opener)

	a := deferredEntry()
	b := &SymbolEntry{
		Name:     "other",
		Kind:     results.SymbolKindFunction,
		deferred: &DeferredLocation{File: "/ws/lib/other.dart", Offset: 1, Length: 2},
	}

	locA, err := resolver.Resolve(context.Background(), a)
	require.NoError(t, err)
	locB, err := resolver.Resolve(context.Background(), b)
	require.NoError(t, err)

	assert.Equal(t, "/ws/lib/my_class.dart", locA.Document.Path())
	assert.Equal(t, "/ws/lib/other.dart", locB.Document.Path())
	assert.Equal(t, 2, opener.callCount)
}
