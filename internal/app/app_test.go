package app_test

import (
	"context"
	"errors"
	"iter"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fingerprint/internal/app"
	"go.trai.ch/fingerprint/internal/core/domain"
	"go.trai.ch/fingerprint/internal/core/ports"
	"go.trai.ch/fingerprint/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	collector *mocks.MockFileInfoCollector
	hasher    *mocks.MockContentHasher
	resolver  *mocks.MockPathResolver
	global    *mocks.MockFingerprintCache
	local     *mocks.MockInvalidatingCache
	logger    *mocks.MockLogger
	app       *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		collector: mocks.NewMockFileInfoCollector(ctrl),
		hasher:    mocks.NewMockContentHasher(ctrl),
		resolver:  mocks.NewMockPathResolver(ctrl),
		global:    mocks.NewMockFingerprintCache(ctrl),
		local:     mocks.NewMockInvalidatingCache(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.app = app.New(f.collector, f.hasher, f.resolver, f.global, f.local, f.logger)
	return f
}

func TestApp_Fingerprint_PreservesOrder(t *testing.T) {
	f := newFixture(t)
	f.app.WithWorkers(4)

	paths := []string{"/project/a.txt", "/project/b.txt", "/project/c.txt"}
	f.resolver.EXPECT().Resolve([]string{"."}, "/project").Return(paths, nil)
	for i, path := range paths {
		f.collector.EXPECT().Hash(path).Return(domain.HashCode(i+1), nil).Times(1)
	}

	results, err := f.app.Fingerprint(context.Background(), "/project", []string{"."}, app.FingerprintOptions{})
	require.NoError(t, err)

	require.Len(t, results, 3)
	for i, path := range paths {
		assert.Equal(t, path, results[i].Path)
		assert.Equal(t, domain.HashCode(i+1), results[i].Hash)
	}
}

func TestApp_Fingerprint_Collect(t *testing.T) {
	f := newFixture(t)

	want := domain.FileInfo{Hash: 0xabc, Length: 12, LastModified: 1_700_000_000_000}
	f.resolver.EXPECT().Resolve([]string{"Main.java"}, "/project").Return([]string{"/project/Main.java"}, nil)
	f.hasher.EXPECT().Stat("/project/Main.java").Return(int64(12), int64(1_700_000_000_000), nil)
	f.collector.EXPECT().Collect("/project/Main.java", int64(12), int64(1_700_000_000_000)).Return(want, nil)
	f.collector.EXPECT().Hash(gomock.Any()).Times(0)

	results, err := f.app.Fingerprint(
		context.Background(), "/project", []string{"Main.java"}, app.FingerprintOptions{Collect: true},
	)
	require.NoError(t, err)
	assert.Equal(t, []domain.PathInfo{{Path: "/project/Main.java", FileInfo: want}}, results)
}

func TestApp_Fingerprint_NoPatterns(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Fingerprint(context.Background(), "/project", nil, app.FingerprintOptions{})
	require.ErrorIs(t, err, domain.ErrNoPathsSpecified)
}

func TestApp_Fingerprint_ResolveError(t *testing.T) {
	f := newFixture(t)

	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, domain.ErrPathNotFound)
	f.collector.EXPECT().Hash(gomock.Any()).Times(0)

	_, err := f.app.Fingerprint(context.Background(), "/project", []string{"missing"}, app.FingerprintOptions{})
	require.ErrorIs(t, err, domain.ErrPathNotFound)
}

func TestApp_Fingerprint_StopsOnFirstError(t *testing.T) {
	f := newFixture(t)
	f.app.WithWorkers(1)

	hashErr := errors.New("permission denied")
	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return([]string{"/project/a", "/project/b"}, nil)
	f.collector.EXPECT().Hash("/project/a").Return(domain.HashCode(0), hashErr)
	f.collector.EXPECT().Hash("/project/b").Times(0)

	results, err := f.app.Fingerprint(context.Background(), "/project", []string{"."}, app.FingerprintOptions{})
	require.ErrorIs(t, err, hashErr)
	assert.Nil(t, results)
}

func TestApp_Fingerprint_Canceled(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return([]string{"/project/a"}, nil)
	f.collector.EXPECT().Hash(gomock.Any()).Times(0)

	_, err := f.app.Fingerprint(ctx, "/project", []string{"."}, app.FingerprintOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestApp_Watch_RefreshesChangedFiles(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	w := mocks.NewMockWatcher(ctrl)

	events := iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
		for _, e := range []ports.WatchEvent{
			{Path: "/project/b.txt", Operation: ports.OpWrite},
			{Path: "/project/a.txt", Operation: ports.OpWrite},
			{Path: "/project/gone.txt", Operation: ports.OpRemove},
			{Path: "/project/a.txt", Operation: ports.OpWrite},
		} {
			if !yield(e) {
				return
			}
		}
	})

	// A long window leaves the final flush to deliver the batch.
	f.app.WithWatcher(func() (ports.Watcher, error) { return w, nil }, time.Hour)

	changed := []string{"/project/a.txt", "/project/b.txt", "/project/gone.txt"}
	gomock.InOrder(
		w.EXPECT().Start(gomock.Any(), "/project").Return(nil),
		w.EXPECT().Events().Return(events),
		f.local.EXPECT().Invalidate(changed).Return(nil),
		w.EXPECT().Stop().Return(nil),
	)
	f.logger.EXPECT().Info("watching /project")
	f.hasher.EXPECT().Stat("/project/a.txt").Return(int64(1), int64(10), nil)
	f.hasher.EXPECT().Stat("/project/b.txt").Return(int64(2), int64(20), nil)
	f.hasher.EXPECT().Stat("/project/gone.txt").Return(int64(0), int64(0), errors.New("no such file"))
	f.collector.EXPECT().HashWithMetadata("/project/a.txt", int64(1), int64(10)).Return(domain.HashCode(0xa), nil)
	f.collector.EXPECT().HashWithMetadata("/project/b.txt", int64(2), int64(20)).Return(domain.HashCode(0xb), nil)
	f.logger.EXPECT().Info("000000000000000a  /project/a.txt")
	f.logger.EXPECT().Info("000000000000000b  /project/b.txt")

	require.NoError(t, f.app.Watch(context.Background(), "/project"))
}

func TestApp_Watch_WaitsForTimerRefresh(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		ctrl := gomock.NewController(t)
		w := mocks.NewMockWatcher(ctrl)

		// One change, then quiet long enough for the window to close while
		// the watcher is still running.
		events := iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
			if !yield(ports.WatchEvent{Path: "/project/a.txt", Operation: ports.OpWrite}) {
				return
			}
			time.Sleep(100 * time.Millisecond)
		})
		f.app.WithWatcher(func() (ports.Watcher, error) { return w, nil }, 10*time.Millisecond)

		var refreshed atomic.Bool
		gomock.InOrder(
			w.EXPECT().Start(gomock.Any(), "/project").Return(nil),
			w.EXPECT().Events().Return(events),
			f.local.EXPECT().Invalidate([]string{"/project/a.txt"}).DoAndReturn(func([]string) error {
				time.Sleep(300 * time.Millisecond)
				return nil
			}),
			f.hasher.EXPECT().Stat("/project/a.txt").Return(int64(1), int64(10), nil),
			f.collector.EXPECT().
				HashWithMetadata("/project/a.txt", int64(1), int64(10)).
				DoAndReturn(func(string, int64, int64) (domain.HashCode, error) {
					refreshed.Store(true)
					return domain.HashCode(0xa), nil
				}),
			w.EXPECT().Stop().Return(nil),
		)
		f.logger.EXPECT().Info(gomock.Any()).Times(2)

		require.NoError(t, f.app.Watch(context.Background(), "/project"))
		assert.True(t, refreshed.Load())
	})
}

func TestApp_Watch_StartError(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	w := mocks.NewMockWatcher(ctrl)
	f.app.WithWatcher(func() (ports.Watcher, error) { return w, nil }, time.Millisecond)

	startErr := errors.New("too many open files")
	w.EXPECT().Start(gomock.Any(), "/project").Return(startErr)
	w.EXPECT().Stop().Return(nil).Times(1)
	w.EXPECT().Events().Times(0)

	err := f.app.Watch(context.Background(), "/project")
	require.ErrorIs(t, err, startErr)
}

func TestApp_Watch_NoWatcher(t *testing.T) {
	f := newFixture(t)

	require.Error(t, f.app.Watch(context.Background(), "/project"))
}

func TestApp_Clean(t *testing.T) {
	t.Run("local only", func(t *testing.T) {
		f := newFixture(t)
		f.local.EXPECT().Clear().Return(nil)
		f.global.EXPECT().Clear().Times(0)
		f.logger.EXPECT().Info(gomock.Any()).Times(2)

		require.NoError(t, f.app.Clean(context.Background(), app.CleanOptions{}))
	})

	t.Run("global", func(t *testing.T) {
		f := newFixture(t)
		f.local.EXPECT().Clear().Return(nil)
		f.global.EXPECT().Clear().Return(domain.ErrStoreLocked)
		f.logger.EXPECT().Info(gomock.Any()).Times(3)

		err := f.app.Clean(context.Background(), app.CleanOptions{Global: true})
		require.ErrorIs(t, err, domain.ErrStoreLocked)
	})
}
