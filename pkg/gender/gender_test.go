package gender_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/namestat/pkg/errcode"
	"github.com/gnames/namestat/pkg/gender"
	"github.com/gnames/namestat/pkg/namelists"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenderString(t *testing.T) {
	tests := []struct {
		in  string
		res gender.Gender
	}{
		{"male", gender.Male},
		{" Female ", gender.Female},
		{"m", gender.Male},
		{"andy", gender.Unknown},
		{"", gender.Unknown},
	}
	for _, v := range tests {
		g := gender.New(v.in)
		assert.Equal(t, v.res, g, v.in)
	}
	assert.Equal(t, "female", gender.Female.String())
	assert.Equal(t, "unknown", gender.Gender(42).String())
}

func TestDetectionGender(t *testing.T) {
	tests := []struct {
		det gender.Detection
		res gender.Gender
	}{
		{gender.DetectMale, gender.Male},
		{gender.DetectMostlyMale, gender.Male},
		{gender.DetectFemale, gender.Female},
		{gender.DetectMostlyFemale, gender.Female},
		{gender.DetectAndy, gender.Unknown},
		{gender.DetectUnknown, gender.Unknown},
		{gender.Detection("something"), gender.Unknown},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, v.det.Gender(), string(v.det))
	}
}

func TestHeuristic(t *testing.T) {
	ctx := context.Background()
	cls := gender.NewHeuristic(namelists.Default().Heuristic)

	tests := []struct {
		name string
		res  gender.Gender
	}{
		{"Анна", gender.Female},
		{"Мария", gender.Female},
		{"Любовь", gender.Female},
		{"Пётр", gender.Male},
		{"Иван", gender.Male},
		{"Игорь", gender.Male},
		{"Илья", gender.Male},
		{"Никита", gender.Male},
		{"ЛЁВА", gender.Male},
		{"ДАРЬЯ", gender.Female},
		{"", gender.Male},
	}

	for _, v := range tests {
		g, err := cls.Classify(ctx, v.name)
		require.NoError(t, err, v.name)
		assert.Equal(t, v.res, g, v.name)
	}
}

func TestHeuristicNeverUnknown(t *testing.T) {
	ctx := context.Background()
	cls := gender.NewHeuristic(namelists.Default().Heuristic)
	for _, name := range []string{"Ёж", "x", "Жанна", "Кузьма", "Anna"} {
		g, err := cls.Classify(ctx, name)
		require.NoError(t, err)
		assert.NotEqual(t, gender.Unknown, g, name)
	}
}

type mockTranslator struct {
	calls int
	err   error
	dict  map[string]string
}

func (m *mockTranslator) Translate(_ context.Context, text string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	if res, ok := m.dict[text]; ok {
		return res, nil
	}
	return text, nil
}

type mockDetector struct {
	calls int
	err   error
	res   map[string]gender.Detection
}

func (m *mockDetector) Detect(_ context.Context, name string) (gender.Detection, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	if res, ok := m.res[name]; ok {
		return res, nil
	}
	return gender.DetectUnknown, nil
}

func TestLookup(t *testing.T) {
	ctx := context.Background()
	tr := &mockTranslator{dict: map[string]string{
		"Пётр":    "Peter",
		"Анна":    "Anna",
		"Саша":    "Sasha",
		"Евгений": "Eugene",
	}}
	det := &mockDetector{res: map[string]gender.Detection{
		"Peter":  gender.DetectMale,
		"Anna":   gender.DetectFemale,
		"Sasha":  gender.DetectAndy,
		"Eugene": gender.DetectMostlyMale,
	}}
	cls := gender.NewLookup(tr, det, namelists.Default().Lookup)

	tests := []struct {
		name string
		res  gender.Gender
	}{
		{"Пётр", gender.Male},
		{"Анна", gender.Female},
		{"Саша", gender.Unknown},
		{"Евгений", gender.Male},
		{"Неизвестный", gender.Unknown},
	}
	for _, v := range tests {
		g, err := cls.Classify(ctx, v.name)
		require.NoError(t, err, v.name)
		assert.Equal(t, v.res, g, v.name)
	}
	assert.Equal(t, 5, tr.calls)
	assert.Equal(t, 5, det.calls)
}

func TestLookupOverrides(t *testing.T) {
	ctx := context.Background()
	tr := &mockTranslator{err: errors.New("must not be called")}
	det := &mockDetector{err: errors.New("must not be called")}
	cls := gender.NewLookup(tr, det, namelists.LookupLists{
		ForcedMale:   []string{"Никита", "Лев"},
		ForcedFemale: []string{"Любовь"},
	})

	g, err := cls.Classify(ctx, "никита")
	require.NoError(t, err)
	assert.Equal(t, gender.Male, g)

	g, err = cls.Classify(ctx, "Любовь")
	require.NoError(t, err)
	assert.Equal(t, gender.Female, g)

	assert.Zero(t, tr.calls)
	assert.Zero(t, det.calls)
}

func TestLookupErrors(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("service is down")

	tests := []struct {
		msg string
		tr  *mockTranslator
		det *mockDetector
	}{
		{"translator", &mockTranslator{err: cause}, &mockDetector{}},
		{"detector", &mockTranslator{}, &mockDetector{err: cause}},
	}

	for _, v := range tests {
		cls := gender.NewLookup(v.tr, v.det, namelists.LookupLists{})
		g, err := cls.Classify(ctx, "Пётр")
		require.Error(t, err, v.msg)
		assert.Equal(t, gender.Unknown, g, v.msg)

		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, errcode.GenderClassificationError, gnErr.Code, v.msg)
		assert.Equal(t, "Пётр", gnErr.Vars[0], v.msg)
		assert.ErrorIs(t, gnErr.Err, gender.ErrClassification, v.msg)
		assert.ErrorIs(t, gnErr.Err, cause, v.msg)
	}
}

type countingClassifier struct {
	calls atomic.Int32
	fail  map[string]bool
}

func (c *countingClassifier) Classify(_ context.Context, name string) (gender.Gender, error) {
	c.calls.Add(1)
	if c.fail[name] {
		return gender.Unknown, errors.New("boom")
	}
	return gender.Female, nil
}

func TestCached(t *testing.T) {
	ctx := context.Background()

	t.Run("remembers results", func(t *testing.T) {
		inner := &countingClassifier{}
		cls := gender.NewCached(inner)
		for range 3 {
			g, err := cls.Classify(ctx, "Анна")
			require.NoError(t, err)
			assert.Equal(t, gender.Female, g)
		}
		assert.Equal(t, int32(1), inner.calls.Load())
		assert.Equal(t, 1, cls.Len())
	})

	t.Run("does not remember failures", func(t *testing.T) {
		inner := &countingClassifier{fail: map[string]bool{"Пётр": true}}
		cls := gender.NewCached(inner)
		_, err := cls.Classify(ctx, "Пётр")
		require.Error(t, err)
		_, err = cls.Classify(ctx, "Пётр")
		require.Error(t, err)
		assert.Equal(t, int32(2), inner.calls.Load())
		assert.Zero(t, cls.Len())
	})

	t.Run("concurrent use", func(t *testing.T) {
		inner := newBlockingClassifier()
		cls := gender.NewCached(inner)

		var ready, wg sync.WaitGroup
		for range 20 {
			ready.Add(1)
			wg.Add(1)
			go func() {
				defer wg.Done()
				ready.Done()
				g, err := cls.Classify(ctx, "Мария")
				assert.NoError(t, err)
				assert.Equal(t, gender.Male, g)
			}()
		}
		ready.Wait()
		require.Eventually(t, func() bool { return inner.calls.Load() == 1 },
			time.Second, 5*time.Millisecond)
		// let the rest of goroutines join the call in flight
		time.Sleep(50 * time.Millisecond)
		close(inner.release)
		wg.Wait()

		assert.Equal(t, int32(1), inner.calls.Load())
		assert.Equal(t, 1, cls.Len())
	})

	t.Run("cancelled caller", func(t *testing.T) {
		inner := newBlockingClassifier()
		cls := gender.NewCached(inner)

		ctxA, cancel := context.WithCancel(ctx)
		errA := make(chan error, 1)
		go func() {
			_, err := cls.Classify(ctxA, "Пётр")
			errA <- err
		}()
		require.Eventually(t, func() bool { return inner.calls.Load() == 1 },
			time.Second, 5*time.Millisecond)

		type result struct {
			g   gender.Gender
			err error
		}
		resB := make(chan result, 1)
		go func() {
			g, err := cls.Classify(ctx, "Пётр")
			resB <- result{g, err}
		}()
		time.Sleep(20 * time.Millisecond)

		cancel()
		assert.ErrorIs(t, <-errA, context.Canceled)

		close(inner.release)
		res := <-resB
		require.NoError(t, res.err)
		assert.Equal(t, gender.Male, res.g)
		assert.Equal(t, int32(1), inner.calls.Load())
		assert.Equal(t, 1, cls.Len())
	})
}

// blockingClassifier answers Male after release is closed, or fails when
// its ctx is done.
type blockingClassifier struct {
	calls   atomic.Int32
	release chan struct{}
}

func newBlockingClassifier() *blockingClassifier {
	return &blockingClassifier{release: make(chan struct{})}
}

func (b *blockingClassifier) Classify(ctx context.Context, _ string) (gender.Gender, error) {
	b.calls.Add(1)
	select {
	case <-b.release:
		return gender.Male, nil
	case <-ctx.Done():
		return gender.Unknown, ctx.Err()
	}
}
