package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pet-profiler/internal/ports/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeChat falla el upload de las imágenes que empiezan con 'u'.
type fakeChat struct {
	mu       sync.Mutex
	presigns int
	sentText string
	sentKeys []string
	sendErr  error

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
	delay       time.Duration
}

func (f *fakeChat) PresignChat(ctx context.Context, _, _ string) (backend.Upload, error) {
	f.mu.Lock()
	f.presigns++
	n := f.presigns
	f.mu.Unlock()
	return backend.Upload{URL: fmt.Sprintf("https://up/%d", n), Key: fmt.Sprintf("chat/%d", n)}, nil
}

func (f *fakeChat) UploadImage(ctx context.Context, url string, img []byte) error {
	cur := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		prev := f.maxInFlight.Load()
		if cur <= prev || f.maxInFlight.CompareAndSwap(prev, cur) {
			break
		}
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if len(img) > 0 && img[0] == 'u' {
		return errors.New("upload rejected")
	}
	return nil
}

func (f *fakeChat) ProcessChatImage(_ context.Context, _, _, _ string) error {
	return nil
}

func (f *fakeChat) SendChatMessage(_ context.Context, _, _, message string, keys []string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sentText = message
	f.sentKeys = append([]string(nil), keys...)
	if f.sendErr != nil {
		return "", f.sendErr
	}
	return "expert says hi", nil
}

// stageChat falla el process de las keys indicadas.
type stageChat struct {
	fakeChat
	failProcess map[string]bool
}

func (s *stageChat) ProcessChatImage(_ context.Context, _, _, key string) error {
	if s.failProcess[key] {
		return errors.New("not processed")
	}
	return nil
}

func TestSend_TextOnly(t *testing.T) {
	b := &fakeChat{}
	svc := NewService(b, nil, Options{}, nil)

	res, err := svc.Send(context.Background(), SendInput{UserID: "u", PetID: "p", Text: " hello "})
	require.NoError(t, err)

	assert.Equal(t, "hello", b.sentText)
	assert.Empty(t, b.sentKeys)
	assert.Equal(t, SenderUser, res.User.Sender)
	assert.Equal(t, SenderExpert, res.Expert.Sender)
	assert.Equal(t, "expert says hi", res.Expert.Text)

	hist := svc.History("u", "p")
	require.Len(t, hist, 2)
	assert.Equal(t, res.User.ID, hist[0].ID)
	assert.Equal(t, res.Expert.ID, hist[1].ID)
}

func TestSessions_KeepsLastMessagesOnly(t *testing.T) {
	s := NewSessions(3)
	for i := 0; i < 5; i++ {
		s.Append("u", "p", Message{ID: fmt.Sprintf("m%d", i)})
	}

	hist := s.History("u", "p")
	require.Len(t, hist, 3)
	assert.Equal(t, "m2", hist[0].ID)
	assert.Equal(t, "m4", hist[2].ID)

	// otra sesión no se ve afectada
	s.Append("u", "q", Message{ID: "other"})
	assert.Len(t, s.History("u", "q"), 1)
}

func TestClearHistory(t *testing.T) {
	svc := NewService(&fakeChat{}, NewSessions(0), Options{}, nil)
	_, err := svc.Send(context.Background(), SendInput{UserID: "u", PetID: "p", Text: "hi"})
	require.NoError(t, err)
	_, err = svc.Send(context.Background(), SendInput{UserID: "u", PetID: "q", Text: "hi"})
	require.NoError(t, err)

	svc.ClearHistory("u", "p")
	assert.Empty(t, svc.History("u", "p"))
	assert.Len(t, svc.History("u", "q"), 2)
}

func TestSend_TimestampFormat(t *testing.T) {
	svc := NewService(&fakeChat{}, nil, Options{}, nil)
	svc.now = func() time.Time { return time.Date(2026, time.March, 7, 14, 5, 9, 0, time.UTC) }

	res, err := svc.Send(context.Background(), SendInput{UserID: "u", PetID: "p", Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, "Sat, 7 Mar 2026 14:05:09", res.User.Timestamp)
}

func TestSend_DropFailedSendsRemainingKeys(t *testing.T) {
	b := &fakeChat{}
	svc := NewService(b, nil, Options{MaxImages: 4}, nil)

	images := [][]byte{[]byte("ok1"), []byte("u-bad"), []byte("ok2"), []byte("u-bad2")}
	res, err := svc.Send(context.Background(), SendInput{UserID: "u", PetID: "p", Text: "look", Images: images})
	require.NoError(t, err)

	assert.Len(t, b.sentKeys, 2)
	assert.Equal(t, b.sentKeys, res.User.ImageKeys)
	require.Len(t, res.Failures, 2)
	assert.Equal(t, 1, res.Failures[0].Index)
	assert.Equal(t, StageUpload, res.Failures[0].Stage)
	assert.Equal(t, 3, res.Failures[1].Index)
}

func TestSend_RequireAllFailsBeforeSending(t *testing.T) {
	b := &fakeChat{}
	svc := NewService(b, nil, Options{MaxImages: 2, Policy: PolicyRequireAll}, nil)

	res, err := svc.Send(context.Background(), SendInput{UserID: "u", PetID: "p", Text: "look", Images: [][]byte{[]byte("ok"), []byte("u")}})
	require.ErrorIs(t, err, ErrBatchIncomplete)
	assert.Len(t, res.Failures, 1)
	assert.Empty(t, b.sentText, "message must not be sent")
	assert.Empty(t, svc.History("u", "p"))
}

func TestSend_TooManyImages(t *testing.T) {
	svc := NewService(&fakeChat{}, nil, Options{MaxImages: 2}, nil)
	_, err := svc.Send(context.Background(), SendInput{UserID: "u", PetID: "p", Images: [][]byte{{1}, {2}, {3}}})
	require.ErrorIs(t, err, ErrTooManyImages)
}

func TestSend_InvalidInput(t *testing.T) {
	svc := NewService(&fakeChat{}, nil, Options{}, nil)
	_, err := svc.Send(context.Background(), SendInput{UserID: "u", PetID: "p", Text: "  "})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSend_BackendFailureKeepsUserMessage(t *testing.T) {
	b := &fakeChat{sendErr: errors.New("down")}
	svc := NewService(b, nil, Options{}, nil)

	res, err := svc.Send(context.Background(), SendInput{UserID: "u", PetID: "p", Text: "hi"})
	require.Error(t, err)
	assert.NotEmpty(t, res.User.ID)
	assert.Len(t, svc.History("u", "p"), 1)
}

func TestOrchestrator_OneKeyPerImage(t *testing.T) {
	b := &stageChat{failProcess: map[string]bool{}}
	o := NewOrchestrator(b, 8, nil)

	images := make([][]byte, 6)
	for i := range images {
		images[i] = []byte{byte('a' + i)}
	}
	res, err := o.ProcessImages(context.Background(), "u", "p", images)
	require.NoError(t, err)
	require.Len(t, res.Keys, 6)
	assert.Empty(t, res.Failures)

	// las keys vienen de presigns concurrentes; lo que se garantiza es una key por imagen
	seen := map[string]bool{}
	for _, k := range res.Keys {
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
}

func TestOrchestrator_ProcessFailure(t *testing.T) {
	b := &stageChat{failProcess: map[string]bool{"chat/1": true, "chat/2": true, "chat/3": true}}
	o := NewOrchestrator(b, 1, nil)

	res, err := o.ProcessImages(context.Background(), "u", "p", [][]byte{{1}, {2}, {3}, {4}})
	require.NoError(t, err)
	assert.Equal(t, []string{"chat/4"}, res.Keys)
	require.Len(t, res.Failures, 3)
	for _, f := range res.Failures {
		assert.Equal(t, StageProcess, f.Stage)
	}
}

func TestOrchestrator_RespectsConcurrencyLimit(t *testing.T) {
	b := &fakeChat{delay: 20 * time.Millisecond}
	o := NewOrchestrator(b, 2, nil)

	images := make([][]byte, 6)
	for i := range images {
		images[i] = []byte{'o'}
	}
	_, err := o.ProcessImages(context.Background(), "u", "p", images)
	require.NoError(t, err)
	assert.LessOrEqual(t, b.maxInFlight.Load(), int32(2))
}

func TestOrchestrator_Cancelled(t *testing.T) {
	b := &fakeChat{delay: time.Second}
	o := NewOrchestrator(b, 4, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := o.ProcessImages(ctx, "u", "p", [][]byte{{'o'}, {'o'}})
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyDropFailed, p)

	p, err = ParsePolicy("Require-All")
	require.NoError(t, err)
	assert.Equal(t, PolicyRequireAll, p)

	_, err = ParsePolicy("retry")
	require.Error(t, err)
}
