package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-profiler/internal/platform/logger"
	"pet-profiler/internal/ports/backend"

	"github.com/google/uuid"
)

type Options struct {
	MaxImages   int
	Concurrency int
	Policy      Policy
}

type Service struct {
	backend  backend.ChatBackend
	orch     *Orchestrator
	sessions *Sessions
	opts     Options
	log      logger.Logger
	now      func() time.Time
}

func NewService(b backend.ChatBackend, sessions *Sessions, opts Options, log logger.Logger) *Service {
	if opts.MaxImages <= 0 {
		opts.MaxImages = 2
	}
	if opts.Policy == "" {
		opts.Policy = PolicyDropFailed
	}
	if log == nil {
		log = logger.Nop()
	}
	if sessions == nil {
		sessions = NewSessions(0)
	}
	return &Service{
		backend:  b,
		orch:     NewOrchestrator(b, opts.Concurrency, log),
		sessions: sessions,
		opts:     opts,
		log:      log,
		now:      time.Now,
	}
}

type SendInput struct {
	UserID string
	PetID  string
	Text   string
	Images [][]byte
}

type SendResult struct {
	User     Message        `json:"user"`
	Expert   Message        `json:"expert"`
	Failures []ImageFailure `json:"failures,omitempty"`
}

// Send procesa las imágenes (si hay), espera al lote completo y recién
// después manda el texto con las keys acumuladas.
func (s *Service) Send(ctx context.Context, in SendInput) (SendResult, error) {
	userID := strings.TrimSpace(in.UserID)
	petID := strings.TrimSpace(in.PetID)
	text := strings.TrimSpace(in.Text)
	if userID == "" || petID == "" || (text == "" && len(in.Images) == 0) {
		return SendResult{}, ErrInvalidInput
	}
	if len(in.Images) > s.opts.MaxImages {
		return SendResult{}, fmt.Errorf("%w (max %d)", ErrTooManyImages, s.opts.MaxImages)
	}

	var batch BatchResult
	if len(in.Images) > 0 {
		var err error
		batch, err = s.orch.ProcessImages(ctx, userID, petID, in.Images)
		if err != nil {
			return SendResult{}, err
		}
		if len(batch.Failures) > 0 && s.opts.Policy == PolicyRequireAll {
			errs := make([]error, 0, len(batch.Failures)+1)
			errs = append(errs, ErrBatchIncomplete)
			for _, f := range batch.Failures {
				errs = append(errs, f)
			}
			return SendResult{Failures: batch.Failures}, errors.Join(errs...)
		}
	}

	userMsg := Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    SenderUser,
		Timestamp: formatTimestamp(s.now()),
		ImageKeys: batch.Keys,
	}
	s.sessions.Append(userID, petID, userMsg)

	reply, err := s.backend.SendChatMessage(ctx, userID, petID, text, batch.Keys)
	if err != nil {
		return SendResult{User: userMsg, Failures: batch.Failures}, err
	}

	expertMsg := Message{
		ID:        uuid.NewString(),
		Text:      reply,
		Sender:    SenderExpert,
		Timestamp: formatTimestamp(s.now()),
	}
	s.sessions.Append(userID, petID, expertMsg)

	s.log.Info("chat message sent", map[string]any{
		"user_id":         userID,
		"pet_id":          petID,
		"images":          len(in.Images),
		"images_accepted": len(batch.Keys),
	})

	return SendResult{User: userMsg, Expert: expertMsg, Failures: batch.Failures}, nil
}

func (s *Service) History(userID, petID string) []Message {
	return s.sessions.History(userID, petID)
}

// ClearHistory arranca una conversación nueva para el pet.
func (s *Service) ClearHistory(userID, petID string) {
	s.sessions.Clear(userID, petID)
}
