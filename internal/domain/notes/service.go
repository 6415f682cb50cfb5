package notes

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("note not found")
)

type Service struct {
	repo Repository
	now  func() time.Time

	// serializa read-modify-write por (user, pet)
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *Service) lock(userID, petID string) func() {
	key := userID + "/" + petID
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

type Input struct {
	Title   string
	Content string
}

func (in Input) normalize() (Input, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if in.Title == "" && in.Content == "" {
		return Input{}, ErrInvalidInput
	}
	return in, nil
}

func validOwner(userID, petID string) bool {
	return strings.TrimSpace(userID) != "" && strings.TrimSpace(petID) != ""
}

// List devuelve las notas ordenadas de la más nueva a la más vieja.
func (s *Service) List(ctx context.Context, userID, petID string) ([]Note, error) {
	if !validOwner(userID, petID) {
		return nil, ErrInvalidInput
	}
	items, err := s.repo.Load(ctx, userID, petID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return items, nil
}

func (s *Service) Create(ctx context.Context, userID, petID string, in Input) (Note, error) {
	if !validOwner(userID, petID) {
		return Note{}, ErrInvalidInput
	}
	in, err := in.normalize()
	if err != nil {
		return Note{}, err
	}

	unlock := s.lock(userID, petID)
	defer unlock()

	items, err := s.repo.Load(ctx, userID, petID)
	if err != nil {
		return Note{}, err
	}

	n := Note{
		ID:      uuid.NewString(),
		Title:   in.Title,
		Content: in.Content,
		Date:    s.now().UTC(),
	}
	items = append(items, n)

	if err := s.repo.Save(ctx, userID, petID, items); err != nil {
		return Note{}, err
	}
	return n, nil
}

func (s *Service) Update(ctx context.Context, userID, petID, noteID string, in Input) (Note, error) {
	if !validOwner(userID, petID) {
		return Note{}, ErrInvalidInput
	}
	in, err := in.normalize()
	if err != nil {
		return Note{}, err
	}

	unlock := s.lock(userID, petID)
	defer unlock()

	items, err := s.repo.Load(ctx, userID, petID)
	if err != nil {
		return Note{}, err
	}

	for i := range items {
		if items[i].ID != noteID {
			continue
		}
		items[i].Title = in.Title
		items[i].Content = in.Content
		if err := s.repo.Save(ctx, userID, petID, items); err != nil {
			return Note{}, err
		}
		return items[i], nil
	}
	return Note{}, ErrNotFound
}

func (s *Service) Delete(ctx context.Context, userID, petID, noteID string) error {
	if !validOwner(userID, petID) {
		return ErrInvalidInput
	}

	unlock := s.lock(userID, petID)
	defer unlock()

	items, err := s.repo.Load(ctx, userID, petID)
	if err != nil {
		return err
	}

	out := make([]Note, 0, len(items))
	for _, n := range items {
		if n.ID != noteID {
			out = append(out, n)
		}
	}
	if len(out) == len(items) {
		return ErrNotFound
	}
	return s.repo.Save(ctx, userID, petID, out)
}
