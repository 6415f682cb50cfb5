package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var ErrInvalidName = errors.New("filestore: invalid file name")

// Store guarda arrays JSON completos en archivos bajo dir.
// Un solo escritor por archivo (mutex por nombre) y escritura tmp + rename.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("filestore: dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure dir: %w", err)
	}
	return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) lock(name string) func() {
	s.mu.Lock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// safeSegment rechaza ids que podrían salir del directorio.
func safeSegment(s string) error {
	if s == "" || s == "." || s == ".." || strings.ContainsAny(s, `/\`) || strings.Contains(s, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidName, s)
	}
	return nil
}

// pairEscaper deja intactos los ids comunes (uuid, alfanuméricos) y escapa
// '_' y '%' para que "<user>_<pet>" no sea ambiguo: ("a_b","c") != ("a","b_c").
var pairEscaper = strings.NewReplacer("%", "%25", "_", "%5F")

// pairFile arma "<userId>_<petId>_<suffix>.json".
func pairFile(userID, petID, suffix string) (string, error) {
	if err := safeSegment(userID); err != nil {
		return "", err
	}
	if err := safeSegment(petID); err != nil {
		return "", err
	}
	return pairEscaper.Replace(userID) + "_" + pairEscaper.Replace(petID) + "_" + suffix + ".json", nil
}

// loadUnlocked lee name en out. Archivo inexistente o JSON inválido = sin datos.
func (s *Store) loadUnlocked(name string, out any) (bool, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *Store) saveUnlocked(name string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	return writeAtomic(filepath.Join(s.dir, name), b)
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("sync temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
