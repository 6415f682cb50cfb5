package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"pet-profiler/internal/config"
	"pet-profiler/internal/ports/backend"
	"pet-profiler/internal/router"
)

const scanResults = `{
  "breed_identification": {"primary_breed": "Beagle"},
  "size": {"height": 38, "weight": 11.5, "length": 60},
  "gender": "male",
  "coat": {"length": "short", "type": "smooth", "color": "tricolor brown"},
  "age": 3,
  "fitness_level": "medium",
  "animal_type": "dog",
  "breed_properties": {"hypoallergenic": 0, "bite_force": 230}
}`

const tipsPayload = `{
  "recommendation_bullets": {
    "health_issues": "- Ear checks",
    "nutrition": "- Measured meals",
    "exercise_needs": "- Long walks",
    "grooming": "- Weekly brush",
    "behavior": "- Scent games",
    "environment": "- Fenced yard"
  },
  "recommendation_importance": {
    "health_issues": 9, "nutrition": 8, "exercise_needs": 7,
    "grooming": 3, "behavior": 5, "environment": 4
  }
}`

// fakeBackend simula el backend remoto completo.
type fakeBackend struct {
	mu      sync.Mutex
	n       int
	synced  []string
	chatMsg string
	syncErr error
}

func (f *fakeBackend) nextUpload(prefix string) backend.Upload {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
	return backend.Upload{URL: fmt.Sprintf("https://upload/%d", f.n), Key: fmt.Sprintf("%s/%d.jpg", prefix, f.n)}
}

func (f *fakeBackend) PresignScan(context.Context, string, string) (backend.Upload, error) {
	return f.nextUpload("scans"), nil
}

func (f *fakeBackend) UploadImage(context.Context, string, []byte) error { return nil }

func (f *fakeBackend) ProcessScan(context.Context, string, string, string) (json.RawMessage, error) {
	return json.RawMessage(scanResults), nil
}

func (f *fakeBackend) UpdatePetInfo(_ context.Context, _, petID, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.synced = append(f.synced, petID)
	return f.syncErr
}

func (f *fakeBackend) PresignChat(context.Context, string, string) (backend.Upload, error) {
	return f.nextUpload("chat"), nil
}

func (f *fakeBackend) ProcessChatImage(context.Context, string, string, string) error { return nil }

func (f *fakeBackend) SendChatMessage(_ context.Context, _, _, message string, _ []string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chatMsg = message
	return "Beagles love to sniff.", nil
}

func (f *fakeBackend) FetchTips(context.Context, string, string) ([]byte, error) {
	return []byte(tipsPayload), nil
}

func newTestServer(t *testing.T, b *fakeBackend) *httptest.Server {
	t.Helper()

	s, err := router.NewServices(context.Background(), router.Options{
		Config: config.Config{
			Storage:         config.StorageMemory,
			DataDir:         t.TempDir(),
			ChatMaxImages:   2,
			ChatConcurrency: 2,
		},
		Backend: b,
	})
	if err != nil {
		t.Fatalf("new services: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	ts := httptest.NewServer(router.NewRouter(s))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_ScanConfirmAndPetModules(t *testing.T) {
	b := &fakeBackend{}
	ts := newTestServer(t, b)

	userID := "user-1"
	petID := "pet-1"

	// 1) Scan con save=true
	{
		st, body := doMultipart(t, ts.URL, "/scans", userID, map[string]string{
			"pet_id": petID,
			"name":   "Milo",
			"save":   "true",
		}, []byte("jpeg-bytes"))
		if st != http.StatusCreated {
			t.Fatalf("expected 201 scan, got %d body=%s", st, string(body))
		}
		var resp struct {
			Pet struct {
				ID        string `json:"id"`
				PetID     string `json:"pet_id"`
				Name      string `json:"name"`
				CoatColor string `json:"coat_color"`
			} `json:"pet"`
			Saved bool `json:"saved"`
		}
		_ = json.Unmarshal(body, &resp)
		if !resp.Saved || resp.Pet.PetID != petID || resp.Pet.Name != "Milo" || resp.Pet.CoatColor != "tricolor" {
			t.Fatalf("unexpected scan response: %s", string(body))
		}
		if resp.Pet.ID == "" || resp.Pet.ID == petID {
			t.Fatalf("local id must be generated and differ from pet_id: %s", string(body))
		}
	}

	// 2) Perfil y foto
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID, userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "GET", "/pets/"+petID+"/image", userID, nil)
		if st != http.StatusOK || string(body) != "jpeg-bytes" {
			t.Fatalf("expected stored image, got %d body=%q", st, string(body))
		}
	}

	// 3) Otro usuario no lo ve
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID, "user-2", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for other user, got %d", st)
		}
	}

	// 4) Confirm calcula edad/signo y sincroniza
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/confirm", userID, map[string]any{
			"birthday":    "2021-08-01",
			"personality": "Playful",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 confirm, got %d body=%s", st, string(body))
		}
		var resp struct {
			Pet struct {
				ZodiacSign string `json:"zodiac_sign"`
			} `json:"pet"`
			Synced bool `json:"synced"`
		}
		_ = json.Unmarshal(body, &resp)
		if !resp.Synced || resp.Pet.ZodiacSign != "Leo" {
			t.Fatalf("unexpected confirm response: %s", string(body))
		}
		if len(b.synced) != 1 || b.synced[0] != petID {
			t.Fatalf("backend sync = %v", b.synced)
		}
	}

	// 5) Notas
	noteID := ""
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/notes", userID, map[string]any{
			"title":   "Vet",
			"content": "Vaccine due",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create note, got %d body=%s", st, string(body))
		}
		var n struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &n)
		noteID = n.ID
		if noteID == "" {
			t.Fatalf("create note: missing id body=%s", string(body))
		}

		st, body = doReq(t, ts.URL, "PUT", "/pets/"+petID+"/notes/"+noteID, userID, map[string]any{
			"title":   "Vet",
			"content": "Vaccine done",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update note, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/pets/"+petID+"/notes", userID, nil)
		var items []struct {
			Content string `json:"content"`
		}
		_ = json.Unmarshal(body, &items)
		if st != http.StatusOK || len(items) != 1 || items[0].Content != "Vaccine done" {
			t.Fatalf("unexpected notes list: %d %s", st, string(body))
		}

		st, _ = doReq(t, ts.URL, "DELETE", "/pets/"+petID+"/notes/"+noteID, userID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete note, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/pets/"+petID+"/notes/"+noteID, userID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 deleting twice, got %d", st)
		}
	}

	// 6) Galería
	{
		st, body := doMultipart(t, ts.URL, "/pets/"+petID+"/gallery", userID, nil, []byte("g1"), []byte("g2"))
		if st != http.StatusCreated {
			t.Fatalf("expected 201 gallery upload, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "GET", "/pets/"+petID+"/gallery", userID, nil)
		var imgs []struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &imgs)
		if st != http.StatusOK || len(imgs) != 2 {
			t.Fatalf("unexpected gallery list: %d %s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "GET", "/pets/"+petID+"/gallery/"+imgs[0].ID, userID, nil)
		if st != http.StatusOK || len(body) == 0 {
			t.Fatalf("expected gallery image, got %d", st)
		}
	}

	// 7) Chat de texto
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/chat/messages", userID, map[string]any{
			"message": "Why does he sniff everything?",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 chat, got %d body=%s", st, string(body))
		}
		if b.chatMsg != "Why does he sniff everything?" {
			t.Fatalf("backend got %q", b.chatMsg)
		}
		st, body = doReq(t, ts.URL, "GET", "/pets/"+petID+"/chat/messages", userID, nil)
		var hist []struct {
			Sender string `json:"sender"`
		}
		_ = json.Unmarshal(body, &hist)
		if st != http.StatusOK || len(hist) != 2 {
			t.Fatalf("unexpected chat history: %d %s", st, string(body))
		}
	}

	// 8) Chat con más imágenes que el máximo
	{
		st, _ := doMultipart(t, ts.URL, "/pets/"+petID+"/chat/messages", userID, map[string]string{
			"message": "look",
		}, []byte("a"), []byte("b"), []byte("c"))
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 too many images, got %d", st)
		}
	}

	// 9) Tips: primero del backend, después del cache
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/tips", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 tips, got %d body=%s", st, string(body))
		}
		var res struct {
			Cached bool `json:"cached"`
			Tips   []struct {
				Category string `json:"category"`
			} `json:"tips"`
		}
		_ = json.Unmarshal(body, &res)
		if res.Cached || len(res.Tips) != 6 || res.Tips[0].Category != "health_issues" {
			t.Fatalf("unexpected tips: %s", string(body))
		}

		_, body = doReq(t, ts.URL, "GET", "/pets/"+petID+"/tips", userID, nil)
		_ = json.Unmarshal(body, &res)
		if !res.Cached {
			t.Fatalf("second call should be cached: %s", string(body))
		}
	}

	// 10) Borrar mascota
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/pets/"+petID, userID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete pet, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/pets/"+petID+"/notes", userID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 notes after delete, got %d", st)
		}
	}
}

func TestHTTP_UsersDoNotShareRecordsByPetID(t *testing.T) {
	ts := newTestServer(t, &fakeBackend{})

	// alice escanea p1 y sube una foto a la galería
	st, body := doMultipart(t, ts.URL, "/scans", "alice", map[string]string{
		"pet_id": "p1",
		"save":   "true",
	}, []byte("alice-photo"))
	if st != http.StatusCreated {
		t.Fatalf("expected 201 scan, got %d body=%s", st, string(body))
	}
	var scanned struct {
		Pet struct {
			ID        string `json:"id"`
			ImagePath string `json:"image_path"`
		} `json:"pet"`
	}
	_ = json.Unmarshal(body, &scanned)
	if scanned.Pet.ImagePath == "" {
		t.Fatalf("scan without image_path: %s", string(body))
	}
	st, _ = doMultipart(t, ts.URL, "/pets/p1/gallery", "alice", nil, []byte("alice-gallery"))
	if st != http.StatusCreated {
		t.Fatalf("expected 201 gallery upload, got %d", st)
	}

	// bob guarda su propio p1 apuntando a la foto de alice
	st, body = doReq(t, ts.URL, "POST", "/pets", "bob", map[string]any{
		"id":         "bob-local",
		"pet_id":     "p1",
		"image_path": scanned.Pet.ImagePath,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 save by bob, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/pets/p1/gallery", "bob", nil)
	var imgs []struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &imgs)
	if st != http.StatusOK || len(imgs) != 0 {
		t.Fatalf("bob sees alice's gallery: %d %s", st, string(body))
	}

	st, _ = doReq(t, ts.URL, "GET", "/pets/p1/image", "bob", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for bob's image, got %d", st)
	}

	// bob no puede pisar el registro de alice con su id local
	st, _ = doReq(t, ts.URL, "POST", "/pets", "bob", map[string]any{
		"id":     scanned.Pet.ID,
		"pet_id": "bob-p",
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 taking over alice's id, got %d", st)
	}
	st, body = doReq(t, ts.URL, "GET", "/pets/p1", "alice", nil)
	if st != http.StatusOK {
		t.Fatalf("alice lost her pet: %d %s", st, string(body))
	}

	// un segundo id local para el mismo pet_id del mismo usuario es conflicto
	st, _ = doReq(t, ts.URL, "POST", "/pets", "bob", map[string]any{
		"id":     "bob-local-2",
		"pet_id": "p1",
	})
	if st != http.StatusConflict {
		t.Fatalf("expected 409 duplicate pet_id, got %d", st)
	}

	// re-scan de alice reemplaza su registro
	st, body = doMultipart(t, ts.URL, "/scans", "alice", map[string]string{
		"pet_id": "p1",
		"save":   "true",
	}, []byte("alice-photo-2"))
	if st != http.StatusCreated {
		t.Fatalf("expected 201 re-scan, got %d body=%s", st, string(body))
	}
	st, body = doReq(t, ts.URL, "GET", "/pets", "alice", nil)
	var list []struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &list)
	if st != http.StatusOK || len(list) != 1 || list[0].ID != scanned.Pet.ID {
		t.Fatalf("unexpected pets after re-scan: %d %s", st, string(body))
	}
}

func TestHTTP_RequiresUserID(t *testing.T) {
	ts := newTestServer(t, &fakeBackend{})

	for _, path := range []string{"/pets", "/pets/p1/notes", "/pets/p1/tips"} {
		st, _ := doReq(t, ts.URL, "GET", path, "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("GET %s: expected 401, got %d", path, st)
		}
	}

	st, _ := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
}

func TestHTTP_ConfirmSyncFailureReturns502WithSavedPet(t *testing.T) {
	b := &fakeBackend{syncErr: fmt.Errorf("backend down")}
	ts := newTestServer(t, b)

	st, body := doReq(t, ts.URL, "POST", "/pets", "u1", map[string]any{
		"id":     "local-1",
		"pet_id": "p1",
		"name":   "Luna",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 save pet, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "POST", "/pets/p1/confirm", "u1", map[string]any{
		"birthday":    "2019-12-25",
		"personality": "Calm",
	})
	if st != http.StatusBadGateway {
		t.Fatalf("expected 502 confirm, got %d body=%s", st, string(body))
	}

	_, body = doReq(t, ts.URL, "GET", "/pets/p1", "u1", nil)
	var p struct {
		Personality string `json:"personality"`
		ZodiacSign  string `json:"zodiac_sign"`
	}
	_ = json.Unmarshal(body, &p)
	if p.Personality != "Calm" || p.ZodiacSign != "Capricorn" {
		t.Fatalf("local save lost: %s", string(body))
	}
}

func TestHTTP_ScanWithoutImage(t *testing.T) {
	ts := newTestServer(t, &fakeBackend{})

	st, _ := doMultipart(t, ts.URL, "/scans", "u1", map[string]string{"name": "x"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 without image, got %d", st)
	}
}

func TestHTTP_ChatWithEmptyAttachmentIsRejected(t *testing.T) {
	b := &fakeBackend{}
	ts := newTestServer(t, b)

	st, body := doReq(t, ts.URL, "POST", "/pets", "u1", map[string]any{
		"id":     "local-1",
		"pet_id": "p1",
		"name":   "Luna",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 save pet, got %d body=%s", st, string(body))
	}

	st, body = doMultipart(t, ts.URL, "/pets/p1/chat/messages", "u1", map[string]string{
		"message": "look",
	}, []byte("a"), []byte{})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 empty attachment, got %d body=%s", st, string(body))
	}

	b.mu.Lock()
	sent := b.chatMsg
	b.mu.Unlock()
	if sent != "" {
		t.Fatalf("message should not reach the backend, got %q", sent)
	}

	_, body = doReq(t, ts.URL, "GET", "/pets/p1/chat/messages", "u1", nil)
	var hist []json.RawMessage
	_ = json.Unmarshal(body, &hist)
	if len(hist) != 0 {
		t.Fatalf("history should stay empty: %s", string(body))
	}
}

func doMultipart(t *testing.T, baseURL, path, userID string, fields map[string]string, images ...[]byte) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for i, img := range images {
		fw, err := mw.CreateFormFile("image", fmt.Sprintf("img%d.jpg", i))
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		_, _ = fw.Write(img)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req, err := http.NewRequest("POST", baseURL+path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	return send(t, req)
}

func doReq(t *testing.T, baseURL, method, path, userID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	return send(t, req)
}

func send(t *testing.T, req *http.Request) (int, []byte) {
	t.Helper()

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
