package scan

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"pet-profiler/internal/domain/pets"
	"pet-profiler/internal/ports/backend"
)

type fakeBackend struct {
	calls      []string
	presignErr error
	uploadErr  error
	results    string
	gotKey     string
	gotPetID   string
}

func (f *fakeBackend) PresignScan(_ context.Context, _, petID string) (backend.Upload, error) {
	f.calls = append(f.calls, "presign")
	f.gotPetID = petID
	if f.presignErr != nil {
		return backend.Upload{}, f.presignErr
	}
	return backend.Upload{URL: "https://upload/x", Key: "scans/x.jpg"}, nil
}

func (f *fakeBackend) UploadImage(context.Context, string, []byte) error {
	f.calls = append(f.calls, "upload")
	return f.uploadErr
}

func (f *fakeBackend) ProcessScan(_ context.Context, _, _, key string) (json.RawMessage, error) {
	f.calls = append(f.calls, "process")
	f.gotKey = key
	return json.RawMessage(f.results), nil
}

func (f *fakeBackend) UpdatePetInfo(context.Context, string, string, string) error { return nil }

type fakeImages struct {
	err error
	n   int
}

func (f *fakeImages) SavePetImage([]byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.n++
	return "img.jpg", nil
}

type fakePets struct {
	saved []pets.Pet
}

func (f *fakePets) SaveScanned(_ context.Context, p pets.Pet) (pets.Pet, error) {
	f.saved = append(f.saved, p)
	return p, nil
}

func TestScan_RunsStagesInOrderAndFillsCallerFields(t *testing.T) {
	b := &fakeBackend{results: fullScan}
	imgs := &fakeImages{}
	ps := &fakePets{}
	svc := NewService(b, imgs, ps, nil)

	res, err := svc.Scan(context.Background(), Input{UserID: "u1", PetID: "p1", Name: " Rex ", Image: []byte{1}, Save: true})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := []string{"presign", "upload", "process"}
	if len(b.calls) != len(want) {
		t.Fatalf("calls = %v", b.calls)
	}
	for i := range want {
		if b.calls[i] != want[i] {
			t.Fatalf("calls = %v", b.calls)
		}
	}
	if b.gotKey != "scans/x.jpg" {
		t.Fatalf("process key = %q", b.gotKey)
	}
	if res.Pet.Name != "Rex" || res.Pet.UserID != "u1" || res.Pet.PetID != "p1" {
		t.Fatalf("pet = %+v", res.Pet)
	}
	if res.Pet.ID == res.Pet.PetID {
		t.Fatalf("local id must differ from backend pet id")
	}
	if res.Pet.ImagePath != "img.jpg" || !res.Saved || len(ps.saved) != 1 {
		t.Fatalf("res = %+v saved=%d", res, len(ps.saved))
	}
}

func TestScan_GeneratesPetIDWhenMissing(t *testing.T) {
	b := &fakeBackend{results: fullScan}
	svc := NewService(b, nil, nil, nil)

	res, err := svc.Scan(context.Background(), Input{UserID: "u1", Image: []byte{1}})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if b.gotPetID == "" || res.Pet.PetID != b.gotPetID {
		t.Fatalf("pet id = %q, backend got %q", res.Pet.PetID, b.gotPetID)
	}
	if res.Saved {
		t.Fatalf("should not be saved")
	}
}

func TestScan_StopsAtFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	b := &fakeBackend{uploadErr: boom, results: fullScan}
	svc := NewService(b, nil, nil, nil)

	_, err := svc.Scan(context.Background(), Input{UserID: "u1", Image: []byte{1}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected upload error, got %v", err)
	}
	if len(b.calls) != 2 {
		t.Fatalf("process must not run after failed upload: %v", b.calls)
	}
}

func TestScan_ImageSaveFailureIsNotFatal(t *testing.T) {
	b := &fakeBackend{results: fullScan}
	svc := NewService(b, &fakeImages{err: errors.New("disk full")}, nil, nil)

	res, err := svc.Scan(context.Background(), Input{UserID: "u1", Image: []byte{1}})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if res.Pet.ImagePath != "" {
		t.Fatalf("image path = %q", res.Pet.ImagePath)
	}
}

func TestScan_ParseFailure(t *testing.T) {
	b := &fakeBackend{results: `{"gender":"male"}`}
	ps := &fakePets{}
	svc := NewService(b, nil, ps, nil)

	_, err := svc.Scan(context.Background(), Input{UserID: "u1", Image: []byte{1}, Save: true})
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if len(ps.saved) != 0 {
		t.Fatalf("nothing should be saved")
	}
}

func TestScan_InvalidInput(t *testing.T) {
	svc := NewService(&fakeBackend{}, nil, nil, nil)
	if _, err := svc.Scan(context.Background(), Input{UserID: "", Image: []byte{1}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Scan(context.Background(), Input{UserID: "u"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
