package backend

import (
	"context"
	"encoding/json"
)

// Upload es una URL prefirmada de corta vida + la key del objeto destino.
type Upload struct {
	URL string
	Key string
}

// ScanBackend cubre presign -> upload -> process del scan y la sync del perfil.
type ScanBackend interface {
	PresignScan(ctx context.Context, userID, petID string) (Upload, error)
	UploadImage(ctx context.Context, url string, image []byte) error
	// ProcessScan devuelve el objeto "scan_results" sin interpretar.
	ProcessScan(ctx context.Context, userID, petID, imageKey string) (json.RawMessage, error)
	// UpdatePetInfo manda el perfil serializado como string JSON.
	UpdatePetInfo(ctx context.Context, userID, petID, petJSON string) error
}

type ChatBackend interface {
	PresignChat(ctx context.Context, userID, petID string) (Upload, error)
	UploadImage(ctx context.Context, url string, image []byte) error
	ProcessChatImage(ctx context.Context, userID, petID, imageKey string) error
	SendChatMessage(ctx context.Context, userID, petID, message string, imageKeys []string) (string, error)
}

type TipsBackend interface {
	// FetchTips devuelve el JSON interno (el string "response" ya desenvuelto).
	FetchTips(ctx context.Context, userID, petID string) ([]byte, error)
}
