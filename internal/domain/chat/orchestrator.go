package chat

import (
	"context"
	"fmt"
	"strings"

	"pet-profiler/internal/platform/logger"
	"pet-profiler/internal/ports/backend"

	"golang.org/x/sync/errgroup"
)

// Policy decide qué pasa con el mensaje si alguna imagen del lote falla.
type Policy string

const (
	// PolicyDropFailed manda el mensaje con las keys que sí se procesaron.
	PolicyDropFailed Policy = "drop-failed"
	// PolicyRequireAll no manda el mensaje si alguna imagen falló.
	PolicyRequireAll Policy = "require-all"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyDropFailed, "":
		return PolicyDropFailed, nil
	case PolicyRequireAll:
		return PolicyRequireAll, nil
	default:
		return "", fmt.Errorf("unknown chat failure policy %q (drop-failed|require-all)", s)
	}
}

const (
	StagePresign = "presign"
	StageUpload  = "upload"
	StageProcess = "process"
)

// ImageFailure describe en qué etapa falló cada imagen del lote.
type ImageFailure struct {
	Index int    `json:"index"`
	Stage string `json:"stage"`
	Err   error  `json:"-"`
}

func (f ImageFailure) Error() string {
	return fmt.Sprintf("image %d: %s: %v", f.Index, f.Stage, f.Err)
}

// BatchResult: Keys en el orden de entrada, sin las imágenes que fallaron.
type BatchResult struct {
	Keys     []string
	Failures []ImageFailure
}

// Orchestrator procesa las imágenes de un mensaje en paralelo
// (presign -> upload -> process por imagen) y espera al lote completo.
type Orchestrator struct {
	backend     backend.ChatBackend
	concurrency int
	log         logger.Logger
}

func NewOrchestrator(b backend.ChatBackend, concurrency int, log logger.Logger) *Orchestrator {
	if concurrency <= 0 {
		concurrency = 4
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Orchestrator{backend: b, concurrency: concurrency, log: log}
}

type slot struct {
	key   string
	stage string
	err   error
}

// ProcessImages nunca falla por una imagen individual: los errores quedan en
// Failures. Solo devuelve error si ctx se canceló.
func (o *Orchestrator) ProcessImages(ctx context.Context, userID, petID string, images [][]byte) (BatchResult, error) {
	slots := make([]slot, len(images))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.concurrency)

	for i, img := range images {
		eg.Go(func() error {
			// cada tarea escribe solo su propio slot
			slots[i] = o.processOne(egCtx, userID, petID, img)
			return nil
		})
	}
	_ = eg.Wait()

	if err := ctx.Err(); err != nil {
		return BatchResult{}, err
	}

	res := BatchResult{Keys: make([]string, 0, len(images))}
	for i, s := range slots {
		if s.err != nil {
			res.Failures = append(res.Failures, ImageFailure{Index: i, Stage: s.stage, Err: s.err})
			o.log.Warn("chat image failed", map[string]any{
				"user_id": userID,
				"pet_id":  petID,
				"index":   i,
				"stage":   s.stage,
				"error":   s.err,
			})
			continue
		}
		res.Keys = append(res.Keys, s.key)
	}
	return res, nil
}

func (o *Orchestrator) processOne(ctx context.Context, userID, petID string, img []byte) slot {
	up, err := o.backend.PresignChat(ctx, userID, petID)
	if err != nil {
		return slot{stage: StagePresign, err: err}
	}
	if err := o.backend.UploadImage(ctx, up.URL, img); err != nil {
		return slot{stage: StageUpload, err: err}
	}
	if err := o.backend.ProcessChatImage(ctx, userID, petID, up.Key); err != nil {
		return slot{stage: StageProcess, err: err}
	}
	return slot{key: up.Key}
}
