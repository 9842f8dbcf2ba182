package assistantService

import (
	"context"
	"os"
	"strconv"
	"sync"
	"time"

	"ProjectJarvis/internal/api/assistant"
	assistantRepository "ProjectJarvis/internal/api/assistant/repository"
	"ProjectJarvis/internal/entity"
	"ProjectJarvis/pkg/audio"
	"ProjectJarvis/pkg/nlp"
	redisPkg "ProjectJarvis/pkg/redis"
	"ProjectJarvis/pkg/s3"
	"ProjectJarvis/pkg/utils"
	websocketPkg "ProjectJarvis/pkg/websocket"
	"ProjectJarvis/pkg/wikipedia"

	"github.com/sirupsen/logrus"
)

type IAssistantService interface {
	InterpretCommand(ctx context.Context, req assistant.InterpretRequest) (*assistant.CommandResponse, error)
	InterpretAudioCommand(ctx context.Context, req assistant.InterpretAudioRequest) (*assistant.CommandResponse, error)

	StartCapture(ctx context.Context) (*assistant.SessionResponse, error)
	HandleDeviceEvent(ctx context.Context, req assistant.DeviceEventRequest) (*assistant.CommandResponse, error)

	GetHistory(ctx context.Context, page, limit int) (*assistant.HistoryResponse, error)
	ClearHistory(ctx context.Context) error
	GetStatus(ctx context.Context) (*assistant.StatusResponse, error)
	GetSites(ctx context.Context) (*assistant.SitesResponse, error)
	TestNLP(ctx context.Context, req assistant.NLPTestRequest) (*assistant.NLPTestResponse, error)
}

type AssistantConfig struct {
	SilenceTimeout  time.Duration `json:"silence_timeout"`
	MaxFileSize     int64         `json:"max_file_size"`
	AllowedFormats  []string      `json:"allowed_formats"`
	SummaryCacheTTL time.Duration `json:"summary_cache_ttl"`
	LookupTimeout   time.Duration `json:"lookup_timeout"`
}

func NewAssistantConfig() *AssistantConfig {
	silenceTimeout := 8 * time.Second
	if raw := os.Getenv("SILENCE_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			silenceTimeout = time.Duration(secs) * time.Second
		}
	}

	return &AssistantConfig{
		SilenceTimeout:  silenceTimeout,
		MaxFileSize:     10 * 1024 * 1024,
		AllowedFormats:  []string{".mp3", ".wav", ".m4a", ".ogg", ".webm"},
		SummaryCacheTTL: 6 * time.Hour,
		LookupTimeout:   20 * time.Second,
	}
}

type assistantService struct {
	log         *logrus.Logger
	repo        assistantRepository.Repository
	matcher     *nlp.Matcher
	wikipedia   wikipedia.ItfWikipedia
	tts         audio.ItfTTS
	transcriber audio.ItfTranscriber
	s3Client    s3.ItfS3
	redis       redisPkg.IRedis
	hub         websocketPkg.ItfHub
	utils       utils.IUtils
	config      *AssistantConfig

	// capture session state; one session, one silence timer
	sessionMutex sync.Mutex
	session      entity.CaptureSession
	silenceTimer *time.Timer

	// at most one utterance audible at a time; the generation counter
	// keeps a finished synthesis from wiping its successor's cancel
	speechMutex  sync.Mutex
	speechCancel context.CancelFunc
	speechGen    uint64
}

func New(
	log *logrus.Logger,
	repo assistantRepository.Repository,
	matcher *nlp.Matcher,
	wikipediaClient wikipedia.ItfWikipedia,
	tts audio.ItfTTS,
	transcriber audio.ItfTranscriber,
	s3Client s3.ItfS3,
	redisClient redisPkg.IRedis,
	hub websocketPkg.ItfHub,
	utils utils.IUtils,
	config *AssistantConfig,
) IAssistantService {
	return &assistantService{
		log:         log,
		repo:        repo,
		matcher:     matcher,
		wikipedia:   wikipediaClient,
		tts:         tts,
		transcriber: transcriber,
		s3Client:    s3Client,
		redis:       redisClient,
		hub:         hub,
		utils:       utils,
		config:      config,
		session:     entity.CaptureSession{Status: entity.CaptureIdle},
	}
}
