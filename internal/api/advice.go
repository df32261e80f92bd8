// internal/api/advice.go
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	apperrors "career-advisor/internal/common/errors"
	"career-advisor/internal/common/metrics"
	"career-advisor/internal/models"

	contextdetect "career-advisor/internal/advisor/context-detect"
	dataretrieve "career-advisor/internal/advisor/data-retrieve"
	interactionlog "career-advisor/internal/advisor/interaction-log"
	llmcomplete "career-advisor/internal/advisor/llm-complete"
	promptbuild "career-advisor/internal/advisor/prompt-build"
	ratelimit "career-advisor/internal/advisor/rate-limit"
	responsevalidate "career-advisor/internal/advisor/response-validate"
)

// Logger interface definition
type Logger interface {
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
	With(fields map[string]interface{}) Logger
}

// Stage dependencies are taken as interfaces so the handler can be exercised
// with fakes; the composition root injects the real implementations.
type rateLimiter interface {
	Execute(ctx context.Context, input *ratelimit.Input) (*ratelimit.Output, error)
}

type profileStore interface {
	Get(ctx context.Context, userID string) (*models.UserProfile, error)
}

type dataRetriever interface {
	Execute(ctx context.Context, input *dataretrieve.Input) *dataretrieve.Output
}

type completer interface {
	Configured() bool
	Complete(ctx context.Context, input *llmcomplete.Input) (*llmcomplete.Output, error)
}

type interactionLogger interface {
	Execute(ctx context.Context, input *interactionlog.Input) *interactionlog.Output
}

type adviceRequest struct {
	Message             string                    `json:"message"`
	ConversationHistory []models.ConversationTurn `json:"conversationHistory"`
	Attachments         []models.Attachment       `json:"attachments"`
}

type adviceContext struct {
	Country string `json:"country,omitempty"`
	Sector  string `json:"sector,omitempty"`
}

type adviceResponse struct {
	*models.StructuredResponse
	Sources           []models.Source `json:"sources"`
	Context           adviceContext   `json:"context"`
	RemainingRequests int             `json:"remaining_requests"`
}

// AdviceHandler sequences the pipeline for one request: rate check, input
// parse, profile lookup, context detection, data retrieval, prompt build,
// model call, parse, validate, log, respond. Once the quota and input checks
// pass, only a missing completion service can still fail the request; every
// other stage degrades in place.
type AdviceHandler struct {
	limiter   rateLimiter
	profiles  profileStore
	retriever dataRetriever
	completer completer
	ilog      interactionLogger
	logger    Logger
}

func NewAdviceHandler(
	limiter rateLimiter,
	profiles profileStore,
	retriever dataRetriever,
	completer completer,
	ilog interactionLogger,
	log Logger,
) *AdviceHandler {
	return &AdviceHandler{
		limiter:   limiter,
		profiles:  profiles,
		retriever: retriever,
		completer: completer,
		ilog:      ilog,
		logger:    log.With(map[string]interface{}{"component": "advice-handler"}),
	}
}

func (h *AdviceHandler) HandleAdvice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session := SessionFrom(ctx)
	if session == nil || !session.Authenticated {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	log := h.logger.With(map[string]interface{}{"userId": session.UserID})

	// RATE_CHECK. The one store failure that must not degrade.
	start := time.Now()
	quota, err := h.limiter.Execute(ctx, &ratelimit.Input{UserID: session.UserID})
	metrics.ObserveStage(ratelimit.Stage, start)
	if err != nil {
		metrics.StageFailures.WithLabelValues(ratelimit.Stage).Inc()
		log.Error("rate check failed", map[string]interface{}{"error": err.Error()})
		h.respondStandard(w, apperrors.NewRateCheckFailedError(err.Error()))
		return
	}
	if !quota.Allowed {
		metrics.RateLimitRejections.Inc()
		h.respondStandard(w, apperrors.NewRateLimitedError())
		return
	}

	// PARSE_INPUT.
	var req adviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondStandard(w, apperrors.NewInvalidInputError("Request body must be valid JSON"))
		return
	}
	if strings.TrimSpace(req.Message) == "" && len(req.Attachments) == 0 {
		h.respondStandard(w, apperrors.NewInvalidInputError("Request must include a non-empty message or at least one attachment"))
		return
	}

	// PROFILE_LOOKUP. A store failure degrades to the no-profile path; the
	// user gets the onboarding nudge instead of an error.
	profile, err := h.profiles.Get(ctx, session.UserID)
	if err != nil {
		metrics.StageFailures.WithLabelValues("profile-lookup").Inc()
		log.Warn("profile lookup failed", map[string]interface{}{"error": err.Error()})
		profile = nil
	}
	if profile == nil || !profile.OnboardingComplete {
		h.respondAdvice(w, onboardingNudge(), models.NewEmptyDataset(), adviceContext{}, quota.Remaining)
		return
	}

	// CONTEXT_DETECT. Pure.
	start = time.Now()
	detected := contextdetect.Detect(req.Message, profile)
	metrics.ObserveStage(contextdetect.Stage, start)

	// DATA_RETRIEVE. Never errors; worst case is an empty dataset.
	start = time.Now()
	retrieved := h.retriever.Execute(ctx, &dataretrieve.Input{Context: detected})
	metrics.ObserveStage(dataretrieve.Stage, start)
	dataset := retrieved.Dataset

	// PROMPT_BUILD. Pure.
	prompt := promptbuild.Build(&promptbuild.Input{
		Message:     req.Message,
		Mode:        profile.EffectiveMode(),
		Context:     detected,
		Profile:     profile,
		Dataset:     dataset,
		Attachments: req.Attachments,
	})

	// MODEL_CALL. The other hard failure: no reply is fabricated when the
	// completion service is missing or unreachable.
	if !h.completer.Configured() {
		h.respondStandard(w, apperrors.NewLLMNotConfiguredError("completion service base URL or API key missing"))
		return
	}
	start = time.Now()
	completion, err := h.completer.Complete(ctx, &llmcomplete.Input{
		SystemPrompt: prompt.SystemPrompt,
		History:      req.ConversationHistory,
		UserMessage:  prompt.UserMessage,
	})
	metrics.ObserveStage(llmcomplete.Stage, start)
	if err != nil {
		metrics.StageFailures.WithLabelValues(llmcomplete.Stage).Inc()
		log.Error("completion failed", map[string]interface{}{"error": err.Error()})
		h.respondStandard(w, apperrors.NewLLMCallFailedError(err.Error()))
		return
	}
	metrics.TokensUsed.Add(float64(completion.TokensUsed))

	// PARSE_RESPONSE + VALIDATE. Parse falls back, validation only annotates.
	response := responsevalidate.Parse(completion.Text)
	validation := responsevalidate.Validate(completion.Text, dataset)
	if !validation.IsValid {
		metrics.ValidationIssues.WithLabelValues("total").Add(float64(len(validation.Issues)))
		log.Warn("response validation findings", map[string]interface{}{
			"issues": validation.Issues,
		})
	}

	// LOG. Best effort; the record feeds future quota counts.
	h.ilog.Execute(ctx, &interactionlog.Input{
		Record: &models.InteractionLogRecord{
			UserID:           session.UserID,
			UserMessage:      req.Message,
			RawResponse:      completion.Text,
			DetectedContext:  detected,
			RetrievedCount:   dataset.TotalItems(),
			ValidationIssues: validation.Issues,
			TokensUsed:       completion.TokensUsed,
		},
	})

	remaining := quota.Remaining - 1
	if remaining < 0 {
		remaining = 0
	}
	h.respondAdvice(w, response, dataset, adviceContext{
		Country: detected.Country,
		Sector:  detected.Sector,
	}, remaining)
}

func (h *AdviceHandler) respondAdvice(w http.ResponseWriter, resp *models.StructuredResponse, dataset *models.RetrievedDataset, ctxInfo adviceContext, remaining int) {
	metrics.AdviceRequests.WithLabelValues(strconv.Itoa(http.StatusOK)).Inc()
	respondJSON(w, http.StatusOK, &adviceResponse{
		StructuredResponse: resp,
		Sources:            dataset.Sources,
		Context:            ctxInfo,
		RemainingRequests:  remaining,
	})
}

func (h *AdviceHandler) respondError(w http.ResponseWriter, status int, message string) {
	metrics.AdviceRequests.WithLabelValues(strconv.Itoa(status)).Inc()
	respondError(w, status, message)
}

func (h *AdviceHandler) respondStandard(w http.ResponseWriter, err *apperrors.StandardError) {
	h.respondError(w, err.HTTPStatus(), err.Message)
}

// onboardingNudge is the degraded-but-valid reply for users without a
// completed profile. No model call is made.
func onboardingNudge() *models.StructuredResponse {
	return &models.StructuredResponse{
		ResponseType: "onboarding_nudge",
		Sections: []models.Section{
			{Type: models.SectionParagraph, Text: promptbuild.OnboardingNudgeText},
		},
		NextQuestions: []string{
			"Which country are you based in?",
			"Which sector do you work in, or want to work in?",
			"What skills do you already have?",
		},
	}
}
