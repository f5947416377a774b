package biometric

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	xlog "github.com/punyakios/go-kios-client/internal/common/log"
	"github.com/punyakios/go-kios-client/internal/common/metrics"
	"github.com/punyakios/go-kios-client/internal/config"
	"github.com/punyakios/go-kios-client/internal/monitoring"
)

var logMessage = "[BIOMETRIC-GATE]"

const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
)

const (
	NoticeTitle   = "Gagal"
	NoticeMessage = "Verifikasi biometrik gagal"
)

type BiometryType string

const (
	BiometryNone    BiometryType = ""
	BiometryTouchID BiometryType = "TouchID"
	BiometryFaceID  BiometryType = "FaceID"
	BiometryGeneric BiometryType = "Biometrics"
)

type Sensor struct {
	Available bool
	Type      BiometryType
}

// Result of one challenge. Reason is empty on success.
type Result struct {
	Success bool
	Reason  string
}

// Authenticator is the device capability behind the challenge.
type Authenticator interface {
	Sensor(ctx context.Context) (Sensor, error)
	Authenticate(ctx context.Context, prompt string) (Result, error)
}

// PreferenceSource reads the stored biometric preference.
type PreferenceSource interface {
	BiometricEnabled(ctx context.Context) (bool, error)
}

// Notifier shows a short notice to the user.
type Notifier interface {
	Notify(ctx context.Context, title, message string)
}

// Dispatcher performs exactly one API call and returns the response body.
type Dispatcher interface {
	Dispatch(ctx context.Context, method, endpoint string, payload any) (json.RawMessage, error)
}

// Check overrides DefaultPolicy for a single request.
type Check int

const (
	CheckDefault Check = iota
	CheckRequired
	CheckSkipped
)

type Request struct {
	Endpoint string
	Method   string
	Payload  any
	Prompt   string
	Check    Check
}

func (r Request) requireCheck() bool {
	switch r.Check {
	case CheckRequired:
		return true
	case CheckSkipped:
		return false
	default:
		return DefaultPolicy(r.Endpoint)
	}
}

type options struct {
	platform      string
	defaultPrompt string
	metrics       *metrics.GatePrometheusMetrics
}

type Option func(*options)

func WithPlatform(platform string) Option {
	return func(o *options) { o.platform = strings.ToLower(platform) }
}

func WithDefaultPrompt(prompt string) Option {
	return func(o *options) { o.defaultPrompt = prompt }
}

func WithMetrics(m *metrics.GatePrometheusMetrics) Option {
	return func(o *options) { o.metrics = m }
}

// Gate asks for a local biometric check before forwarding a state-changing call.
// It keeps no state between calls.
type Gate struct {
	dispatcher    Dispatcher
	preferences   PreferenceSource
	authenticator Authenticator
	notifier      Notifier
	platform      string
	defaultPrompt string
	metrics       *metrics.GatePrometheusMetrics
}

func New(dispatcher Dispatcher, preferences PreferenceSource, authenticator Authenticator, notifier Notifier, opts ...Option) *Gate {
	o := &options{
		platform:      PlatformAndroid,
		defaultPrompt: PromptTransaction,
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Gate{
		dispatcher:    dispatcher,
		preferences:   preferences,
		authenticator: authenticator,
		notifier:      notifier,
		platform:      o.platform,
		defaultPrompt: o.defaultPrompt,
		metrics:       o.metrics,
	}
}

// NewFromConfig builds a gate for the configured platform and prompt.
func NewFromConfig(cfg config.Config, dispatcher Dispatcher, preferences PreferenceSource, authenticator Authenticator, notifier Notifier, opts ...Option) *Gate {
	base := []Option{WithPlatform(cfg.App.Platform)}
	if cfg.Biometric.DefaultPrompt != "" {
		base = append(base, WithDefaultPrompt(cfg.Biometric.DefaultPrompt))
	}
	return New(dispatcher, preferences, authenticator, notifier, append(base, opts...)...)
}

// Invoke runs the challenge when it applies and then dispatches the call once.
// A failed or cancelled challenge returns *AuthFailedError and nothing is sent.
func (g *Gate) Invoke(ctx context.Context, req Request) (body json.RawMessage, err error) {
	monitor := monitoring.New(ctx)
	stage := StageStart
	defer func() {
		g.metrics.RecordOutcome(operationOf(req.Endpoint), stage.String())
		monitor.Finish(monitoring.WithFinishCheckError(err),
			monitoring.WithFinishExpectedErrors(ErrBiometricAuthFailed),
			monitoring.WithFinishXlogFields(xlog.String("endpoint", req.Endpoint), xlog.String("stage", stage.String())))
	}()

	if req.requireCheck() && g.gatingApplies(ctx) {
		stage = StageChallengePending
		if err = g.challenge(ctx, g.promptFor(ctx, req.Prompt)); err != nil {
			stage = StageAbort
			return nil, err
		}
		stage = StageSuccess
	}

	stage = StageDispatch
	body, err = g.dispatcher.Dispatch(ctx, resolveMethod(req.Method), req.Endpoint, payloadFor(req))
	if err != nil {
		stage = StageAPIError
		return nil, err
	}

	stage = StageAPIOK
	return body, nil
}

// gatingApplies is true when the preference is on and, on iOS, the sensor is available.
// Android can fall back to the device credential so the sensor is not checked there.
func (g *Gate) gatingApplies(ctx context.Context) bool {
	enabled, err := g.preferences.BiometricEnabled(ctx)
	if err != nil {
		xlog.Warn(ctx, logMessage, xlog.String("message", "failed to read biometric preference"), xlog.Err(err))
		return false
	}
	if !enabled {
		return false
	}
	if g.platform == PlatformAndroid {
		return true
	}

	sensor, err := g.authenticator.Sensor(ctx)
	if err != nil {
		xlog.Warn(ctx, logMessage, xlog.String("message", "sensor check failed"), xlog.Err(err))
		return false
	}
	return sensor.Available
}

func (g *Gate) challenge(ctx context.Context, prompt string) error {
	result, err := g.authenticator.Authenticate(ctx, prompt)
	if err != nil {
		reason := err.Error()
		if errors.Is(err, ErrBiometricUnavailable) {
			reason = ReasonUnavailable
		}
		result = Result{Reason: reason}
	}
	if result.Success {
		return nil
	}

	silent := isSilentReason(result.Reason)
	if !silent {
		g.notifier.Notify(ctx, NoticeTitle, NoticeMessage)
	}

	xlog.Info(ctx, logMessage,
		xlog.String("message", "challenge did not pass"),
		xlog.String("reason", result.Reason),
		xlog.Bool("silent", silent))

	return &AuthFailedError{Reason: result.Reason, Silent: silent, Err: err}
}

func (g *Gate) promptFor(ctx context.Context, prompt string) string {
	if prompt == "" {
		prompt = g.defaultPrompt
	}
	if !strings.Contains(prompt, "transaction") {
		return prompt
	}

	sensor, err := g.authenticator.Sensor(ctx)
	if err != nil {
		return prompt
	}
	return specializePrompt(prompt, sensor.Type)
}

func specializePrompt(prompt string, biometry BiometryType) string {
	if !strings.Contains(prompt, "transaction") {
		return prompt
	}
	switch biometry {
	case BiometryTouchID:
		return PromptFingerprintTransaction
	case BiometryFaceID:
		return PromptFaceTransaction
	default:
		return prompt
	}
}

// resolveMethod maps unknown methods to POST.
func resolveMethod(method string) string {
	switch m := strings.ToUpper(strings.TrimSpace(method)); m {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
		return m
	default:
		return http.MethodPost
	}
}

// payloadFor drops the payload of methods sent without a body.
func payloadFor(req Request) any {
	switch resolveMethod(req.Method) {
	case http.MethodGet, http.MethodDelete:
		return nil
	default:
		return req.Payload
	}
}

func operationOf(endpoint string) string {
	normalized := normalizeEndpoint(endpoint)
	if gatedOperations[normalized] {
		return normalized
	}
	return "other"
}
